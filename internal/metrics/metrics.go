package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog_discussion"

var (
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Comments persisted, replies included.",
	})

	// LikeToggles is labelled by the resulting action and by which path served it (cache or store).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_toggles_total",
		Help:      "Like toggles that completed.",
	}, []string{"action", "path"})

	OrphanedReplies = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orphaned_replies_total",
		Help:      "Replies dropped from rendered threads because their parent is not active.",
	})

	AttachmentsUploaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attachments_uploaded_total",
		Help:      "Files stored as comment attachments.",
	}, []string{"kind"})

	LikeTasksDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_sync_dropped_total",
		Help:      "Like changes dropped because the sync queue was full.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
