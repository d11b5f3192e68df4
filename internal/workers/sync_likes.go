package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/metrics"
)

const (
	likeQueueSize     = 1024
	likeBatchSize     = 100
	likeFlushInterval = time.Second
)

type LikeTask struct {
	CommentID string
	UserID    string
	Action    domain.LikeAction
	At        time.Time
}

type syncLikesWorker struct {
	commentRepo domain.CommentRepository
	likeCache   domain.LikeCache
	ch          chan LikeTask
	interval    time.Duration
	done        chan struct{}
}

var _ domain.SyncLikesWorker = (*syncLikesWorker)(nil)

// NewSyncLikesWorker writes queued toggles to cr. Like sets in lc whose batch fails are evicted.
func NewSyncLikesWorker(cr domain.CommentRepository, lc domain.LikeCache) *syncLikesWorker {
	return &syncLikesWorker{
		commentRepo: cr,
		likeCache:   lc,
		ch:          make(chan LikeTask, likeQueueSize),
		interval:    likeFlushInterval,
		done:        make(chan struct{}),
	}
}

// Send adds a like record if action == Like, and removes it if action == Unlike
func (s *syncLikesWorker) Send(likeRecord domain.CommentLike, action domain.LikeAction) error {
	at := likeRecord.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	select {
	case s.ch <- LikeTask{likeRecord.CommentID, likeRecord.UserID, action, at}:
		return nil
	default:
		metrics.LikeTasksDropped.Inc()
		logrus.Warnf("SyncLikesWorker's channel is full, task rejected: comment %s user %s", likeRecord.CommentID, likeRecord.UserID)
		return domain.ErrQueueFull
	}
}

// Start blocks until ctx is cancelled, flushing what is queued before it returns.
func (s *syncLikesWorker) Start(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	batch := make([]LikeTask, 0, likeBatchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) == likeBatchSize {
				s.flush(ctx, batch)
				batch = make([]LikeTask, 0, likeBatchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = make([]LikeTask, 0, likeBatchSize)
			}
		case <-ctx.Done():
			logrus.Info("shutting down SyncLikesWorker, flushing remain tasks...")
			// 排空队列
			for {
				select {
				case task := <-s.ch:
					batch = append(batch, task)
					continue
				default:
				}
				break
			}
			// ctx 已取消，使用独立的超时
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			s.flush(flushCtx, batch)
			cancel()
			return
		}
	}
}

// Done is closed once Start has returned.
func (s *syncLikesWorker) Done() <-chan struct{} {
	return s.done
}

type taskKey struct {
	cid, uid string
}

// flush 同一用户对同一评论的多次操作只保留最后一次
func (s *syncLikesWorker) flush(ctx context.Context, batch []LikeTask) {
	if len(batch) == 0 {
		return
	}
	tasks := make(map[taskKey]LikeTask, len(batch))
	order := make([]taskKey, 0, len(batch))
	for i := range batch {
		key := taskKey{cid: batch[i].CommentID, uid: batch[i].UserID}
		if _, ok := tasks[key]; !ok {
			order = append(order, key)
		}
		tasks[key] = batch[i]
	}

	var changes domain.LikeStateChanges
	commentIDs := make([]string, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, key := range order {
		if !seen[key.cid] {
			seen[key.cid] = true
			commentIDs = append(commentIDs, key.cid)
		}
		task := tasks[key]
		like := domain.CommentLike{CommentID: key.cid, UserID: key.uid, CreatedAt: task.At}
		switch task.Action {
		case domain.Like:
			changes.ToAdd = append(changes.ToAdd, like)
		case domain.Unlike:
			changes.ToRemove = append(changes.ToRemove, like)
		default:
			logrus.Errorf("Unsupported action: %v", task.Action)
		}
	}
	if err := s.commentRepo.ApplyLikeChanges(ctx, changes); err != nil {
		logrus.Errorf("failed to apply %d like changes: %v", len(changes.ToAdd)+len(changes.ToRemove), err)
		// 缓存里的集合已经领先于存储, 删掉让下次从存储重新加载
		if err := s.likeCache.EvictLikes(ctx, commentIDs); err != nil {
			logrus.Errorf("failed to evict like sets of %d comments: %v", len(commentIDs), err)
		}
	}
}
