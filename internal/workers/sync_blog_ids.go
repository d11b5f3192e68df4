package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-discussion/domain"
)

const blogIDPageSize = 1000

// syncBlogIDsWorker 定期把博客ID写入布隆过滤器, 博客由其他服务创建
type syncBlogIDsWorker struct {
	blogRepo  domain.BlogRepository
	bloomRepo domain.BloomRepository
	interval  time.Duration
}

func NewSyncBlogIDsWorker(br domain.BlogRepository, bloom domain.BloomRepository, interval time.Duration) *syncBlogIDsWorker {
	return &syncBlogIDsWorker{blogRepo: br, bloomRepo: bloom, interval: interval}
}

// Sync 分页读取全部博客ID并写入过滤器
func (s *syncBlogIDsWorker) Sync(ctx context.Context) (int, error) {
	total := 0
	cursor := ""
	for {
		ids, err := s.blogRepo.FetchIDs(ctx, cursor, blogIDPageSize)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return total, err
		}
		total += len(ids)
		if len(ids) < blogIDPageSize {
			return total, nil
		}
		cursor = ids[len(ids)-1]
	}
}

// Start 每个周期同步一次，interval <= 0 时不做定期同步
func (s *syncBlogIDsWorker) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			n, err := s.Sync(ctx)
			if err != nil {
				logrus.Errorf("failed to refresh blog bloom filter: %v", err)
				continue
			}
			logrus.Debugf("blog bloom filter refreshed with %d ids", n)
		case <-ctx.Done():
			return
		}
	}
}
