package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/repository/cache"
)

const (
	KeyCommentThread = "comment:thread:%s"

	// 物理过期时间是逻辑过期时间的倍数, 过期数据仍可先返回再异步重建
	physicalTTLFactor = 10
)

type commentCache struct {
	client *redis.Client
}

var _ domain.CommentCache = (*commentCache)(nil)

func NewCommentCache(client *redis.Client) *commentCache {
	return &commentCache{client}
}

func (c *commentCache) GetThread(ctx context.Context, blogID string) ([]*domain.Comment, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyCommentThread, blogID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, false, err
	}

	var wrapped cache.DataWithLogicalExpire[[]*domain.Comment]
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, false, err
	}
	return wrapped.Data, wrapped.IsLogicalExpired(), nil
}

func (c *commentCache) SetThread(ctx context.Context, blogID string, comments []*domain.Comment, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(comments, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyCommentThread, blogID), data, ttl*physicalTTLFactor).Err()
}

func (c *commentCache) DeleteThread(ctx context.Context, blogID string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyCommentThread, blogID)).Err()
}
