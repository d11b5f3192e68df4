package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/blog-discussion/domain"
)

const (
	DefaultThreadTTL  = 30 * time.Second
	threadLoadTimeout = 10 * time.Second
)

// commentRepository 协调层，协调缓存和数据库
type commentRepository struct {
	db            domain.CommentRepository
	cache         domain.CommentCache
	threadTTL     time.Duration
	rebuildGroup  singleflight.Group
	mu            sync.Mutex
	rebuildingMap map[string]bool // 正在重建的博客ID
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository 创建协调层repository
func NewCommentRepository(db domain.CommentRepository, cache domain.CommentCache, threadTTL time.Duration) *commentRepository {
	if threadTTL <= 0 {
		threadTTL = DefaultThreadTTL
	}
	return &commentRepository{
		db:            db,
		cache:         cache,
		threadTTL:     threadTTL,
		rebuildingMap: make(map[string]bool),
	}
}

// Store 创建评论后删除该博客的评论缓存
func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.BlogID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	return r.db.GetByID(ctx, id)
}

// FetchByBlog 只缓存 active 评论，使用逻辑过期策略避免缓存击穿
func (r *commentRepository) FetchByBlog(ctx context.Context, blogID string, status domain.CommentStatus) ([]*domain.Comment, error) {
	if status != domain.StatusActive {
		return r.db.FetchByBlog(ctx, blogID, status)
	}

	// 1. 先从缓存获取
	comments, expired, err := r.cache.GetThread(ctx, blogID)
	if err == nil {
		if expired {
			go r.rebuildThread(context.Background(), blogID)
		}
		return cloneComments(comments), nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get comment thread from cache, blog %s: %v", blogID, err)
	}

	// 2. 缓存未命中，使用singleflight避免缓存击穿
	// 共享的加载不受发起者取消的影响
	result, err, _ := r.rebuildGroup.Do("thread:"+blogID, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), threadLoadTimeout)
		defer cancel()
		return r.load(loadCtx, blogID)
	})
	if err != nil {
		return nil, err
	}
	return cloneComments(result.([]*domain.Comment)), nil
}

func (r *commentRepository) load(ctx context.Context, blogID string) ([]*domain.Comment, error) {
	comments, err := r.db.FetchByBlog(ctx, blogID, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetThread(ctx, blogID, comments, r.threadTTL); err != nil {
		logrus.Warnf("failed to set comment thread cache, blog %s: %v", blogID, err)
	}
	return comments, nil
}

// rebuildThread 异步重建评论缓存
func (r *commentRepository) rebuildThread(ctx context.Context, blogID string) {
	// 检查是否已经在重建中
	r.mu.Lock()
	if r.rebuildingMap[blogID] {
		r.mu.Unlock()
		return
	}
	r.rebuildingMap[blogID] = true
	r.mu.Unlock()

	// 完成后清除标记
	defer func() {
		r.mu.Lock()
		delete(r.rebuildingMap, blogID)
		r.mu.Unlock()
	}()

	_, err, _ := r.rebuildGroup.Do("rebuild:"+blogID, func() (any, error) {
		return r.load(ctx, blogID)
	})
	if err != nil {
		logrus.Errorf("rebuildThread failed for blog %s: %v", blogID, err)
	}
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.BlogID)
	return nil
}

func (r *commentRepository) ToggleLike(ctx context.Context, commentID string, userID string) (domain.LikeResult, error) {
	res, err := r.db.ToggleLike(ctx, commentID, userID)
	if err != nil {
		return res, err
	}
	// 缓存中的点赞集合已失效, 需要博客ID才能删除
	if c, err := r.db.GetByID(ctx, commentID); err == nil {
		r.invalidate(ctx, c.BlogID)
	}
	return res, nil
}

// ApplyLikeChanges 应用点赞变更, 读取时以 redis 点赞集合为准, 不删除缓存
func (r *commentRepository) ApplyLikeChanges(ctx context.Context, changes domain.LikeStateChanges) error {
	return r.db.ApplyLikeChanges(ctx, changes)
}

func (r *commentRepository) invalidate(ctx context.Context, blogID string) {
	if blogID == "" {
		return
	}
	if err := r.cache.DeleteThread(ctx, blogID); err != nil {
		logrus.Warnf("failed to delete comment thread cache, blog %s: %v", blogID, err)
	}
}

// cloneComments 缓存和 singleflight 的结果会被多个调用方共享, 返回副本
func cloneComments(src []*domain.Comment) []*domain.Comment {
	out := make([]*domain.Comment, 0, len(src))
	for _, c := range src {
		if c == nil {
			continue
		}
		cp := *c
		if c.Author != nil {
			author := *c.Author
			cp.Author = &author
		}
		if c.EditedAt != nil {
			editedAt := *c.EditedAt
			cp.EditedAt = &editedAt
		}
		if c.Likes != nil {
			cp.Likes = append([]string(nil), c.Likes...)
		}
		if c.Attachments != nil {
			cp.Attachments = append([]domain.Attachment(nil), c.Attachments...)
		}
		out = append(out, &cp)
	}
	return out
}
