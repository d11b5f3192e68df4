package lru

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Guyuepp/blog-discussion/domain"
)

// cacheItem 包装缓存数据和过期时间
type cacheItem struct {
	user      domain.User
	expiresAt time.Time
}

// userRepository 本地缓存用户，评论列表每次渲染都要解析作者
type userRepository struct {
	next  domain.UserRepository
	cache *lru.Cache[string, cacheItem]
	ttl   time.Duration
	now   func() time.Time
}

var _ domain.UserRepository = (*userRepository)(nil)

func NewUserRepository(next domain.UserRepository, size int, ttl time.Duration) (*userRepository, error) {
	c, err := lru.New[string, cacheItem](size)
	if err != nil {
		return nil, err
	}
	return &userRepository{next: next, cache: c, ttl: ttl, now: time.Now}, nil
}

func (r *userRepository) get(id string) (domain.User, bool) {
	item, ok := r.cache.Get(id)
	if !ok {
		return domain.User{}, false
	}
	// 检查过期
	if r.now().After(item.expiresAt) {
		r.cache.Remove(id)
		return domain.User{}, false
	}
	return item.user, true
}

func (r *userRepository) set(u domain.User) {
	r.cache.Add(u.ID, cacheItem{user: u, expiresAt: r.now().Add(r.ttl)})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	if u, ok := r.get(id); ok {
		return u, nil
	}
	u, err := r.next.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	r.set(u)
	return u, nil
}

// GetByIDs 只向下游查询未命中的ID
func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	res := make([]domain.User, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if u, ok := r.get(id); ok {
			res = append(res, u)
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return res, nil
	}

	users, err := r.next.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		r.set(u)
	}
	return append(res, users...), nil
}

// GetByEmail 用于登录，需要最新的密码哈希，不走缓存
func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.next.GetByEmail(ctx, email)
}

func (r *userRepository) Insert(ctx context.Context, u *domain.User) error {
	return r.next.Insert(ctx, u)
}
