package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-discussion/domain"
)

const (
	KeyCommentLikes = "comment:likes:%s"

	// LikesLoadedMarker 标记集合已从存储加载, 空集合也会带上它
	LikesLoadedMarker = "__loaded__"

	likesTTLSeconds = 1800
)

// KEYS = {点赞集合}
// ARGV = {用户ID, 过期秒数}
var toggleLikeScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return {-1, 0} -- 未缓存, 需要加载缓存
	end

	local liked = 0
	if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
		redis.call('SREM', KEYS[1], ARGV[1])
	else
		redis.call('SADD', KEYS[1], ARGV[1])
		liked = 1
	end
	redis.call('EXPIRE', KEYS[1], ARGV[2])

	return {liked, redis.call('SCARD', KEYS[1]) - 1}
`)

// KEYS = {点赞集合}
// ARGV = {过期秒数, 标记, 用户ID...}
// 已存在则不覆盖, 避免冲掉尚未落库的点赞
var seedLikesScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		return 0
	end
	for i = 2, #ARGV do
		redis.call('SADD', KEYS[1], ARGV[i])
	end
	redis.call('EXPIRE', KEYS[1], ARGV[1])
	return 1
`)

type likeCache struct {
	client *redis.Client
}

var _ domain.LikeCache = (*likeCache)(nil)

func NewLikeCache(client *redis.Client) *likeCache {
	return &likeCache{client}
}

func (c *likeCache) ToggleLike(ctx context.Context, commentID string, userID string) (domain.LikeResult, error) {
	if userID == LikesLoadedMarker {
		return domain.LikeResult{}, domain.NewError(domain.ErrInvalidArgument, "invalid user id")
	}
	keys := []string{fmt.Sprintf(KeyCommentLikes, commentID)}
	res, err := toggleLikeScript.Run(ctx, c.client, keys, userID, likesTTLSeconds).Int64Slice()
	if err != nil {
		return domain.LikeResult{}, err
	}
	if len(res) != 2 {
		return domain.LikeResult{}, fmt.Errorf("unexpected toggle like reply: %v", res)
	}
	if res[0] == -1 {
		return domain.LikeResult{}, domain.ErrCacheMiss
	}
	return domain.LikeResult{Liked: res[0] == 1, LikeCount: res[1]}, nil
}

func (c *likeCache) SeedLikes(ctx context.Context, commentID string, userIDs []string) error {
	args := make([]any, 0, len(userIDs)+2)
	args = append(args, likesTTLSeconds, LikesLoadedMarker)
	for _, uid := range userIDs {
		args = append(args, uid)
	}
	keys := []string{fmt.Sprintf(KeyCommentLikes, commentID)}
	return seedLikesScript.Run(ctx, c.client, keys, args...).Err()
}

func (c *likeCache) GetLikes(ctx context.Context, commentIDs []string) (map[string][]string, error) {
	res := make(map[string][]string, len(commentIDs))
	if len(commentIDs) == 0 {
		return res, nil
	}

	cmds := make([]*redis.StringSliceCmd, len(commentIDs))
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range commentIDs {
			cmds[i] = pipe.SMembers(ctx, fmt.Sprintf(KeyCommentLikes, id))
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	for i, cmd := range cmds {
		members, err := cmd.Result()
		if err != nil || !slices.Contains(members, LikesLoadedMarker) {
			continue
		}
		likes := make([]string, 0, len(members)-1)
		for _, m := range members {
			if m != LikesLoadedMarker {
				likes = append(likes, m)
			}
		}
		slices.Sort(likes)
		res[commentIDs[i]] = likes
	}
	return res, nil
}

func (c *likeCache) EvictLikes(ctx context.Context, commentIDs []string) error {
	if len(commentIDs) == 0 {
		return nil
	}
	keys := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		keys[i] = fmt.Sprintf(KeyCommentLikes, id)
	}
	return c.client.Del(ctx, keys...).Err()
}
