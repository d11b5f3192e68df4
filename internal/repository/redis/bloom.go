package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-discussion/domain"
)

const (
	KeyBlogBloom = "bloom:blog:ids"

	bloomHashes         = 3
	defaultBloomBitSize = 1 << 24
)

// redisBloomRepo 基于 redis bitmap 的博客ID布隆过滤器
type redisBloomRepo struct {
	client  *redis.Client
	key     string
	bitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	if bitSize == 0 {
		bitSize = defaultBloomBitSize
	}
	return &redisBloomRepo{
		client:  client,
		key:     KeyBlogBloom,
		bitSize: bitSize,
	}
}

// offsets 双重哈希: crc32 + i*fnv64a
func (r *redisBloomRepo) offsets(id string) [bloomHashes]int64 {
	data := []byte(id)
	h1 := uint64(crc32.ChecksumIEEE(data))
	f := fnv.New64a()
	_, _ = f.Write(data)
	h2 := f.Sum64() | 1

	var res [bloomHashes]int64
	for i := range res {
		res[i] = int64((h1 + uint64(i)*h2) % r.bitSize)
	}
	return res
}

func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	return r.BulkAdd(ctx, []string{id})
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			for _, off := range r.offsets(id) {
				pipe.SetBit(ctx, r.key, off, 1)
			}
		}
		return nil
	})
	return err
}

// Exists 任意一位为0即可确定不存在
func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	offs := r.offsets(id)
	cmds := make([]*redis.IntCmd, 0, len(offs))
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, off := range offs {
			cmds = append(cmds, pipe.GetBit(ctx, r.key, off))
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}
