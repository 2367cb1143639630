// Package cache 进程内缓存
package cache

import (
	"github.com/jellydator/ttlcache/v3"

	"github.com/xiebiao/userservice/internal/infrastructure/config"
)

// IdempotencyStore 记录Idempotency-Key对应的已创建用户ID
// 同一个key在TTL内重复提交创建请求时返回第一次的ID，不再创建新用户
type IdempotencyStore struct {
	cache *ttlcache.Cache[string, uint]
}

// NewIdempotencyStore 创建幂等键缓存，cleanup停止过期清理协程
func NewIdempotencyStore(cfg *config.Config) (*IdempotencyStore, func()) {
	c := ttlcache.New[string, uint](
		ttlcache.WithTTL[string, uint](cfg.Idempotency.TTL),
		ttlcache.WithDisableTouchOnHit[string, uint](),
	)
	go c.Start()

	return &IdempotencyStore{cache: c}, c.Stop
}

// Lookup 查找key对应的用户ID
func (s *IdempotencyStore) Lookup(key string) (uint, bool) {
	item := s.cache.Get(key)
	if item == nil || item.IsExpired() {
		return 0, false
	}
	return item.Value(), true
}

// Remember 记录key对应的用户ID
func (s *IdempotencyStore) Remember(key string, id uint) {
	s.cache.Set(key, id, ttlcache.DefaultTTL)
}

// Forget 删除指向该用户ID的所有key，用户被删除后重复提交会重新创建
func (s *IdempotencyStore) Forget(id uint) {
	for key, item := range s.cache.Items() {
		if item.Value() == id {
			s.cache.Delete(key)
		}
	}
}
