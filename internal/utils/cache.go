package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache 全局缓存实例（API 层的响应缓存）
var Cache *cache.Cache

// InitCache 初始化缓存
func InitCache() {
	// 默认过期时间5分钟，清理间隔10分钟
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// CacheGet 获取缓存值
func CacheGet(key string) (interface{}, bool) {
	return Cache.Get(key)
}

// CacheSet 设置缓存值
func CacheSet(key string, value interface{}, duration time.Duration) {
	Cache.Set(key, value, duration)
}

// CacheDelete 删除缓存
func CacheDelete(key string) {
	Cache.Delete(key)
}

// cacheItem 包装实际的数据，附加过期时间
type cacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// LookupCache 自然键查找结果的 LRU 缓存，导入运行期间
// 用来避免同一个键反复打到数据库。只缓存命中项，不缓存 miss。
type LookupCache[T any] struct {
	storage *lru.Cache[string, cacheItem[T]]
	ttl     time.Duration
}

// NewLookupCache 初始化，size 是最大缓存条数，ttl 是数据有效期
func NewLookupCache[T any](size int, ttl time.Duration) *LookupCache[T] {
	// lru.New 是线程安全的
	c, _ := lru.New[string, cacheItem[T]](size)
	return &LookupCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set 写入缓存（已存在时覆盖）
func (c *LookupCache[T]) Set(key string, value T) {
	c.storage.Add(key, cacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	})
}

// Get 读取缓存，过期条目按 miss 处理并顺手删掉
func (c *LookupCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}

	if time.Now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}

	return item.Value, true
}

// Delete 删除单个键
func (c *LookupCache[T]) Delete(key string) {
	c.storage.Remove(key)
}

// Clear 清空
func (c *LookupCache[T]) Clear() {
	c.storage.Purge()
}

// Len 当前条数
func (c *LookupCache[T]) Len() int {
	return c.storage.Len()
}
