package cas

import (
	"container/list"
)

// LRUCache memoizes values by hash with least-recently-used eviction. It is
// not safe for concurrent use.
type LRUCache[V any] struct {
	cache     map[Hash]*list.Element
	evictList *list.List
	maxSize   int
	hits      int
	misses    int
}

type cacheEntry[V any] struct {
	hash  Hash
	value V
}

// NewLRUCache creates a cache holding at most maxSize entries (0 or negative
// means the default of 1000).
func NewLRUCache[V any](maxSize int) *LRUCache[V] {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &LRUCache[V]{
		cache:     make(map[Hash]*list.Element),
		evictList: list.New(),
		maxSize:   maxSize,
	}
}

func (l *LRUCache[V]) Get(h Hash) (V, bool) {
	if elem, ok := l.cache[h]; ok {
		l.evictList.MoveToFront(elem)
		l.hits++
		return elem.Value.(*cacheEntry[V]).value, true
	}
	l.misses++
	var zero V
	return zero, false
}

func (l *LRUCache[V]) Add(hash Hash, value V) {
	if elem, ok := l.cache[hash]; ok {
		l.evictList.MoveToFront(elem)
		elem.Value.(*cacheEntry[V]).value = value
		return
	}

	elem := l.evictList.PushFront(&cacheEntry[V]{hash: hash, value: value})
	l.cache[hash] = elem

	if l.evictList.Len() > l.maxSize {
		l.evictOldest()
	}
}

// GetOrCompute returns the cached value for h, computing and caching it on
// a miss. Errors are not cached.
func (l *LRUCache[V]) GetOrCompute(h Hash, compute func() (V, error)) (V, error) {
	if v, ok := l.Get(h); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	l.Add(h, v)
	return v, nil
}

func (l *LRUCache[V]) evictOldest() {
	elem := l.evictList.Back()
	if elem != nil {
		l.evictList.Remove(elem)
		delete(l.cache, elem.Value.(*cacheEntry[V]).hash)
	}
}

type CacheStats struct {
	Size    int
	MaxSize int
	Hits    int
	Misses  int
}

func (l *LRUCache[V]) Stats() CacheStats {
	return CacheStats{
		Size:    len(l.cache),
		MaxSize: l.maxSize,
		Hits:    l.hits,
		Misses:  l.misses,
	}
}
