package cas

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/dgryski/go-farm"
)

// ErrHashCollision reports two different canonical encodings with one hash.
var ErrHashCollision = errors.New("hash collision")

type entry[V any] struct {
	value    V
	encoding []byte
}

type MemoryCAS[V any] struct {
	mu        sync.RWMutex
	data      map[Hash]entry[V]
	canonical Canonicalizer[V]
	hash      func([]byte) uint64
}

func NewMemoryCAS[V any](canonical Canonicalizer[V]) *MemoryCAS[V] {
	return &MemoryCAS[V]{
		data:      make(map[Hash]entry[V]),
		canonical: canonical,
		hash:      farm.Hash64,
	}
}

// Put stores item and returns its hash. If equal content is already stored,
// the first stored value is kept. Different content under an existing hash
// is rejected with ErrHashCollision.
func (m *MemoryCAS[V]) Put(item V) (Hash, error) {
	c, err := m.canonical(item)
	if err != nil {
		return 0, err
	}
	data, err := Encode(c)
	if err != nil {
		return 0, err
	}
	h := Hash(m.hash(data))

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.data[h]; ok {
		if !bytes.Equal(prev.encoding, data) {
			return 0, fmt.Errorf("%w: %s", ErrHashCollision, h)
		}
		return h, nil
	}
	m.data[h] = entry[V]{value: item, encoding: data}
	return h, nil
}

func (m *MemoryCAS[V]) Get(hash Hash) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.data[hash]
	return e.value, ok
}

func (m *MemoryCAS[V]) Has(hash Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[hash]
	return ok
}

func (m *MemoryCAS[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
