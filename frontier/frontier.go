// Package frontier holds the containers graph search uses to order the
// states it has discovered but not yet expanded.
package frontier

import "errors"

// ErrEmpty is the panic value raised when popping an empty frontier.
// Callers must check IsEmpty first.
var ErrEmpty = errors.New("frontier: pop from empty frontier")

// Frontier is the common view of every container in this package.
type Frontier[T any] interface {
	Push(item T)
	Pop() T
	IsEmpty() bool
	Len() int
}

// membership counts how many times each key is currently held, so that
// Contains stays correct when the same key is pushed more than once.
type membership[K comparable] map[K]int

func (m membership[K]) add(k K) {
	m[k]++
}

func (m membership[K]) remove(k K) {
	if m[k] <= 1 {
		delete(m, k)
		return
	}
	m[k]--
}
