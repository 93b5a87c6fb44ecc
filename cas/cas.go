// Package cas is a content-addressed store. Values are reduced to a
// canonical form, encoded with msgpack and hashed with farmhash; equal
// content always maps to the same Hash.
package cas

import (
	"bytes"
	"fmt"

	"github.com/dgryski/go-farm"
	"github.com/shamaton/msgpack/v2"
)

type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("0x%016x", uint64(h))
}

// CAS stores values by the hash of their canonical form.
type CAS[V any] interface {
	Put(item V) (Hash, error)
	Get(hash Hash) (V, bool)
	Has(hash Hash) bool
	Len() int
}

// Canonicalizer reduces a value to a tree of nil, bool, int64, float64,
// string and []any. Maps must be flattened into sorted pairs first, since
// map iteration order would make the encoding unstable.
type Canonicalizer[V any] func(V) (any, error)

// Encode returns the msgpack encoding of a canonical value.
func Encode(canonical any) ([]byte, error) {
	var buf bytes.Buffer
	if err := msgpack.MarshalWrite(&buf, canonical); err != nil {
		return nil, fmt.Errorf("encoding canonical value: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode into generic values.
func Decode(data []byte) (any, error) {
	var out any
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding canonical value: %w", err)
	}
	return out, nil
}

// Sum hashes a canonical value.
func Sum(canonical any) (Hash, error) {
	data, err := Encode(canonical)
	if err != nil {
		return 0, err
	}
	return Hash(farm.Hash64(data)), nil
}
