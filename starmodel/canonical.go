package starmodel

import (
	"bytes"
	"fmt"
	"sort"

	"go.starlark.net/starlark"

	"github.com/timewinder-dev/seeker/cas"
)

// Container tags keep a tuple, a list and a dict with the same elements
// from colliding.
const (
	tagTuple = "tuple"
	tagList  = "list"
	tagDict  = "dict"
	tagBig   = "bigint"
)

// canonical reduces a Starlark value to the plain form cas hashes. Only
// data values are accepted; functions and other opaque values are rejected.
func canonical(v starlark.Value) (any, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(v), nil
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		return []any{tagBig, v.String()}, nil
	case starlark.Float:
		return float64(v), nil
	case starlark.String:
		return string(v), nil
	case starlark.Tuple:
		return sequence(tagTuple, v.Len(), v.Index)
	case *starlark.List:
		return sequence(tagList, v.Len(), v.Index)
	case *starlark.Dict:
		return dict(v)
	}
	return nil, fmt.Errorf("%w: %s cannot be part of a state", ErrBadReturn, v.Type())
}

func sequence(tag string, n int, index func(int) starlark.Value) (any, error) {
	out := make([]any, 0, n+1)
	out = append(out, tag)
	for i := 0; i < n; i++ {
		c, err := canonical(index(i))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// dict orders entries by the encoding of their keys, so insertion order
// does not affect the hash.
func dict(d *starlark.Dict) (any, error) {
	type pair struct {
		key  []byte
		k, v any
	}
	items := d.Items()
	pairs := make([]pair, 0, len(items))
	for _, kv := range items {
		k, err := canonical(kv[0])
		if err != nil {
			return nil, err
		}
		v, err := canonical(kv[1])
		if err != nil {
			return nil, err
		}
		enc, err := cas.Encode(k)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{key: enc, k: k, v: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].key, pairs[j].key) < 0
	})
	out := make([]any, 0, 2*len(pairs)+1)
	out = append(out, tagDict)
	for _, p := range pairs {
		out = append(out, p.k, p.v)
	}
	return out, nil
}
