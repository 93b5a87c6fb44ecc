package starmodel

import (
	"fmt"

	"go.starlark.net/starlark"
)

// predeclared are helpers available to every model file.
func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"manhattan": starlark.NewBuiltin("manhattan", manhattan),
	}
}

// manhattan(a, b) is the L1 distance between two integer coordinate tuples.
func manhattan(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p, q starlark.Tuple
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &p, &q); err != nil {
		return nil, err
	}
	if p.Len() != q.Len() {
		return nil, fmt.Errorf("%s: points have %d and %d coordinates", b.Name(), p.Len(), q.Len())
	}
	total := 0
	for i := 0; i < p.Len(); i++ {
		x, err := starlark.AsInt32(p.Index(i))
		if err != nil {
			return nil, err
		}
		y, err := starlark.AsInt32(q.Index(i))
		if err != nil {
			return nil, err
		}
		if x > y {
			total += x - y
		} else {
			total += y - x
		}
	}
	return starlark.MakeInt(total), nil
}
