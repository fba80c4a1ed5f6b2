package dotpath

// IterateFunc receives one matched element: its value, its key within the
// parent (an int for list elements), the parent container, the escaped
// concrete path from the root, and the root itself.
type IterateFunc func(value, key, parent interface{}, path string, data interface{})

// MapFunc is IterateFunc with a result collected by Map.
type MapFunc func(value, key, parent interface{}, path string, data interface{}) interface{}

// Lookup resolves path against data. With a wildcard in the path the
// result is a []interface{} of every matched value in traversal order.
// The boolean reports whether the path matched; a stored nil is found.
func Lookup(data interface{}, path string, opts ...Option) (interface{}, bool) {
	if path == "" {
		return nil, false
	}
	res := traverse(data, scanSegments(path), buildOptions(opts))
	if !res.matched || len(res.branches) == 0 {
		return nil, false
	}
	if res.wildcard {
		out := make([]interface{}, len(res.branches))
		for i, b := range res.branches {
			out[i] = b.value
		}
		return out, true
	}
	return res.branches[0].value, true
}

// Get returns the value at path, or fallback when the path does not match.
// A nil stored at path is returned as nil, not replaced by fallback.
func Get(data interface{}, path string, fallback interface{}, opts ...Option) interface{} {
	v, ok := Lookup(data, path, opts...)
	if !ok {
		return fallback
	}
	return v
}

// Has reports whether path matches at least one element of data.
func Has(data interface{}, path string) bool {
	if path == "" {
		return false
	}
	res := traverse(data, scanSegments(path), buildOptions(nil))
	return res.matched && len(res.branches) > 0
}

// ForEach calls fn once per element matched by path, in traversal order.
// Nothing is called when the path does not match.
func ForEach(data interface{}, path string, fn IterateFunc, opts ...Option) {
	if fn == nil || path == "" {
		return
	}
	res := traverse(data, scanSegments(path), buildOptions(opts))
	if !res.matched {
		return
	}
	for _, b := range res.branches {
		fn(b.value, lastKey(b.keys), b.parent, joinKeys(b.keys), data)
	}
}

// Map is ForEach collecting the results of fn. It returns an empty slice
// when the path does not match.
func Map(data interface{}, path string, fn MapFunc, opts ...Option) []interface{} {
	out := []interface{}{}
	if fn == nil {
		return out
	}
	ForEach(data, path, func(value, key, parent interface{}, p string, root interface{}) {
		out = append(out, fn(value, key, parent, p, root))
	}, opts...)
	return out
}

func lastKey(keys []interface{}) interface{} {
	if len(keys) == 0 {
		return nil
	}
	return keys[len(keys)-1]
}
