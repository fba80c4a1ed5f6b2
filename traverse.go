package dotpath

type options struct {
	iterateObjects bool
	iterateArrays  bool
}

// Option tunes wildcard fan-out for the read operators.
type Option func(*options)

// IterateObjects controls whether a wildcard expands over map entries.
// Enabled by default.
func IterateObjects(enabled bool) Option {
	return func(o *options) { o.iterateObjects = enabled }
}

// IterateArrays controls whether a wildcard expands over list elements.
// Enabled by default.
func IterateArrays(enabled bool) Option {
	return func(o *options) { o.iterateArrays = enabled }
}

func buildOptions(opts []Option) options {
	o := options{iterateObjects: true, iterateArrays: true}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// branch is one candidate reached during traversal.
type branch struct {
	value  interface{}
	parent interface{}
	keys   []interface{}
}

type traversal struct {
	matched  bool
	wildcard bool
	branches []branch
}

// traverse walks segs from root, fanning out over every matching child
// when a wildcard is met. A token that matches nothing leaves the current
// generation in place; the walk only succeeds when every token advanced.
func traverse(root interface{}, segs []segment, o options) traversal {
	res := traversal{}
	current := []branch{{value: root, parent: root}}
	advanced := 0

	for _, seg := range segs {
		var next []branch
		for _, b := range current {
			list := IsList(b.value)
			if seg.wild {
				if list && !o.iterateArrays || !list && !o.iterateObjects {
					continue
				}
			}
			parent := b.value
			eachChild(parent, func(key, child interface{}) {
				if !seg.matches(key) {
					return
				}
				if seg.wild {
					res.wildcard = true
				}
				keys := make([]interface{}, len(b.keys), len(b.keys)+1)
				copy(keys, b.keys)
				next = append(next, branch{value: child, parent: parent, keys: append(keys, key)})
			})
		}
		if len(next) > 0 {
			current = next
			advanced++
		}
	}

	res.matched = advanced == len(segs)
	if res.matched {
		res.branches = current
	}
	return res
}
