package dotpath

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	gyaml "github.com/goccy/go-yaml"
)

// IsList reports whether v is a list value.
func IsList(v interface{}) bool {
	_, ok := v.([]interface{})
	return ok
}

// IsMap reports whether v is a map value (ordered MapSlice or plain map).
func IsMap(v interface{}) bool {
	switch v.(type) {
	case gyaml.MapSlice, map[string]interface{}:
		return true
	}
	return false
}

// IsContainer reports whether v is a list or a map.
func IsContainer(v interface{}) bool {
	return IsList(v) || IsMap(v)
}

// IsArrayIndex reports whether token textually represents a non-negative
// integer in the int32 range, i.e. whether it may address a list element.
func IsArrayIndex(token string) bool {
	_, ok := listIndex(token)
	return ok
}

// integerToken parses token as an integral number in the int32 range.
// "1", "-3", "2.0" and "1e2" are all integral.
func integerToken(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(token, 10, 32); err == nil {
		return int(n), true
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// maxListGrowth bounds how far past its end a list may be padded by a
// single write.
const maxListGrowth = 1 << 16

// keyString renders a map key the way it appears in a path.
func keyString(k interface{}) string {
	switch kk := k.(type) {
	case string:
		return kk
	case int:
		return strconv.Itoa(kk)
	case fmt.Stringer:
		return kk.String()
	default:
		return fmt.Sprint(kk)
	}
}

// numericKey returns the float value of a non-string numeric key.
func numericKey(k interface{}) (float64, bool) {
	switch kk := k.(type) {
	case int:
		return float64(kk), true
	case int8:
		return float64(kk), true
	case int16:
		return float64(kk), true
	case int32:
		return float64(kk), true
	case int64:
		return float64(kk), true
	case uint:
		return float64(kk), true
	case uint8:
		return float64(kk), true
	case uint16:
		return float64(kk), true
	case uint32:
		return float64(kk), true
	case uint64:
		return float64(kk), true
	case float32:
		return float64(kk), true
	case float64:
		return kk, true
	}
	return 0, false
}

// matchKey reports whether a child key (list index or map key) is
// addressed by a non-wildcard token. Integer tokens compare numerically
// against list indexes and numeric map keys; everything else compares
// against the key's path form, so "1.5" addresses the float key 1.5.
func matchKey(key interface{}, token string) bool {
	if s, ok := key.(string); ok {
		return s == token
	}
	if f, ok := numericKey(key); ok {
		if n, isInt := integerToken(token); isInt && float64(n) == f {
			return true
		}
	}
	return keyString(key) == token
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// eachChild calls fn for every direct child of v in iteration order: list
// order for lists, insertion order for MapSlice, sorted order for plain
// maps. Scalars have no children.
func eachChild(v interface{}, fn func(key, child interface{})) {
	switch vv := v.(type) {
	case []interface{}:
		for i, c := range vv {
			fn(i, c)
		}
	case gyaml.MapSlice:
		for _, it := range vv {
			fn(it.Key, it.Value)
		}
	case map[string]interface{}:
		for _, k := range sortedKeys(vv) {
			fn(k, vv[k])
		}
	}
}

// childAt looks up the direct child addressed by token.
func childAt(v interface{}, token string) (interface{}, bool) {
	switch vv := v.(type) {
	case []interface{}:
		i, ok := integerToken(token)
		if !ok || i < 0 || i >= len(vv) {
			return nil, false
		}
		return vv[i], true
	case gyaml.MapSlice:
		for _, it := range vv {
			if matchKey(it.Key, token) {
				return it.Value, true
			}
		}
	case map[string]interface{}:
		c, ok := vv[token]
		return c, ok
	}
	return nil, false
}

// putChild stores val under token and returns the container, which may be
// a new slice header for lists and MapSlices. Lists grow with nil padding
// when the index lies past the end, by at most maxListGrowth elements;
// farther indexes, non-index tokens on a list and writes into scalars are
// ignored.
func putChild(v interface{}, token string, val interface{}) interface{} {
	switch vv := v.(type) {
	case []interface{}:
		i, ok := listIndex(token)
		if !ok || i >= len(vv)+maxListGrowth {
			return vv
		}
		for len(vv) <= i {
			vv = append(vv, nil)
		}
		vv[i] = val
		return vv
	case gyaml.MapSlice:
		for idx, it := range vv {
			if matchKey(it.Key, token) {
				vv[idx].Value = val
				return vv
			}
		}
		return append(vv, gyaml.MapItem{Key: token, Value: val})
	case map[string]interface{}:
		vv[token] = val
		return vv
	}
	return v
}

// deleteChild removes the child addressed by token. List elements are
// removed by shifting later elements down; missing keys are ignored.
func deleteChild(v interface{}, token string) interface{} {
	switch vv := v.(type) {
	case []interface{}:
		i, ok := listIndex(token)
		if !ok || i >= len(vv) {
			return vv
		}
		return append(vv[:i:i], vv[i+1:]...)
	case gyaml.MapSlice:
		for idx, it := range vv {
			if matchKey(it.Key, token) {
				return append(vv[:idx:idx], vv[idx+1:]...)
			}
		}
		return vv
	case map[string]interface{}:
		delete(vv, token)
		return vv
	}
	return v
}

func listIndex(token string) (int, bool) {
	i, ok := integerToken(token)
	return i, ok && i >= 0
}

// newContainerFor returns an empty list when token addresses a list
// element a fresh list can grow to, and an empty ordered map otherwise.
func newContainerFor(token string) interface{} {
	if i, ok := listIndex(token); ok && i < maxListGrowth {
		return []interface{}{}
	}
	return gyaml.MapSlice{}
}

// childRef is a direct child located by its position in iteration order.
type childRef struct {
	pos   int
	key   interface{}
	child interface{}
}

// matchingChildren lists the direct children of v addressed by s.
func matchingChildren(v interface{}, s segment) []childRef {
	var refs []childRef
	pos := 0
	eachChild(v, func(key, child interface{}) {
		if s.matches(key) {
			refs = append(refs, childRef{pos: pos, key: key, child: child})
		}
		pos++
	})
	return refs
}

// replaceChild stores val in the slot ref was taken from.
func replaceChild(v interface{}, ref childRef, val interface{}) interface{} {
	switch vv := v.(type) {
	case []interface{}:
		vv[ref.pos] = val
	case gyaml.MapSlice:
		vv[ref.pos].Value = val
	case map[string]interface{}:
		vv[ref.key.(string)] = val
	}
	return v
}

// dropChildren removes the referenced children, given in iteration order.
func dropChildren(v interface{}, refs []childRef) interface{} {
	switch vv := v.(type) {
	case []interface{}:
		idx := make([]int, len(refs))
		for i, r := range refs {
			idx[i] = r.pos
		}
		return removeIndexes(vv, idx)
	case gyaml.MapSlice:
		out := make(gyaml.MapSlice, 0, len(vv)-len(refs))
		next := 0
		for i, it := range vv {
			if next < len(refs) && refs[next].pos == i {
				next++
				continue
			}
			out = append(out, it)
		}
		return out
	case map[string]interface{}:
		for _, r := range refs {
			delete(vv, r.key.(string))
		}
		return vv
	}
	return v
}

// Clone returns a deep copy of v. Containers are copied recursively;
// scalars are returned as is.
func Clone(v interface{}) interface{} {
	switch vv := v.(type) {
	case []interface{}:
		out := make([]interface{}, len(vv))
		for i, e := range vv {
			out[i] = Clone(e)
		}
		return out
	case gyaml.MapSlice:
		out := make(gyaml.MapSlice, 0, len(vv))
		for _, it := range vv {
			out = append(out, gyaml.MapItem{Key: it.Key, Value: Clone(it.Value)})
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(vv))
		for k, e := range vv {
			out[k] = Clone(e)
		}
		return out
	default:
		return vv
	}
}

// Merge merges source into target and returns the result. When both are
// containers, source children are merged key-wise (lists by index) into
// target; otherwise a copy of source replaces target. target is modified
// in place where possible; source is never shared with the result.
func Merge(target, source interface{}) interface{} {
	if !IsContainer(target) || !IsContainer(source) {
		return Clone(source)
	}
	eachChild(source, func(key, child interface{}) {
		tok := keyString(key)
		if existing, ok := childAt(target, tok); ok {
			target = putChild(target, tok, Merge(existing, child))
			return
		}
		target = putChild(target, tok, Clone(child))
	})
	return target
}
