package dotpath

import (
	gyaml "github.com/goccy/go-yaml"
)

// Flatten converts data into a single-level ordered map from escaped
// concrete paths to leaf values. Leaves are scalars and empty lists; empty
// maps have no leaf and disappear. A scalar or empty root flattens to an
// empty map.
func Flatten(data interface{}) gyaml.MapSlice {
	out := gyaml.MapSlice{}
	eachChild(data, func(key, child interface{}) {
		out = flattenInto(out, escapeKey(keyString(key)), child)
	})
	return out
}

func flattenInto(out gyaml.MapSlice, path string, v interface{}) gyaml.MapSlice {
	if list, ok := v.([]interface{}); ok && len(list) == 0 {
		return append(out, gyaml.MapItem{Key: path, Value: []interface{}{}})
	}
	if !IsContainer(v) {
		return append(out, gyaml.MapItem{Key: path, Value: v})
	}
	eachChild(v, func(key, child interface{}) {
		out = flattenInto(out, path+"."+escapeKey(keyString(key)), child)
	})
	return out
}

// Expand is the inverse of Flatten: every key of flat is tokenized and its
// value written at that path, creating lists for array-index tokens and
// ordered maps otherwise. The first entry decides whether the root is a
// list or a map. flat may be a MapSlice or a map[string]interface{}; any
// other input expands to an empty map.
func Expand(flat interface{}) interface{} {
	var root interface{}
	eachChild(flat, func(key, value interface{}) {
		tokens := Tokenize(keyString(key))
		if len(tokens) == 0 {
			return
		}
		root = setTokens(root, tokens, Clone(value))
	})
	if root == nil {
		return gyaml.MapSlice{}
	}
	return root
}
