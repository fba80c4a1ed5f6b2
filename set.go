package dotpath

// Set returns a copy of data with value written at path. data itself is
// never modified.
//
// Missing intermediate containers are created on the way down: a list when
// the following token is an array index, an ordered map otherwise. When
// the path holds a wildcard, value is written below every matching child;
// a trailing wildcard merges value into each matched element instead of
// replacing it. A path without separators names a single literal key, so
// Set(data, "*", v) writes the key "*".
func Set(data interface{}, path string, value interface{}) interface{} {
	if path == "" {
		return data
	}
	root := Clone(data)
	if !hasSeparator(path) {
		return setTokens(root, []string{path}, value)
	}
	segs := scanSegments(path)
	if len(segs) == 0 {
		return root
	}
	if !containsWildcard(segs) {
		return setTokens(root, segmentKeys(segs), value)
	}
	return setWildcard(root, segs, value)
}

// setTokens writes a copy of value at the concrete path tokens below node
// and returns the (possibly reallocated) node.
func setTokens(node interface{}, tokens []string, value interface{}) interface{} {
	if node == nil {
		node = newContainerFor(tokens[0])
	}
	if !IsContainer(node) {
		return node
	}
	tok := tokens[0]
	if len(tokens) == 1 {
		return putChild(node, tok, Clone(value))
	}
	child, ok := childAt(node, tok)
	if !ok || !IsContainer(child) {
		child = newContainerFor(tokens[1])
	}
	return putChild(node, tok, setTokens(child, tokens[1:], value))
}

// setWildcard matches the first segment against every child of node and
// continues with the remaining segments below each match.
func setWildcard(node interface{}, segs []segment, value interface{}) interface{} {
	rest := segs[1:]
	for _, ref := range matchingChildren(node, segs[0]) {
		var updated interface{}
		switch {
		case len(rest) == 0:
			updated = Merge(ref.child, value)
		case containsWildcard(rest):
			updated = setWildcard(ref.child, rest, value)
		default:
			updated = setTokens(ref.child, segmentKeys(rest), value)
		}
		node = replaceChild(node, ref, updated)
	}
	return node
}
