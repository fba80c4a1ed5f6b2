package dotpath

import "strconv"

// Remove returns a copy of data without the element(s) at path. data
// itself is never modified.
//
// List elements are removed by shifting later elements down, so a list
// never keeps holes. A path that runs through a scalar or a missing key
// leaves that branch untouched. Emptied parents are kept as they are.
func Remove(data interface{}, path string) interface{} {
	if path == "" {
		return data
	}
	root := Clone(data)
	if !hasSeparator(path) && path != Wildcard {
		return deleteChild(root, path)
	}
	segs := scanSegments(path)
	if len(segs) == 0 {
		return root
	}
	return removeSegments(root, segs)
}

func removeSegments(node interface{}, segs []segment) interface{} {
	if !containsWildcard(segs) {
		return removeExact(node, segmentKeys(segs))
	}
	refs := matchingChildren(node, segs[0])
	rest := segs[1:]
	if len(rest) == 0 {
		return dropChildren(node, refs)
	}
	for _, ref := range refs {
		if IsContainer(ref.child) {
			node = replaceChild(node, ref, removeSegments(ref.child, rest))
		}
	}
	return node
}

// removeExact follows a concrete path and deletes its last element.
func removeExact(node interface{}, tokens []string) interface{} {
	if len(tokens) == 1 {
		return deleteChild(node, tokens[0])
	}
	child, ok := childAt(node, tokens[0])
	if !ok || !IsContainer(child) {
		return node
	}
	return putChild(node, tokens[0], removeExact(child, tokens[1:]))
}

// removeIndexes removes the given ascending original indexes from list,
// compensating for the shift caused by earlier removals in the same pass.
func removeIndexes(list []interface{}, indexes []int) []interface{} {
	removed := 0
	for _, idx := range indexes {
		list = deleteChild(list, strconv.Itoa(idx-removed)).([]interface{})
		removed++
	}
	return list
}
