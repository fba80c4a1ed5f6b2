package dotpath

// MatchPath reports whether two paths address the same location when
// wildcards on either side stand for any single token. Tokens also match
// when both are integers of equal value ("1" and "1.0"). The comparison is
// symmetric.
func MatchPath(a, b string) bool {
	if a == b {
		return true
	}
	sa, sb := scanSegments(a), scanSegments(b)
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if !matchSegments(sa[i], sb[i]) {
			return false
		}
	}
	return true
}

func matchSegments(a, b segment) bool {
	if a.wild || b.wild || a.key == b.key {
		return true
	}
	na, okA := integerToken(a.key)
	nb, okB := integerToken(b.key)
	return okA && okB && na == nb
}
