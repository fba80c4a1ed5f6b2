package dotpath

import (
	"fmt"
	"strings"
)

// Wildcard is the path token matching every direct child at its depth.
const Wildcard = "*"

// Tokenize splits a path into its decoded segments.
//
// Segments are separated by '.', and may also be written as [N], ['s'] or
// ["s"]. A literal dot inside a plain segment is written `\.` and a
// literal backslash `\\`; inside quotes a backslash escapes the following
// character. Brackets that do not form a valid index or quoted segment
// are kept as literal characters. Tokenize never fails: the empty path
// yields no tokens.
func Tokenize(path string) []string {
	return segmentKeys(scanSegments(path))
}

// segment is one decoded token. Only a bare `*` is a wildcard; the quoted
// form ['*'] addresses a literal "*" key.
type segment struct {
	key  string
	wild bool
}

func (s segment) matches(key interface{}) bool {
	return s.wild || matchKey(key, s.key)
}

func scanSegments(path string) []segment {
	segs := []segment{}
	var bare strings.Builder
	flush := func() {
		if bare.Len() == 0 {
			return
		}
		s := bare.String()
		bare.Reset()
		if strings.Trim(s, "[]") == "" {
			return
		}
		// Whitespace-only segments are kept as keys, unlike empty ones.
		segs = append(segs, segment{key: s, wild: s == Wildcard})
	}

	for i := 0; i < len(path); {
		c := path[i]
		switch c {
		case '\\':
			if i+1 < len(path) && (path[i+1] == '.' || path[i+1] == '\\') {
				bare.WriteByte(path[i+1])
				i += 2
				continue
			}
			bare.WriteByte(c)
			i++
		case '.':
			flush()
			i++
		case '[':
			tok, end, ok := scanBracket(path, i)
			if !ok {
				bare.WriteByte(c)
				i++
				continue
			}
			flush()
			segs = append(segs, segment{key: tok})
			i = end
		default:
			bare.WriteByte(c)
			i++
		}
	}
	flush()
	return segs
}

func segmentKeys(segs []segment) []string {
	keys := make([]string, len(segs))
	for i, s := range segs {
		keys[i] = s.key
	}
	return keys
}

// scanBracket parses a bracket segment starting at path[start] == '['.
// It returns the decoded token and the offset just past the closing ']'.
func scanBracket(path string, start int) (string, int, bool) {
	i := start + 1
	if i >= len(path) {
		return "", 0, false
	}
	if q := path[i]; q == '\'' || q == '"' {
		return scanQuoted(path, i+1, q)
	}
	return scanNumeral(path, i)
}

// scanNumeral matches -?\d+(\.\d+)? followed by ']'.
func scanNumeral(path string, i int) (string, int, bool) {
	begin := i
	if i < len(path) && path[i] == '-' {
		i++
	}
	digits := func() int {
		n := 0
		for i < len(path) && path[i] >= '0' && path[i] <= '9' {
			i++
			n++
		}
		return n
	}
	if digits() == 0 {
		return "", 0, false
	}
	if i < len(path) && path[i] == '.' {
		i++
		if digits() == 0 {
			return "", 0, false
		}
	}
	if i >= len(path) || path[i] != ']' {
		return "", 0, false
	}
	return path[begin:i], i + 1, true
}

// scanQuoted reads a quoted string up to the matching unescaped quote,
// which must be followed by ']'.
func scanQuoted(path string, i int, quote byte) (string, int, bool) {
	var sb strings.Builder
	for i < len(path) {
		c := path[i]
		switch {
		case c == '\\':
			if i+1 >= len(path) {
				return "", 0, false
			}
			sb.WriteByte(path[i+1])
			i += 2
		case c == quote:
			if i+1 < len(path) && path[i+1] == ']' {
				return sb.String(), i + 2, true
			}
			return "", 0, false
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return "", 0, false
}

// hasSeparator reports whether path needs tokenizing at all.
func hasSeparator(path string) bool {
	return strings.ContainsAny(path, ".[")
}

// escapeKey renders one literal key so that Tokenize decodes it back to
// exactly that key. Keys containing brackets, the empty key and the
// literal "*" use the quoted bracket form.
func escapeKey(key string) string {
	if key == "" || key == Wildcard || strings.ContainsAny(key, "[]") {
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
		return "['" + r.Replace(key) + "']"
	}
	r := strings.NewReplacer(`\`, `\\`, `.`, `\.`)
	return r.Replace(key)
}

// joinKeys builds an escaped path from the keys collected during traversal.
func joinKeys(keys []interface{}) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = escapeKey(keyString(k))
	}
	return strings.Join(parts, ".")
}

// EscapePath turns a whole path into a single literal key: every dot
// separating or inside its tokens is escaped. A lone wildcard stays a
// wildcard.
func EscapePath(path string) string {
	segs := scanSegments(path)
	switch {
	case len(segs) == 0:
		return ""
	case len(segs) == 1 && segs[0].wild:
		return Wildcard
	}
	return escapeKey(strings.Join(segmentKeys(segs), "."))
}

// BuildPath joins raw tokens into an escaped dotted path. Each token is
// first decoded, so bracket forms like "[5]" or "['a']" are normalized to
// their bare form, and dots inside a token are escaped.
func BuildPath(tokens ...interface{}) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, EscapePath(fmt.Sprint(t)))
	}
	return strings.Join(parts, ".")
}

// ContainsWildcardToken reports whether any token of path is the wildcard.
func ContainsWildcardToken(path string) bool {
	return containsWildcard(scanSegments(path))
}

func containsWildcard(segs []segment) bool {
	for _, s := range segs {
		if s.wild {
			return true
		}
	}
	return false
}
