package main

import "bytes"

// detectIndent guesses the indent width of a block YAML document from the
// GCD of its indented lines, falling back to 2.
func detectIndent(b []byte) int {
	base := 0
	for _, ln := range bytes.Split(b, []byte("\n")) {
		trimmed := bytes.TrimLeft(ln, " ")
		if len(bytes.TrimSpace(trimmed)) == 0 || trimmed[0] == '#' {
			continue
		}
		if n := len(ln) - len(trimmed); n > 0 {
			base = gcd(base, n)
		}
	}
	if base < 2 || base > 8 {
		return 2
	}
	return base
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
