package chem

// Token is a parsed element symbol (1-3 letters) or a group-boundary
// marker. Tokens are immutable once created.
type Token struct {
	// Symbol is the element symbol, or "(" for a group marker.
	Symbol string
	// GroupMarker reports whether this token marks the start of a
	// parenthesized group rather than a real element.
	GroupMarker bool
}

// groupOpenSymbol is the sentinel symbol carried by group-marker tokens.
const groupOpenSymbol = "("

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isAlpha(c byte) bool { return isUpper(c) || isLower(c) }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ReadSymbol reads the longest element symbol starting at pos in s, which
// must be an alphabetic character. The rule is shape-based, not a periodic
// table membership check: one uppercase letter greedily followed by up to
// two lowercase letters ("Uue" shapes parse as three-letter symbols even
// when no such element exists). Returns the symbol and the number of
// bytes consumed (1, 2 or 3). An alphabetic start always yields at least
// a one-letter symbol; ReadSymbol has no failure mode.
func ReadSymbol(s string, pos int) (string, int) {
	if pos+2 < len(s) && isUpper(s[pos]) && isLower(s[pos+1]) && isLower(s[pos+2]) {
		return s[pos : pos+3], 3
	}
	if pos+1 < len(s) && isUpper(s[pos]) && isLower(s[pos+1]) {
		return s[pos : pos+2], 2
	}
	return s[pos : pos+1], 1
}

// readNumber reads a run of decimal digits starting at pos in s and
// returns its value and the number of bytes consumed.
func readNumber(s string, pos int) (int, int) {
	n, w := 0, 0
	for pos+w < len(s) && isDigit(s[pos+w]) {
		n = n*10 + int(s[pos+w]-'0')
		w++
	}
	return n, w
}
