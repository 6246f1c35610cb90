package token

import "github.com/pbx-format/go-pbx/kind"

// literalByte reports whether c may appear in a bare pbxproj word.
// Structural bytes, quotes, and whitespace end a word; everything else,
// including path separators and dollar expansions, is allowed.
func literalByte(c byte) bool {
	switch c {
	case '{', '}', '(', ')', '=', ';', ',', '"', ' ', '\t', '\r', '\n', '\v', '\f':
		return false
	}
	return true
}

// getSingleLiteral scans a bare word from the start of d, stopping
// before any comment opener.
func getSingleLiteral(d []byte) ([]byte, error) {
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		if !literalByte(c) {
			break
		}
		if c == '/' && i+1 < n && (d[i+1] == '/' || d[i+1] == '*') {
			break
		}
		i++
	}
	if i == 0 {
		return nil, ErrLiteral
	}
	return d[:i], nil
}

// IsReference reports whether s is an object identifier: exactly 24
// uppercase hex digits.
func IsReference(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// numberShape classifies a bare word as an integer, a decimal-bearing
// numeric token (version strings like 1.0.2), or neither.
func numberShape(s string) (isInt, isDecimal bool) {
	i := 0
	if len(s) > 0 && s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false, false
	}
	digits, dots := 0, 0
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return false, false
		}
	}
	if digits == 0 {
		return false, false
	}
	if dots == 0 {
		return true, false
	}
	return false, true
}

// classify assigns a token type to a bare word, trying the literal
// forms in priority order: reference shape, kind shape, boolean,
// number, then generic literal.
func classify(word string) TokenType {
	switch {
	case IsReference(word):
		return TReference
	case kind.IsTag(word):
		return TKind
	case word == "YES":
		return TTrue
	case word == "NO":
		return TFalse
	}
	isInt, isDecimal := numberShape(word)
	switch {
	case isInt:
		return TInteger
	case isDecimal:
		return TDecimal
	}
	return TLiteral
}

// NeedsQuote reports whether v cannot be rendered as a bare word
// without changing how it reads back.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	d, err := getSingleLiteral([]byte(v))
	if err != nil || len(d) != len(v) {
		return true
	}
	switch classify(v) {
	case TTrue, TFalse, TInteger, TKind:
		return true
	}
	return false
}
