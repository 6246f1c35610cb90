package parse

import (
	"errors"
	"fmt"

	"github.com/pbx-format/go-pbx/token"
)

var (
	ErrParse = errors.New("parse error")
)

// ParseError is a structural failure carrying the offending text and
// its position in the source.
type ParseError struct {
	Pos      token.Pos
	Expected string
	Found    string
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %q %s", ErrParse, e.Expected, e.Found, e.Pos.String())
}

func expectedErr(expected string, t *token.Token) error {
	return &ParseError{Pos: *t.Pos, Expected: expected, Found: string(t.Bytes)}
}

// InvalidNumberLiteral reports an integer token whose value does not
// fit an int64.
type InvalidNumberLiteral struct {
	Text string
	Pos  token.Pos
}

func (e *InvalidNumberLiteral) Unwrap() error {
	return ErrParse
}

func (e *InvalidNumberLiteral) Error() string {
	return fmt.Sprintf("invalid number literal %q %s", e.Text, e.Pos.String())
}
