// Package parse reduces pbxproj text to generic ir values.
package parse

import (
	"strconv"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/token"
)

// Parse parses a whole pbxproj document: a single top-level object,
// surrounded by optional comments (the conventional "// !$*UTF8*$!"
// header among them).
func Parse(d []byte) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	off := 0
	t := peek(toks, &off)
	if t == nil {
		return nil, token.ErrEmptyDoc
	}
	if t.Type != token.TLCurl {
		return nil, expectedErr("{", t)
	}
	root, err := parseValue(toks, &off)
	if err != nil {
		return nil, err
	}
	if tr := peek(toks, &off); tr != nil {
		return nil, expectedErr("end of document", tr)
	}
	return root, nil
}

// ParseValue parses a single pbxproj value of any form.
func ParseValue(d []byte) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	off := 0
	res, err := parseValue(toks, &off)
	if err != nil {
		return nil, err
	}
	if tr := peek(toks, &off); tr != nil {
		return nil, expectedErr("end of document", tr)
	}
	return res, nil
}

// ParseField parses one `key = value;` field, returning the key and
// its value.
func ParseField(d []byte) (string, *ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return "", nil, err
	}
	off := 0
	kvs, err := parseFields(toks, &off, -1)
	if err != nil {
		return "", nil, err
	}
	if len(kvs) != 1 {
		if t := peek(toks, &off); t != nil {
			return "", nil, expectedErr("single field", t)
		}
		return "", nil, token.ErrEmptyDoc
	}
	return kvs[0].Key, kvs[0].Val, nil
}

// peek returns the next non-comment token without consuming it, or nil
// at end of input. Comments are consumed.
func peek(toks []token.Token, pi *int) *token.Token {
	for *pi < len(toks) {
		t := &toks[*pi]
		if t.Type == token.TComment {
			*pi++
			continue
		}
		return t
	}
	return nil
}

func parseValue(toks []token.Token, pi *int) (*ir.Node, error) {
	t := peek(toks, pi)
	if t == nil {
		if *pi > 0 {
			return nil, expectedErr("value", &toks[*pi-1])
		}
		return nil, token.ErrEmptyDoc
	}
	switch t.Type {
	case token.TLCurl:
		*pi++
		return parseObject(toks, pi)
	case token.TLParen:
		*pi++
		return parseArray(toks, pi)
	case token.TString, token.TReference, token.TLiteral, token.TDecimal:
		*pi++
		return ir.FromString(t.String()), nil
	case token.TKind:
		*pi++
		return ir.FromKind(string(t.Bytes)), nil
	case token.TTrue:
		*pi++
		return ir.FromBool(true), nil
	case token.TFalse:
		*pi++
		return ir.FromBool(false), nil
	case token.TInteger:
		*pi++
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, &InvalidNumberLiteral{Text: string(t.Bytes), Pos: *t.Pos}
		}
		return ir.FromInt(i), nil
	default:
		return nil, expectedErr("value", t)
	}
}

// parseFields parses `key = value;` fields until the given closing
// token type (or end of input for end < 0). The closing token is not
// consumed.
func parseFields(toks []token.Token, pi *int, end token.TokenType) ([]ir.KeyVal, error) {
	kvs := []ir.KeyVal{}
	for {
		t := peek(toks, pi)
		if t == nil {
			if end < 0 {
				return kvs, nil
			}
			return nil, expectedErr(end.String(), &toks[len(toks)-1])
		}
		if t.Type == end {
			return kvs, nil
		}
		var key string
		switch t.Type {
		case token.TString, token.TReference, token.TLiteral, token.TDecimal,
			token.TKind, token.TInteger, token.TTrue, token.TFalse:
			key = t.String()
		default:
			return nil, expectedErr("field key", t)
		}
		*pi++
		eq := peek(toks, pi)
		if eq == nil || eq.Type != token.TEq {
			if eq == nil {
				return nil, expectedErr("=", t)
			}
			return nil, expectedErr("=", eq)
		}
		*pi++
		val, err := parseValue(toks, pi)
		if err != nil {
			return nil, err
		}
		semi := peek(toks, pi)
		if semi == nil || semi.Type != token.TSemi {
			if semi == nil {
				return nil, expectedErr(";", t)
			}
			return nil, expectedErr(";", semi)
		}
		*pi++
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
}

func parseObject(toks []token.Token, pi *int) (*ir.Node, error) {
	kvs, err := parseFields(toks, pi, token.TRCurl)
	if err != nil {
		return nil, err
	}
	*pi++ // consume }
	return ir.FromKeyVals(kvs), nil
}

func parseArray(toks []token.Token, pi *int) (*ir.Node, error) {
	vs := []*ir.Node{}
	for {
		t := peek(toks, pi)
		if t == nil {
			return nil, expectedErr(")", &toks[len(toks)-1])
		}
		if t.Type == token.TRParen {
			*pi++
			return ir.FromSlice(vs), nil
		}
		v, err := parseValue(toks, pi)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
		// elements are comma separated with an optional trailing comma
		if sep := peek(toks, pi); sep != nil && sep.Type == token.TComma {
			*pi++
		}
	}
}
