package token

import "fmt"

type TokenType int

const (
	TLCurl = iota
	TRCurl
	TLParen
	TRParen
	TEq
	TSemi
	TComma
	TString
	TReference
	TKind
	TTrue
	TFalse
	TInteger
	TDecimal
	TLiteral
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:     "TLCurl",
		TRCurl:     "TRCurl",
		TLParen:    "TLParen",
		TRParen:    "TRParen",
		TEq:        "TEq",
		TSemi:      "TSemi",
		TComma:     "TComma",
		TString:    "TString",
		TReference: "TReference",
		TKind:      "TKind",
		TTrue:      "TTrue",
		TFalse:     "TFalse",
		TInteger:   "TInteger",
		TDecimal:   "TDecimal",
		TLiteral:   "TLiteral",
		TComment:   "TComment",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value text. Quoted strings are unquoted;
// everything else is the raw bytes.
func (t *Token) String() string {
	if t.Type == TString {
		s, err := Unquote(string(t.Bytes))
		if err == nil {
			return s
		}
	}
	return string(t.Bytes)
}
