package token

import "bytes"

// Tokenize appends the tokens of src to dst. Comments are emitted as
// TComment tokens for callers to skip; whitespace produces nothing.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			i++
		case ' ', '\t', '\r', '\v', '\f':
			i++
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '(':
			dst = append(dst, Token{Type: TLParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ')':
			dst = append(dst, Token{Type: TRParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '=':
			dst = append(dst, Token{Type: TEq, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ';':
			dst = append(dst, Token{Type: TSemi, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '"':
			j, err := bsEscQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			body := src[i : i+j]
			for _, k := range nlOffsets(body) {
				posDoc.nl(i + k)
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: body})
			i += j
		case '/':
			if i+1 < n && src[i+1] == '/' {
				end := bytes.IndexByte(src[i:], '\n')
				if end < 0 {
					end = n - i
				}
				dst = append(dst, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: src[i : i+end]})
				i += end
				break
			}
			if i+1 < n && src[i+1] == '*' {
				end := bytes.Index(src[i+2:], []byte("*/"))
				if end < 0 {
					return nil, NewTokenizeErr(ErrUnterminated, posDoc.Pos(i))
				}
				body := src[i : i+2+end+2]
				for _, k := range nlOffsets(body) {
					posDoc.nl(i + k)
				}
				dst = append(dst, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: body})
				i += len(body)
				break
			}
			fallthrough
		default:
			lit, err := getSingleLiteral(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(ErrLiteral, posDoc.Pos(i))
			}
			word := string(lit)
			dst = append(dst, Token{Type: classify(word), Pos: posDoc.Pos(i), Bytes: lit})
			i += len(lit)
		}
	}
	return dst, nil
}

func nlOffsets(d []byte) []int {
	var offs []int
	for k, c := range d {
		if c == '\n' {
			offs = append(offs, k)
		}
	}
	return offs
}
