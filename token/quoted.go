package token

// bsEscQuoted scans a double-quoted string with backslash escapes
// starting at d[0] == '"'. It returns the length of the quoted region
// including both quote characters.
func bsEscQuoted(d []byte) (int, error) {
	i := 1
	n := len(d)
	for i < n {
		switch d[i] {
		case '\\':
			if i+1 >= n {
				return 0, ErrUnterminated
			}
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

// Unquote strips the enclosing quotes from v and decodes the escape
// pairs \" \\ \n \t. Any other backslash pair is kept verbatim.
func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := bsEscQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrBadEscape
	}
	body := b[1 : n-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		switch body[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		default:
			out = append(out, '\\', body[i])
		}
	}
	return string(out), nil
}

// Quote is the inverse of Unquote.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, v[i])
		}
	}
	d = append(d, '"')
	return string(d)
}
