package encode

type EncodeOption func(*EncState)

// Depth sets the starting indentation depth.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeHeader controls the leading "// !$*UTF8*$!" comment. On by
// default for whole documents.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = &v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
