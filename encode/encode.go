// Package encode renders ir values and whole project documents back to
// pbxproj text.
package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/pbx"
	"github.com/pbx-format/go-pbx/token"
)

type EncState struct {
	depth  int
	header *bool

	colorType ir.Type
	colorAttr ColorAttr
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode renders a whole project document.
func Encode(p *pbx.Project, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.header == nil || *es.header {
		if err := writeString(w, es, ir.ObjectType, CommentColor, "// !$*UTF8*$!\n"); err != nil {
			return err
		}
	}
	if err := encode(p.ToNode(), w, es); err != nil {
		return err
	}
	return writeString(w, es, ir.ObjectType, SepColor, "\n")
}

// EncodeNode renders a single value. No header is written unless
// explicitly requested.
func EncodeNode(y *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.header != nil && *es.header {
		if err := writeString(w, es, ir.ObjectType, CommentColor, "// !$*UTF8*$!\n"); err != nil {
			return err
		}
	}
	return encode(y, w, es)
}

func encode(y *ir.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case ir.StringType:
		s := y.String
		if token.NeedsQuote(s) {
			s = token.Quote(s)
		}
		return writeString(w, es, ir.StringType, ValueColor, s)
	case ir.NumberType:
		v := int64(0)
		if y.Int64 != nil {
			v = *y.Int64
		}
		return writeString(w, es, ir.NumberType, ValueColor, strconv.FormatInt(v, 10))
	case ir.BoolType:
		s := "NO"
		if y.Bool {
			s = "YES"
		}
		return writeString(w, es, ir.BoolType, ValueColor, s)
	case ir.KindType:
		return writeString(w, es, ir.KindType, ValueColor, y.String)
	case ir.ObjectType:
		return encodeObject(y, w, es)
	case ir.ArrayType:
		return encodeArray(y, w, es)
	}
	return nil
}

func encodeObject(y *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es, ir.ObjectType, SepColor, "{\n"); err != nil {
		return err
	}
	es.depth++
	for i := range y.Fields {
		key := y.Fields[i].String
		if token.NeedsQuote(key) {
			key = token.Quote(key)
		}
		if err := writeString(w, es, ir.ObjectType, SepColor, indent(es.depth)); err != nil {
			return err
		}
		if err := writeString(w, es, ir.ObjectType, FieldColor, key); err != nil {
			return err
		}
		if err := writeString(w, es, ir.ObjectType, SepColor, " = "); err != nil {
			return err
		}
		if err := encode(y.Values[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, es, ir.ObjectType, SepColor, ";\n"); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, es, ir.ObjectType, SepColor, indent(es.depth)+"}")
}

func encodeArray(y *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es, ir.ArrayType, SepColor, "(\n"); err != nil {
		return err
	}
	es.depth++
	for _, v := range y.Values {
		if err := writeString(w, es, ir.ArrayType, SepColor, indent(es.depth)); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if err := writeString(w, es, ir.ArrayType, SepColor, ",\n"); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, es, ir.ArrayType, SepColor, indent(es.depth)+")")
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}

func writeString(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	_, err := io.WriteString(w, s)
	return err
}
