package encode

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/pbx-format/go-pbx/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: CommentColor}
		colors.Map[able] = color.BlueString
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = colorDefault
	}
	colors.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = color.GreenString
	colors.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.MagentaString
	colors.Map[Colorable{Type: ir.KindType, Attr: ValueColor}] = color.CyanString
	colors.Map[Colorable{Type: ir.ArrayType, Attr: ValueColor}] = colorDefault
	colors.Map[Colorable{Type: ir.ObjectType, Attr: ValueColor}] = colorDefault
	return colors
}

// AutoColors returns NewColors when stdout is a terminal, nil
// otherwise.
func AutoColors() *Colors {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return NewColors()
	}
	return nil
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
