package encode

import (
	"bytes"
	"strings"

	"github.com/pbx-format/go-pbx/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeNode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
