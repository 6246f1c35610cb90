// Package libdiff computes structural diffs between parsed pbxproj
// values, for comparing two revisions of a project document.
package libdiff

import (
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pbx-format/go-pbx/ir"
)

// DiffFunc compares two values and returns a diff node, or nil when
// they are equal.
type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff is the default DiffFunc: it recurses into objects and arrays
// and reports changed scalars as from/to pairs.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil || from.Type != to.Type:
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, Diff)
	case ir.ArrayType:
		return diffArray(from, to, Diff)
	default:
		if scalarEqual(from, to) {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff builds a {from: ..., to: ...} node; an absent side is
// rendered as an empty string.
func MakeDiff(from, to *ir.Node) *ir.Node {
	f, t := from, to
	if f == nil {
		f = ir.FromString("")
	} else {
		f = f.Clone()
	}
	if t == nil {
		t = ir.FromString("")
	} else {
		t = t.Clone()
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "from", Val: f},
		{Key: "to", Val: t},
	})
}

// DiffObject aligns the two objects' field sequences with a rune-level
// diff over interned field names, then recurses on fields both sides
// share.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	kvs := []ir.KeyVal{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				kvs = append(kvs, ir.KeyVal{Key: runeMap[r], Val: MakeDiff(from.Values[fi], nil)})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				if fRes := df(from.Values[fi], to.Values[ti]); fRes != nil {
					kvs = append(kvs, ir.KeyVal{Key: runeMap[r], Val: fRes})
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				kvs = append(kvs, ir.KeyVal{Key: runeMap[r], Val: MakeDiff(nil, to.Values[ti])})
				ti++
			}
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

func diffArray(from, to *ir.Node, df DiffFunc) *ir.Node {
	n := max(len(from.Values), len(to.Values))
	kvs := []ir.KeyVal{}
	for i := 0; i < n; i++ {
		var f, t *ir.Node
		if i < len(from.Values) {
			f = from.Values[i]
		}
		if i < len(to.Values) {
			t = to.Values[i]
		}
		if res := df(f, t); res != nil {
			kvs = append(kvs, ir.KeyVal{Key: strconv.Itoa(i), Val: res})
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func scalarEqual(a, b *ir.Node) bool {
	switch a.Type {
	case ir.StringType, ir.KindType:
		return a.String == b.String
	case ir.BoolType:
		return a.Bool == b.Bool
	case ir.NumberType:
		av, bv := int64(0), int64(0)
		if a.Int64 != nil {
			av = *a.Int64
		}
		if b.Int64 != nil {
			bv = *b.Int64
		}
		return av == bv
	}
	return false
}
