// Package ir provides the generic in-memory representation of pbxproj
// values.
//
// A Node is a tagged union over the literal forms of the format: string,
// object (ordered, key-unique), array, integer number, boolean, and
// object-kind tag. Numeric tokens containing a decimal point are
// represented as strings, never coerced to floats: in pbxproj they are
// version strings, not arithmetic quantities.
package ir

import (
	"slices"

	"github.com/pbx-format/go-pbx/kind"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Int64  *int64
	Bool   bool
	Kind   kind.Kind
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromKind builds a kind node from a raw isa tag. The raw tag is kept
// in String so unknown kinds survive a round trip.
func FromKind(tag string) *Node {
	return &Node{Type: KindType, String: tag, Kind: kind.FromTag(tag)}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node preserving the given field order.
// A repeated key overwrites the earlier value in place: last write
// wins.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		res.Set(key, m[key])
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// Set adds or overwrites the field key on an object node.
func (y *Node) Set(key string, val *Node) {
	for i := range y.Fields {
		if y.Fields[i].String == key {
			val.Parent = y
			val.ParentIndex = i
			val.ParentField = key
			y.Values[i] = val
			return
		}
	}
	i := len(y.Fields)
	f := &Node{Type: StringType, String: key, Parent: y, ParentIndex: i, ParentField: key}
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = key
	y.Fields = append(y.Fields, f)
	y.Values = append(y.Values, val)
}

// Get returns the value of field on an object node, or nil.
func Get(y *Node, field string) *Node {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// ToMap flattens an object node into a map, dropping field order.
func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Fields))
	for i := range y.Fields {
		res[y.Fields[i].String] = y.Values[i]
	}
	return res
}

func (y *Node) Clone() *Node {
	return y.CloneTo(&Node{})
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Kind = y.Kind
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dstF := yf.CloneTo(&Node{})
		dstF.Parent = dst
		dst.Fields[i] = dstF
	}
	for i, yv := range y.Values {
		dstV := yv.CloneTo(&Node{})
		dstV.Parent = dst
		dst.Values[i] = dstV
	}
	return dst
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
