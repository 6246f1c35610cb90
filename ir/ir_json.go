package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToAny converts a node into plain Go values suitable for generic
// marshaling. Objects become map[string]any (field order dropped),
// kinds become their raw tag string.
func ToAny(y *Node) any {
	switch y.Type {
	case StringType, KindType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		return int64(0)
	case BoolType:
		return y.Bool
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values (as produced by generic
// unmarshaling) into a node. Floats with no fractional part become
// integers; others become strings, keeping the no-float invariant.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case int64:
		return FromInt(t), nil
	case int:
		return FromInt(int64(t)), nil
	case float64:
		if t == float64(int64(t)) {
			return FromInt(int64(t)), nil
		}
		return FromString(fmt.Sprintf("%v", t)), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		return FromString(t.String()), nil
	case []any:
		vs := make([]*Node, len(t))
		for i, e := range t {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for k, e := range t {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case nil:
		return FromString(""), nil
	default:
		return nil, fmt.Errorf("%w %T", ErrConvert, v)
	}
}

func ToJSON(y *Node) ([]byte, error) {
	return json.Marshal(ToAny(y))
}

func FromJSON(d []byte) (*Node, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
