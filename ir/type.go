package ir

type Type int

const (
	StringType Type = iota
	ObjectType
	ArrayType
	NumberType
	BoolType
	KindType
)

func (t Type) String() string {
	switch t {
	case StringType:
		return "string"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	case NumberType:
		return "number"
	case BoolType:
		return "bool"
	case KindType:
		return "kind"
	}
	return "invalid"
}

func Types() []Type {
	return []Type{StringType, ObjectType, ArrayType, NumberType, BoolType, KindType}
}
