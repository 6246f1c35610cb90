package pbx

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/kind"
	"github.com/pbx-format/go-pbx/token"
)

// Record is a consuming view over one object's fields. Typed accessors
// remove the field on success, so a field is interpreted at most once
// per construction; whatever remains afterwards is residue the caller
// may preserve.
//
// Keys are normalized to lower_snake_case on construction; see
// NormalizeKey for the exceptions.
type Record map[string]*ir.Node

// NewRecord builds a record from an object node, normalizing the keys
// of that level only. Nested objects keep their spelling until they are
// themselves turned into records.
func NewRecord(y *ir.Node) Record {
	rec := make(Record, len(y.Fields))
	for i := range y.Fields {
		rec[NormalizeKey(y.Fields[i].String)] = y.Values[i]
	}
	return rec
}

// NormalizeKey converts an external lowerCamelCase key to the internal
// lower_snake_case convention. Keys that are identifier-shaped (object
// ids used as map keys), contain underscores, or have no lowercase
// letters (build-setting names) pass through verbatim.
func NormalizeKey(k string) string {
	if token.IsReference(k) || strings.ContainsRune(k, '_') {
		return k
	}
	hasLower := false
	for _, r := range k {
		if unicode.IsLower(r) {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return k
	}
	rs := []rune(k)
	var b strings.Builder
	for i, r := range rs {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		prevLower := i > 0 && !unicode.IsUpper(rs[i-1])
		nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
		if i > 0 && (prevLower || nextLower) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

var acronyms = map[string]string{
	"url":  "URL",
	"id":   "ID",
	"uuid": "UUID",
	"xml":  "XML",
}

// DenormalizeKey is the inverse of NormalizeKey, used when rendering a
// record back to pbxproj spelling.
func DenormalizeKey(k string) string {
	if token.IsReference(k) {
		return k
	}
	parts := strings.Split(k, "_")
	if len(parts) == 1 {
		return k
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		if up, ok := acronyms[p]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func (r Record) take(key string, want ir.Type) (*ir.Node, error) {
	y, ok := r[key]
	if !ok {
		return nil, &MissingField{Key: key}
	}
	if y.Type != want {
		return nil, &TypeMismatch{Key: key, Want: want, Got: y.Type}
	}
	delete(r, key)
	return y, nil
}

func (r Record) TakeNumber(key string) (int64, error) {
	y, err := r.take(key, ir.NumberType)
	if err != nil {
		return 0, err
	}
	return *y.Int64, nil
}

func (r Record) TakeString(key string) (string, error) {
	y, err := r.take(key, ir.StringType)
	if err != nil {
		return "", err
	}
	return y.String, nil
}

// TakeBool accepts only boolean values (the YES/NO literal forms). A
// string in boolean position fails with InvalidBoolLiteral.
func (r Record) TakeBool(key string) (bool, error) {
	y, ok := r[key]
	if !ok {
		return false, &MissingField{Key: key}
	}
	switch y.Type {
	case ir.BoolType:
		delete(r, key)
		return y.Bool, nil
	case ir.StringType:
		return false, &InvalidBoolLiteral{Text: y.String}
	default:
		return false, &TypeMismatch{Key: key, Want: ir.BoolType, Got: y.Type}
	}
}

// TakeFlag reads a boolean that pbxproj may spell as YES/NO or as the
// integers 0/1.
func (r Record) TakeFlag(key string) (bool, error) {
	y, ok := r[key]
	if !ok {
		return false, &MissingField{Key: key}
	}
	switch y.Type {
	case ir.BoolType:
		delete(r, key)
		return y.Bool, nil
	case ir.NumberType:
		delete(r, key)
		return *y.Int64 == 1, nil
	default:
		return false, &TypeMismatch{Key: key, Want: ir.BoolType, Got: y.Type}
	}
}

// TakeObject returns the raw object node without normalizing its keys,
// for payloads such as build settings whose spelling is data.
func (r Record) TakeObject(key string) (*ir.Node, error) {
	return r.take(key, ir.ObjectType)
}

// TakeRecord consumes an object field as a nested record with
// normalized keys.
func (r Record) TakeRecord(key string) (Record, error) {
	y, err := r.take(key, ir.ObjectType)
	if err != nil {
		return nil, err
	}
	return NewRecord(y), nil
}

func (r Record) TakeArray(key string) ([]*ir.Node, error) {
	y, err := r.take(key, ir.ArrayType)
	if err != nil {
		return nil, err
	}
	return y.Values, nil
}

// TakeStrings consumes an array field whose elements are all strings.
func (r Record) TakeStrings(key string) ([]string, error) {
	vs, err := r.TakeArray(key)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(vs))
	for i, v := range vs {
		if v.Type != ir.StringType {
			return nil, &TypeMismatch{Key: key, Want: ir.StringType, Got: v.Type}
		}
		res[i] = v.String
	}
	return res, nil
}

// TakeKind consumes the isa field, returning the mapped kind and the
// raw tag text. An unrecognized tag maps to kind.Unknown, never an
// error.
func (r Record) TakeKind() (kind.Kind, string, error) {
	y, ok := r["isa"]
	if !ok {
		return kind.Unknown, "", &MissingField{Key: "isa"}
	}
	delete(r, "isa")
	switch y.Type {
	case ir.KindType:
		return y.Kind, y.String, nil
	case ir.StringType:
		return kind.FromTag(y.String), y.String, nil
	default:
		return kind.Unknown, "", &TypeMismatch{Key: "isa", Want: ir.KindType, Got: y.Type}
	}
}

// Optional accessors: absent fields yield zero values, wrong shapes
// still fail.

func (r Record) OptNumber(key string) (int64, error) {
	if _, ok := r[key]; !ok {
		return 0, nil
	}
	return r.TakeNumber(key)
}

func (r Record) OptString(key string) (string, error) {
	if _, ok := r[key]; !ok {
		return "", nil
	}
	return r.TakeString(key)
}

func (r Record) OptFlag(key string) (bool, error) {
	if _, ok := r[key]; !ok {
		return false, nil
	}
	return r.TakeFlag(key)
}

func (r Record) OptObject(key string) (*ir.Node, error) {
	if _, ok := r[key]; !ok {
		return nil, nil
	}
	return r.TakeObject(key)
}

func (r Record) OptRecord(key string) (Record, error) {
	if _, ok := r[key]; !ok {
		return nil, nil
	}
	return r.TakeRecord(key)
}

func (r Record) OptStrings(key string) ([]string, error) {
	if _, ok := r[key]; !ok {
		return nil, nil
	}
	return r.TakeStrings(key)
}

// Setters used when rendering objects back to generic records.

func (r Record) PutNumber(key string, v int64) {
	r[key] = ir.FromInt(v)
}

func (r Record) PutString(key, v string) {
	r[key] = ir.FromString(v)
}

func (r Record) PutBool(key string, v bool) {
	r[key] = ir.FromBool(v)
}

// PutFlag writes a boolean in the 0/1 spelling used by most numeric
// boolean fields.
func (r Record) PutFlag(key string, v bool) {
	if v {
		r[key] = ir.FromInt(1)
		return
	}
	r[key] = ir.FromInt(0)
}

func (r Record) PutStrings(key string, vs []string) {
	ns := make([]*ir.Node, len(vs))
	for i, v := range vs {
		ns[i] = ir.FromString(v)
	}
	r[key] = ir.FromSlice(ns)
}

func (r Record) PutNode(key string, y *ir.Node) {
	if y == nil {
		return
	}
	r[key] = y
}

// Clone returns a non-nil shallow copy.
func (r Record) Clone() Record {
	res := make(Record, len(r))
	maps.Copy(res, r)
	return res
}

// ToNode renders the record as an object node with external pbxproj
// key spellings, isa first and the rest sorted.
func (r Record) ToNode() *ir.Node {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, 0, len(keys))
	if isa, ok := r["isa"]; ok {
		kvs = append(kvs, ir.KeyVal{Key: "isa", Val: isa})
	}
	for _, k := range keys {
		if k == "isa" {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: DenormalizeKey(k), Val: r[k]})
	}
	return ir.FromKeyVals(kvs)
}
