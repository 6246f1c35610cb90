package parse

import (
	"errors"
	"testing"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/kind"
)

func TestParseValueOK(t *testing.T) {
	pts := []struct {
		in string
		e  ir.Type
	}{
		{in: `1`, e: ir.NumberType},
		{in: `-42`, e: ir.NumberType},
		{in: `1.0.2`, e: ir.StringType},
		{in: `YES`, e: ir.BoolType},
		{in: `NO`, e: ir.BoolType},
		{in: `main.m`, e: ir.StringType},
		{in: `"quoted string"`, e: ir.StringType},
		{in: `AA0123456789ABCDEF012345`, e: ir.StringType},
		{in: `PBXBuildFile`, e: ir.KindType},
		{in: `{}`, e: ir.ObjectType},
		{in: `{a = 1;}`, e: ir.ObjectType},
		{in: `()`, e: ir.ArrayType},
		{in: `(a, b, c)`, e: ir.ArrayType},
		{in: `(a, b, c,)`, e: ir.ArrayType},
		{in: "(\n\ta /* one */,\n\tb,\n)", e: ir.ArrayType},
		{in: `{a = {b = (1, 2);}; c = "d";}`, e: ir.ObjectType},
		{in: "/* leading */ 7", e: ir.NumberType},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := ParseValue([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if node.Type != pt.e {
			t.Errorf("%q: got %s, want %s", pt.in, node.Type, pt.e)
		}
	}
}

func TestParseOK(t *testing.T) {
	pts := []string{
		`{}`,
		"// !$*UTF8*$!\n{}",
		`{archiveVersion = 1;}`,
		`{a = 1; b = (x, y); c = {d = YES;};}`,
		"{\n\t// comment\n\ta = 1; /* trailing */\n}",
	}
	for _, in := range pts {
		if _, err := Parse([]byte(in)); err != nil {
			t.Errorf("# doc\n%s\n# error %v", in, err)
		}
	}
}

func TestParseErrs(t *testing.T) {
	pts := []struct {
		in string
		e  error
	}{
		{in: ``, e: nil},
		{in: `1`, e: ErrParse},        // document must be an object
		{in: `{} trailing`, e: ErrParse},
		{in: `{a = 1}`, e: ErrParse},  // missing semicolon
		{in: `{a = 1;`, e: ErrParse},  // unclosed object
		{in: `{a 1;}`, e: ErrParse},   // missing =
		{in: `{a = ;}`, e: ErrParse},  // missing value
		{in: `{= 1;}`, e: ErrParse},   // missing key
		{in: `{a = (1;}`, e: ErrParse}, // unclosed array
		{in: `{a = 99999999999999999999;}`, e: ErrParse}, // overflows int64
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: no error", pt.in)
			continue
		}
		if pt.e != nil && !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v", pt.in, err)
		}
	}
}

func TestParseValues(t *testing.T) {
	node, err := Parse([]byte(`{
		isa = PBXBuildFile;
		fileRef = ABCDEF0123456789ABCDEF01 /* main.m */;
		count = 3;
		visible = NO;
		version = 1.0.2;
	}`))
	if err != nil {
		t.Fatal(err)
	}
	isa := ir.Get(node, "isa")
	if isa.Type != ir.KindType || isa.Kind != kind.PBXBuildFile || isa.String != "PBXBuildFile" {
		t.Errorf("isa: %v %v %q", isa.Type, isa.Kind, isa.String)
	}
	ref := ir.Get(node, "fileRef")
	if ref.Type != ir.StringType || ref.String != "ABCDEF0123456789ABCDEF01" {
		t.Errorf("fileRef: %v %q", ref.Type, ref.String)
	}
	count := ir.Get(node, "count")
	if count.Type != ir.NumberType || *count.Int64 != 3 {
		t.Errorf("count: %v", count)
	}
	if v := ir.Get(node, "visible"); v.Type != ir.BoolType || v.Bool {
		t.Errorf("visible: %v", v)
	}
	if v := ir.Get(node, "version"); v.Type != ir.StringType || v.String != "1.0.2" {
		t.Errorf("version: %v %q", v.Type, v.String)
	}
}

func TestParseField(t *testing.T) {
	key, val, err := ParseField([]byte(`fileRef = ABCDEF0123456789ABCDEF01 /* main.m */;`))
	if err != nil {
		t.Fatal(err)
	}
	if key != "fileRef" {
		t.Errorf("key %q", key)
	}
	if val.Type != ir.StringType || val.String != "ABCDEF0123456789ABCDEF01" {
		t.Errorf("val %v %q", val.Type, val.String)
	}
	if _, _, err := ParseField([]byte(`a = 1; b = 2;`)); err == nil {
		t.Error("two fields: no error")
	}
	if _, _, err := ParseField([]byte(``)); err == nil {
		t.Error("empty: no error")
	}
}

func TestParseFieldObjectEntry(t *testing.T) {
	key, val, err := ParseField([]byte(
		`ABCDEF0123456789ABCDEF01 = { isa = PBXBuildFile; fileRef = F2E640B5C2B85914F6801498; };`))
	if err != nil {
		t.Fatal(err)
	}
	if key != "ABCDEF0123456789ABCDEF01" {
		t.Errorf("key %q", key)
	}
	if val.Type != ir.ObjectType {
		t.Fatalf("value is %s", val.Type)
	}
	isa := ir.Get(val, "isa")
	if isa.Type != ir.KindType || isa.Kind != kind.PBXBuildFile {
		t.Errorf("isa: %v %v", isa.Type, isa.Kind)
	}
	ref := ir.Get(val, "fileRef")
	if ref.Type != ir.StringType || ref.String != "F2E640B5C2B85914F6801498" {
		t.Errorf("fileRef: %v %q", ref.Type, ref.String)
	}
}

func TestParseDuplicateKey(t *testing.T) {
	node, err := Parse([]byte(`{a = 1; a = 2;}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 1 {
		t.Fatalf("got %d fields", len(node.Fields))
	}
	if *ir.Get(node, "a").Int64 != 2 {
		t.Errorf("a = %d, want 2", *ir.Get(node, "a").Int64)
	}
}

func TestParseQuotedKey(t *testing.T) {
	node, err := Parse([]byte(`{"a key" = "a value";}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "a key"); got == nil || got.String != "a value" {
		t.Errorf("quoted key lookup: %v", got)
	}
}
