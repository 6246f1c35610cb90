package libdiff

import (
	"testing"

	"github.com/pbx-format/go-pbx/ir"
	"github.com/pbx-format/go-pbx/parse"
)

func mustParse(t *testing.T, src string) *ir.Node {
	t.Helper()
	y, err := parse.ParseValue([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestDiffEqual(t *testing.T) {
	a := mustParse(t, `{isa = PBXBuildFile; fileRef = AA0123456789ABCDEF012345;}`)
	b := mustParse(t, `{isa = PBXBuildFile; fileRef = AA0123456789ABCDEF012345;}`)
	if d := Diff(a, b); d != nil {
		t.Errorf("equal objects diff: %v", d)
	}
}

func TestDiffChangedField(t *testing.T) {
	a := mustParse(t, `{name = Debug; count = 1;}`)
	b := mustParse(t, `{name = Release; count = 1;}`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("no diff")
	}
	if len(d.Fields) != 1 || d.Fields[0].String != "name" {
		t.Fatalf("diff fields: %v", d.Fields)
	}
	entry := ir.Get(d, "name")
	if got := ir.Get(entry, "from").String; got != "Debug" {
		t.Errorf("from %q", got)
	}
	if got := ir.Get(entry, "to").String; got != "Release" {
		t.Errorf("to %q", got)
	}
}

func TestDiffAddRemove(t *testing.T) {
	a := mustParse(t, `{keep = 1; gone = x;}`)
	b := mustParse(t, `{keep = 1; added = y;}`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("no diff")
	}
	gone := ir.Get(d, "gone")
	if gone == nil || ir.Get(gone, "from").String != "x" || ir.Get(gone, "to").String != "" {
		t.Errorf("gone entry: %v", gone)
	}
	added := ir.Get(d, "added")
	if added == nil || ir.Get(added, "from").String != "" || ir.Get(added, "to").String != "y" {
		t.Errorf("added entry: %v", added)
	}
	if ir.Get(d, "keep") != nil {
		t.Error("unchanged field in diff")
	}
}

func TestDiffNested(t *testing.T) {
	a := mustParse(t, `{settings = {PRODUCT_NAME = App; SDKROOT = iphoneos;};}`)
	b := mustParse(t, `{settings = {PRODUCT_NAME = Other; SDKROOT = iphoneos;};}`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("no diff")
	}
	inner := ir.Get(ir.Get(d, "settings"), "PRODUCT_NAME")
	if inner == nil {
		t.Fatal("nested change not reported")
	}
	if ir.Get(inner, "from").String != "App" || ir.Get(inner, "to").String != "Other" {
		t.Errorf("nested entry: %v", inner)
	}
}

func TestDiffArrays(t *testing.T) {
	a := mustParse(t, `(a, b, c)`)
	b := mustParse(t, `(a, x, c, d)`)
	d := Diff(a, b)
	if d == nil {
		t.Fatal("no diff")
	}
	if e := ir.Get(d, "1"); e == nil || ir.Get(e, "from").String != "b" || ir.Get(e, "to").String != "x" {
		t.Errorf("element 1: %v", e)
	}
	if e := ir.Get(d, "3"); e == nil || ir.Get(e, "to").String != "d" {
		t.Errorf("element 3: %v", e)
	}
	if ir.Get(d, "0") != nil || ir.Get(d, "2") != nil {
		t.Error("unchanged elements in diff")
	}
}

func TestDiffTypeChange(t *testing.T) {
	a := mustParse(t, `{v = 1;}`)
	b := mustParse(t, `{v = one;}`)
	d := Diff(a, b)
	entry := ir.Get(d, "v")
	if entry == nil {
		t.Fatal("no entry for type change")
	}
	if ir.Get(entry, "from").Type != ir.NumberType {
		t.Errorf("from type %v", ir.Get(entry, "from").Type)
	}
	if ir.Get(entry, "to").String != "one" {
		t.Errorf("to %v", ir.Get(entry, "to"))
	}
}
