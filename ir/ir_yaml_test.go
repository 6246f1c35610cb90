package ir

import (
	"strings"
	"testing"
)

func TestToYAML(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "isa", Val: FromKind("PBXGroup")},
		{Key: "children", Val: FromSlice([]*Node{FromString("a")})},
	})
	d, err := ToYAML(y)
	if err != nil {
		t.Fatal(err)
	}
	out := string(d)
	for _, want := range []string{"isa: PBXGroup", "children:", "- a"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml missing %q:\n%s", want, out)
		}
	}
}
