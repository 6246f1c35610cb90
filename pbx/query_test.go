package pbx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func queryGraph(t *testing.T) *Graph {
	t.Helper()
	p, err := Parse([]byte(sampleProject))
	require.NoError(t, err)
	return p.Objects
}

func TestQueryByKind(t *testing.T) {
	g := queryGraph(t)
	ms, err := Query(g.Weak(), `isa == "PBXNativeTarget"`)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	require.Equal(t, "D77777777777777777777777", ms[0].ID)
	target := ms[0].Object.(*NativeTarget)
	require.Equal(t, "App", target.Name)
}

func TestQueryByField(t *testing.T) {
	g := queryGraph(t)
	ms, err := Query(g.Weak(), `isa == "XCBuildConfiguration" && name == "Debug"`)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	require.Equal(t, "D55555555555555555555555", ms[0].ID)

	ms, err = Query(g.Weak(), `name == "Nope"`)
	require.NoError(t, err)
	require.Empty(t, ms)
}

func TestQueryNonBoolIgnored(t *testing.T) {
	g := queryGraph(t)
	// a non-boolean result selects nothing rather than failing
	ms, err := Query(g.Weak(), `id`)
	require.NoError(t, err)
	require.Empty(t, ms)
}

func TestQueryCompileErr(t *testing.T) {
	_, err := Query(queryGraph(t).Weak(), `&&&`)
	require.Error(t, err)
}
