// Package debug holds env-gated debug switches for the library. All
// switches default to off; set PBX_DEBUG_* to a truthy value to enable.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Map      bool
	Graph    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("PBX_DEBUG_TOKENIZE")
	d.Parse = boolEnv("PBX_DEBUG_PARSE")
	d.Map = boolEnv("PBX_DEBUG_MAP")
	d.Graph = boolEnv("PBX_DEBUG_GRAPH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Map() bool {
	return d.Map
}
func Graph() bool {
	return d.Graph
}

// Dump writes a labeled deep dump of vs to stderr.
func Dump(label string, vs ...any) {
	fmt.Fprintf(os.Stderr, "%s:\n", label)
	for _, v := range vs {
		spew.Fdump(os.Stderr, v)
	}
}
