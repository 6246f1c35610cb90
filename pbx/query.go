package pbx

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pbx-format/go-pbx/ir"
)

// Match is one graph entry selected by a query.
type Match struct {
	ID     string
	Object Object
}

// CompileQuery compiles a boolean expression evaluated per object. The
// environment exposes "id", "isa", and the object's record fields
// (internal snake_case spellings) as plain values.
func CompileQuery(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.AllowUndefinedVariables())
}

// Query runs a compiled or source query over the graph, returning the
// matches in iteration order.
func Query(h Handle, src string) ([]Match, error) {
	prog, err := CompileQuery(src)
	if err != nil {
		return nil, err
	}
	var res []Match
	var runErr error
	h.Each(func(id string, o Object) bool {
		env := queryEnv(id, o)
		out, err := expr.Run(prog, env)
		if err != nil {
			runErr = fmt.Errorf("query %q on %s: %w", src, id, err)
			return false
		}
		if b, ok := out.(bool); ok && b {
			res = append(res, Match{ID: id, Object: o})
		}
		return true
	})
	if runErr != nil {
		return nil, runErr
	}
	return res, nil
}

func queryEnv(id string, o Object) map[string]any {
	env := map[string]any{
		"id":  id,
		"isa": o.Kind().String(),
	}
	for k, v := range o.ToRecord() {
		if k == "isa" {
			continue
		}
		env[k] = ir.ToAny(v)
	}
	return env
}
