// Package nativefn supplies the host-provided native functions spec.md §6
// names: clock() and lox(). Grounded on the teacher's internal/builtins
// registration-table idiom (name → arity → Go closure), shrunk from
// DWScript's large math/string/datetime stdlib to this language's two
// functions.
package nativefn

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/cwbudde/loxwalk/internal/environment"
	"github.com/cwbudde/loxwalk/internal/value"
)

// banner is lox()'s decorative return value. Its exact text is
// implementation-defined (spec.md §6: "out of scope; any string is
// acceptable").
const banner = "lox 0.1 — a tree-walking interpreter"

// DefineGlobals installs every native function into tree's current frame.
// Callers must invoke this exactly once, immediately after environment.New,
// while the global frame is still current.
func DefineGlobals(tree *environment.Tree) {
	DefineGlobalsFiltered(tree, func(string) bool { return true })
}

// DefineGlobalsFiltered is DefineGlobals restricted by allowed, the
// internal/config native-function allowlist (SPEC_FULL.md §3). A function
// rejected by allowed is simply not defined, so calling it by name produces
// the ordinary "Undefined variable" runtime error rather than a special
// permission error.
func DefineGlobalsFiltered(tree *environment.Tree, allowed func(name string) bool) {
	for _, fn := range all() {
		if allowed(fn.Name) {
			tree.Define(fn.Name, fn)
		}
	}
}

// Names returns every native function's name in sorted order, for the
// CLI's `version` command (SPEC_FULL.md §3's CLI introspection).
func Names() []string {
	fns := all()
	names := make([]string, len(fns))
	for i, fn := range fns {
		names[i] = fn.Name
	}
	slices.Sort(names)
	return names
}

func all() []*value.NativeFunction {
	return []*value.NativeFunction{
		{
			Name:  "clock",
			Arity: 0,
			Fn: func(args []value.Value) (value.Value, error) {
				return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
			},
		},
		{
			Name:  "lox",
			Arity: 0,
			Fn: func(args []value.Value) (value.Value, error) {
				return value.Str(banner), nil
			},
		},
	}
}
