// Package environment implements the arena-based lexical environment tree
// (spec.md §4.1). Every scope — the global scope, a block, a function
// call's parameter frame — is a node in one arena; closures keep scopes
// alive across calls by retaining their node instead of copying bindings.
//
// Node storage is backed by github.com/dolthub/swiss (via the mna/swiss
// fork, SPEC_FULL.md §3 domain stack), the same open-addressing hash map
// mna-nenuphar's scripting runtime uses for its own Map value — grounded on
// _examples/mna-nenuphar/lang/machine/map.go.
package environment

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/cwbudde/loxwalk/internal/value"
)

// frame is one arena slot: a binding table plus a parent pointer.
type frame struct {
	parent    value.NodeID
	hasParent bool
	bindings  *swiss.Map[string, value.Value]
	retained  bool
}

func newFrame(parent value.NodeID, hasParent bool) *frame {
	return &frame{
		parent:    parent,
		hasParent: hasParent,
		bindings:  swiss.NewMap[string, value.Value](8),
	}
}

// Tree is the arena of environment frames plus a "current" cursor.
// The zero value is not usable; construct with New.
type Tree struct {
	nodes   []*frame
	global  value.NodeID
	current value.NodeID
}

// New creates a Tree with a single, permanently-retained global frame as
// both root and current node (spec.md §4.1: "the global root is never
// freed").
func New() *Tree {
	t := &Tree{}
	root := newFrame(0, false)
	root.retained = true
	t.nodes = append(t.nodes, root)
	t.global = 0
	t.current = 0
	return t
}

// Global returns the global frame's NodeID.
func (t *Tree) Global() value.NodeID { return t.global }

// Current returns the currently active frame's NodeID.
func (t *Tree) Current() value.NodeID { return t.current }

// Push creates a new child frame under the current frame, makes it current,
// and returns its id. Used when entering a block or a function call's
// parameter scope.
func (t *Tree) Push() value.NodeID {
	id := value.NodeID(len(t.nodes))
	t.nodes = append(t.nodes, newFrame(t.current, true))
	t.current = id
	return id
}

// Pop leaves the current frame, restoring its parent as current. If the
// frame being left was never retained by a closure, its bindings are
// dropped so memory does not grow with every block/call the program
// executes — the "refcounting, not tracing GC" reclamation spec.md's
// Non-goals call for. Popping the global root is a no-op (spec.md §4.1:
// "the global root is never freed" — there is nowhere further out to
// restore to, so Pop simply leaves it current).
func (t *Tree) Pop() {
	leaving := t.nodes[t.current]
	if !leaving.hasParent {
		return
	}
	if !leaving.retained {
		leaving.bindings = nil
	}
	t.current = leaving.parent
}

// RetainCurrent marks the current frame, and every not-yet-retained
// ancestor above it, as retained so that Pop will never clear their
// bindings. Called when a function literal or method closes over the
// current scope (spec.md §4.1, §4.5); returns the current NodeID for the
// caller to store as the resulting Function's ClosureID.
func (t *Tree) RetainCurrent() value.NodeID {
	for id := t.current; ; {
		f := t.nodes[id]
		if f.retained {
			break
		}
		f.retained = true
		if !f.hasParent {
			break
		}
		id = f.parent
	}
	return t.current
}

// Checkout temporarily makes id the current frame — used to re-enter a
// function's closure before pushing its call frame — and returns a restore
// func that puts the previous current frame back. The caller must always
// invoke restore, typically via defer.
func (t *Tree) Checkout(id value.NodeID) (restore func()) {
	prev := t.current
	t.current = id
	return func() { t.current = prev }
}

// Define binds name to v in the current frame, shadowing any binding of the
// same name in an enclosing frame (spec.md §4.1).
func (t *Tree) Define(name string, v value.Value) {
	t.nodes[t.current].bindings.Put(name, v)
}

// Get reads name. distance is the resolver's ScopeOffset: nil means "look
// in the global frame directly", a non-nil *int means "walk that many
// parent hops up from the current frame" (spec.md §4.2).
func (t *Tree) Get(name string, distance *int) (value.Value, bool) {
	id := t.frameFor(distance)
	f := t.nodes[id]
	if f.bindings == nil {
		return value.Nil, false
	}
	return f.bindings.Get(name)
}

// Assign rewrites an existing binding of name, following the same distance
// rule as Get. It reports false if name is not already bound there
// (spec.md §4.1: assignment never implicitly declares).
func (t *Tree) Assign(name string, v value.Value, distance *int) bool {
	id := t.frameFor(distance)
	f := t.nodes[id]
	if f.bindings == nil {
		return false
	}
	if _, ok := f.bindings.Get(name); !ok {
		return false
	}
	f.bindings.Put(name, v)
	return true
}

// frameFor walks distance parent hops up from the current frame. A
// distance that runs past the root is a resolver/evaluator
// inconsistency — the resolver only ever emits a distance that the
// environment tree's actual nesting at that point can satisfy — so it
// panics rather than silently resolving to the global frame.
func (t *Tree) frameFor(distance *int) value.NodeID {
	if distance == nil {
		return t.global
	}
	id := t.current
	for i := 0; i < *distance; i++ {
		f := t.nodes[id]
		if !f.hasParent {
			panic(fmt.Sprintf("environment: scope distance %d exceeds available ancestors (ran out at hop %d)", *distance, i))
		}
		id = f.parent
	}
	return id
}
