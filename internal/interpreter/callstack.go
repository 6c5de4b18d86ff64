package interpreter

import "github.com/cwbudde/loxwalk/internal/diagnostics"

// CallStack tracks active user-function calls for recursion-depth
// enforcement and stack-trace reporting. Grounded on the teacher's
// internal/interp/runtime.CallStack, retargeted to carry
// diagnostics.StackFrame instead of DWScript's compiler stack frames.
type CallStack struct {
	frames   diagnostics.StackTrace
	maxDepth int
}

// NewCallStack creates a CallStack with the given maximum depth. A
// non-positive maxDepth falls back to DefaultMaxCallDepth.
func NewCallStack(maxDepth int) *CallStack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxCallDepth
	}
	return &CallStack{maxDepth: maxDepth}
}

// Push records a new call frame, failing with a runtime error if it would
// exceed maxDepth.
func (cs *CallStack) Push(functionName string, line int) error {
	if len(cs.frames) >= cs.maxDepth {
		return &diagnostics.Diagnostic{
			Phase:   diagnostics.PhaseRuntime,
			Line:    line,
			Message: "Stack overflow.",
		}
	}
	cs.frames = append(cs.frames, diagnostics.StackFrame{FunctionName: functionName, Line: line})
	return nil
}

// Pop removes the most recent frame. A no-op on an empty stack.
func (cs *CallStack) Pop() {
	if len(cs.frames) > 0 {
		cs.frames = cs.frames[:len(cs.frames)-1]
	}
}

// Depth returns the number of active calls.
func (cs *CallStack) Depth() int { return len(cs.frames) }

// Trace returns a snapshot of the current call stack, oldest first.
func (cs *CallStack) Trace() diagnostics.StackTrace {
	trace := make(diagnostics.StackTrace, len(cs.frames))
	copy(trace, cs.frames)
	return trace
}
