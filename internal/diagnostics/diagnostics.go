// Package diagnostics formats errors from every pipeline phase — scan,
// parse, resolve, runtime — into the "[line N] ..." form spec.md §6/§7
// requires, optionally with a source-line-and-caret context block.
//
// Grounded on the teacher's internal/errors package (CompilerError.Format),
// generalized from compiler-only errors to cover all four of this
// interpreter's phases.
package diagnostics

import (
	"fmt"
	"strings"
)

// Phase names which stage of the pipeline produced a Diagnostic
// (spec.md §7, "Error taxonomy").
type Phase string

const (
	PhaseScan    Phase = "scan"
	PhaseParse   Phase = "parse"
	PhaseResolve Phase = "resolve"
	PhaseRuntime Phase = "runtime"
)

// Diagnostic is one reported error, with enough position information to
// print a caret under the offending source text.
type Diagnostic struct {
	Phase   Phase
	Line    int
	Column  int // 0 if unknown; Format omits the caret line in that case
	Message string
}

// Error implements the error interface with spec.md §6's short form:
// "[line N] <message>".
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] %s", d.Line, d.Message)
}

// Format renders d with a source-line-and-caret context block, the same
// shape as the teacher's CompilerError.Format. source may be empty (e.g.
// REPL input already consumed), in which case only the header line prints.
func (d *Diagnostic) Format(source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[line %d] Error: %s\n", d.Line, d.Message)

	line := sourceLine(source, d.Line)
	if line == "" || d.Column <= 0 {
		return strings.TrimRight(sb.String(), "\n")
	}

	prefix := fmt.Sprintf("%4d | ", d.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", len(prefix)+d.Column-1))
	sb.WriteString("^")
	return sb.String()
}

func sourceLine(source string, line int) string {
	if line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
