// errors.go: structured interpreter errors and caret-snippet rendering.
//
// Every failure inside the reader or evaluator is raised by panicking with an
// *Error; the public entry points (Reader.Read, Interp.Eval and friends)
// recover it into an ordinary Go error. No error kind is caught or retried
// internally; each one aborts the current top-level form and surfaces at the
// read-eval loop boundary.
//
// Syntax errors additionally carry a source snippet: the offending line with
// one line of context either side and a caret under the column, so a
// diagnosis never requires re-opening the source.
package elysp

import (
	"fmt"
	"strings"
)

// ErrKind classifies an interpreter error.
type ErrKind int

const (
	ErrSyntax      ErrKind = iota // reader: unexpected character or end of input
	ErrUnbound                    // symbol with no binding anywhere in the chain
	ErrArity                      // argument count outside declared bounds
	ErrType                       // argument with the wrong variant tag
	ErrNotCallable                // apply target is not native/function/list
	ErrMalformed                  // special form with the wrong argument shape
	ErrUser                       // raised by the error primitive
)

func (k ErrKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUnbound:
		return "unbound symbol"
	case ErrArity:
		return "arity mismatch"
	case ErrType:
		return "type mismatch"
	case ErrNotCallable:
		return "not callable"
	case ErrMalformed:
		return "malformed form"
	case ErrUser:
		return "error"
	}
	return "error"
}

// Error is the single error type produced by the interpreter. Line and Col
// are 1-based and zero when no source position applies; Snippet, when set,
// is the full caret-annotated rendering.
type Error struct {
	Kind    ErrKind
	Msg     string
	Line    int
	Col     int
	Snippet string
}

func (e *Error) Error() string {
	if e.Snippet != "" {
		return e.Snippet
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// failf raises an interpreter error. It never returns.
func failf(kind ErrKind, format string, args ...any) {
	panic(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

// catch converts a panicking *Error into the caller's error return. Any
// other panic value is re-raised untouched.
func catch(err *error) {
	if r := recover(); r != nil {
		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		*err = e
	}
}

// lineCol converts a byte offset into 1-based line/column coordinates.
func lineCol(src string, pos int) (line, col int) {
	if pos > len(src) {
		pos = len(src)
	}
	line, col = 1, 1
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// snippet renders a header, the 1-based position, the offending line with up
// to one line of context on each side, and a caret under the column.
func snippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return strings.TrimRight(b.String(), "\n")
}
