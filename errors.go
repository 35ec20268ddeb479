// errors.go: evaluation error kinds, parse errors, and caret-snippet rendering
//
// Evaluation failures carry a closed ErrKind enumeration instead of free-form
// thrown strings: every failure the evaluator can produce is one of the kinds
// below, returned as a *EvalError through ordinary error returns. Nothing in
// the core panics and nothing is swallowed: an error aborts the current eval
// chain and propagates to whichever front end asked for the evaluation.
//
// Parse failures are *ParseError values with 1-based line/column coordinates.
// WrapErrorWithSource recognizes them and renders a plain-text snippet with a
// caret under the offending column:
//
//	PARSE ERROR at 2:14: unmatched ')'
//
//	   1 | (define pi 3.14)
//	   2 | (+ pi 1))
//	     |         ^
//
// The renderer clamps out-of-range coordinates, shows up to one line of
// context on each side, and emits no ANSI escapes, so the output is safe for
// logs and terminals alike.
package nscm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKind is the closed enumeration of evaluation-time failures.
type ErrKind int

const (
	// ErrUnboundIdentifier: a symbol has no binding anywhere in the
	// environment chain, or set! targets a name that was never defined.
	ErrUnboundIdentifier ErrKind = iota
	// ErrArityMismatch: wrong argument count for a primitive or procedure.
	ErrArityMismatch
	// ErrInvalidOperandType: an operand kind does not match what the
	// operation requires (non-numeric arithmetic, car of a non-list, ...).
	ErrInvalidOperandType
	// ErrDivisionByZero: the divisor of / or mod is exactly zero.
	ErrDivisionByZero
	// ErrInvalidDefineTarget: the name position of define/set! did not
	// reduce to a string.
	ErrInvalidDefineTarget
	// ErrInvalidLambdaParams: the parameter position of lambda is not a
	// list of names.
	ErrInvalidLambdaParams
	// ErrInvalidPredicateResult: a filter predicate returned a non-boolean.
	ErrInvalidPredicateResult
	// ErrUnknownVariantForEval: internal invariant violation; a well-formed
	// tree never produces it.
	ErrUnknownVariantForEval
)

var errKindNames = map[ErrKind]string{
	ErrUnboundIdentifier:      "unbound identifier",
	ErrArityMismatch:          "arity mismatch",
	ErrInvalidOperandType:     "invalid operand type",
	ErrDivisionByZero:         "division by zero",
	ErrInvalidDefineTarget:    "invalid define target",
	ErrInvalidLambdaParams:    "invalid lambda params",
	ErrInvalidPredicateResult: "invalid predicate result",
	ErrUnknownVariantForEval:  "unknown variant for eval",
}

func (k ErrKind) String() string {
	if s, ok := errKindNames[k]; ok {
		return s
	}
	return "unknown error kind"
}

// EvalError is an evaluation-time failure: a kind from the closed taxonomy
// plus a human-readable message.
type EvalError struct {
	Kind ErrKind
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR (%s): %s", e.Kind, e.Msg)
}

// evalErrf builds a *EvalError with a formatted message.
func evalErrf(kind ErrKind, format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ErrKindOf extracts the ErrKind from err. ok is false when err is not an
// evaluation error.
func ErrKindOf(err error) (ErrKind, bool) {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return 0, false
}

// ParseError is a syntax failure with a 1-based source position. Incomplete
// marks input that failed only because it ended early (open paren or
// unterminated string); the REPL keeps prompting on those.
type ParseError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err is a parse error caused by truncated
// input rather than malformed input.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src when err is a *ParseError; any other error is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	return fmt.Errorf("%s", prettyErrorString(src, "PARSE ERROR", pe.Line, pe.Col, pe.Msg))
}

// prettyErrorString builds the caret snippet. Coordinates are 1-based and
// clamped to the source bounds so malformed positions cannot break rendering.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
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
	return b.String()
}
