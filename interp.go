// interp.go: the public entry point tying parser, evaluator and environment
// together.
//
// An Interp owns the global frame, created once and alive for the whole
// session. EvalSource interleaves parsing and evaluation one top-level form
// at a time, so a form's defines are visible, including to the parser's
// construction-time symbol resolution, when the next form is read. The
// first error aborts the remaining forms; REPL front ends simply call
// EvalSource per input line against the same Interp to get persistent state.
package nscm

// Version of the interpreter, shown by the front end.
const Version = "0.3.0"

// Interp is a nanoscheme interpreter session.
type Interp struct {
	Global *Env
}

// NewInterp creates a session with a fresh global frame.
func NewInterp() *Interp {
	return &Interp{Global: NewEnv(nil)}
}

// EvalSource parses and evaluates every top-level form of src against the
// global environment, in order, and returns the evaluated forms. Top-level
// define/set! forms evaluate for their binding effect but contribute no
// result (they have no output token). Evaluation stops at the first parse or
// evaluation error; forms already evaluated keep their effects.
func (ip *Interp) EvalSource(src string) ([]Expr, error) {
	p, err := NewParser(src, ip.Global)
	if err != nil {
		return nil, err
	}
	var results []Expr
	for {
		form, ok, err := p.Next()
		if err != nil {
			return results, err
		}
		if !ok {
			return results, nil
		}
		v, err := Eval(form, nil, ip.Global)
		if err != nil {
			return results, err
		}
		if isAssignment(form) {
			continue
		}
		results = append(results, v)
	}
}

// isAssignment reports whether form is a top-level define or set!.
func isAssignment(form Expr) bool {
	p, ok := form.(*PrimExpr)
	return ok && (p.Op == OpDefine || p.Op == OpSet)
}

// EvalSourceLast is EvalSource returning only the final form's value, or Nil
// for empty input. Convenient for REPL lines and tests.
func (ip *Interp) EvalSourceLast(src string) (Expr, error) {
	results, err := ip.EvalSource(src)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return Nil, nil
	}
	return results[len(results)-1], nil
}
