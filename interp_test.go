package nscm

import (
	"testing"
)

// --- helpers ---------------------------------------------------------------

func evalLast(t *testing.T, src string) Expr {
	t.Helper()
	ip := NewInterp()
	v, err := ip.EvalSourceLast(src)
	if err != nil {
		t.Fatalf("eval error: %v\nsource:\n%s", err, src)
	}
	return v
}

func evalWithIP(t *testing.T, ip *Interp, src string) Expr {
	t.Helper()
	v, err := ip.EvalSourceLast(src)
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	return v
}

func wantEvalErr(t *testing.T, src string, kind ErrKind) {
	t.Helper()
	ip := NewInterp()
	_, err := ip.EvalSourceLast(src)
	if err == nil {
		t.Fatalf("want %s error, got nil\nsource:\n%s", kind, src)
	}
	got, ok := ErrKindOf(err)
	if !ok {
		t.Fatalf("want *EvalError, got %T: %v", err, err)
	}
	if got != kind {
		t.Fatalf("want error kind %s, got %s (%v)", kind, got, err)
	}
}

func wantInt(t *testing.T, v Expr, n int64) {
	t.Helper()
	iv, ok := v.(*IntExpr)
	if !ok || iv.Val != n {
		t.Fatalf("want int %d, got %s (%T)", n, Render(v), v)
	}
}

func wantFloat(t *testing.T, v Expr, f float64) {
	t.Helper()
	fv, ok := v.(*FloatExpr)
	if !ok || fv.Val != f {
		t.Fatalf("want float %g, got %s (%T)", f, Render(v), v)
	}
}

func wantStr(t *testing.T, v Expr, s string) {
	t.Helper()
	sv, ok := v.(*StrExpr)
	if !ok || sv.Val != s {
		t.Fatalf("want str %q, got %s (%T)", s, Render(v), v)
	}
}

func wantBool(t *testing.T, v Expr, b bool) {
	t.Helper()
	lv, ok := v.(*LitExpr)
	if !ok || lv != BoolLit(b) {
		t.Fatalf("want bool %v, got %s (%T)", b, Render(v), v)
	}
}

func wantRender(t *testing.T, v Expr, s string) {
	t.Helper()
	if got := Render(v); got != s {
		t.Fatalf("want render %q, got %q", s, got)
	}
}

// --- scenarios -------------------------------------------------------------

func Test_Interp_define_set_shadow_scenario(t *testing.T) {
	v := evalLast(t, `
		(define pi 3.14)
		(set! pi 2)
		pi
	`)
	wantRender(t, v, "2")
}

func Test_Interp_recursive_factorial(t *testing.T) {
	v := evalLast(t, `
		(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))
		(fact 10)
	`)
	wantInt(t, v, 3628800)
}

func Test_Interp_recursive_fibonacci(t *testing.T) {
	v := evalLast(t, `
		(define fib (lambda (n)
			(if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))))
		(fib 15)
	`)
	wantInt(t, v, 610)
}

func Test_Interp_map_squares(t *testing.T) {
	v := evalLast(t, `(map (lambda (x) (* x x)) '(1 2 3 4))`)
	wantRender(t, v, "(1 4 9 16)")
}

func Test_Interp_filter_evens(t *testing.T) {
	v := evalLast(t, `(filter (lambda (x) (= (mod x 2) 0)) '(1 2 3 4))`)
	wantRender(t, v, "(2 4)")
}

func Test_Interp_nested_currying(t *testing.T) {
	v := evalLast(t,
		`((((lambda (x) (lambda (y) (lambda (z) (+ x y z)))) 10) 15) 20)`)
	wantInt(t, v, 45)
}

func Test_Interp_closure_captures_definition_env(t *testing.T) {
	v := evalLast(t, `
		(define make-adder (lambda (n) (lambda (x) (+ x n))))
		(define add5 (make-adder 5))
		(add5 37)
	`)
	wantInt(t, v, 42)
}

func Test_Interp_unbound_identifier(t *testing.T) {
	wantEvalErr(t, `nope`, ErrUnboundIdentifier)
	wantEvalErr(t, `(set! nope 1)`, ErrUnboundIdentifier)
}

func Test_Interp_while_loop(t *testing.T) {
	v := evalLast(t, `
		(define i 0)
		(while (< i 5) (set! i (+ i 1)))
		i
	`)
	wantInt(t, v, 5)
}

func Test_Interp_while_body_never_runs_on_false_condition(t *testing.T) {
	v := evalLast(t, `
		(define i 10)
		(while (< i 5) (set! i (+ i 1)))
		i
	`)
	wantInt(t, v, 10)
}

func Test_Interp_first_error_aborts_remaining_forms(t *testing.T) {
	ip := NewInterp()
	results, err := ip.EvalSource(`
		(define a 1)
		(+ 1 1)
		(/ 1 0)
		(define b 2)
	`)
	if err == nil {
		t.Fatal("want error from division by zero")
	}
	if len(results) != 1 {
		t.Fatalf("want 1 result before the failure, got %d", len(results))
	}
	wantInt(t, results[0], 2)
	if !ip.Global.IsBound("a") {
		t.Fatal("form before the failure should have run")
	}
	if ip.Global.IsBound("b") {
		t.Fatal("form after the failure should not have run")
	}
}

func Test_Interp_persistent_state_across_inputs(t *testing.T) {
	ip := NewInterp()
	evalWithIP(t, ip, `(define x 21)`)
	v := evalWithIP(t, ip, `(* x 2)`)
	wantInt(t, v, 42)
}

func Test_Interp_empty_input(t *testing.T) {
	ip := NewInterp()
	v, err := ip.EvalSourceLast("  ; just a comment\n")
	if err != nil {
		t.Fatalf("empty input should not fail: %v", err)
	}
	if v != Nil {
		t.Fatalf("empty input should yield nil, got %s", Render(v))
	}
}
