package nscm

import "testing"

func Test_List_car(t *testing.T) {
	wantInt(t, evalLast(t, `(car '(1 2 3))`), 1)
	if v := evalLast(t, `(car '())`); v != Nil {
		t.Fatalf("car of empty list should be nil, got %s", Render(v))
	}
	wantEvalErr(t, `(car 1)`, ErrInvalidOperandType)
}

func Test_List_cdr(t *testing.T) {
	wantRender(t, evalLast(t, `(cdr '(1 2 3))`), "(2 3)")
	if v := evalLast(t, `(cdr '())`); v != Nil {
		t.Fatalf("cdr of empty list should be nil, got %s", Render(v))
	}
	if v := evalLast(t, `(cdr '(1))`); v != Nil {
		t.Fatalf("cdr of one-element list should be nil, got %s", Render(v))
	}
	wantEvalErr(t, `(cdr "nope")`, ErrInvalidOperandType)
}

func Test_List_cons(t *testing.T) {
	wantRender(t, evalLast(t, `(cons 1 '(2 3))`), "(1 2 3)")
	wantRender(t, evalLast(t, `(cons 1 '())`), "(1)")
	wantEvalErr(t, `(cons '(1) '(2 3))`, ErrInvalidOperandType)
	wantEvalErr(t, `(cons 1 2)`, ErrInvalidOperandType)
}

func Test_List_car_of_cons_recovers_head(t *testing.T) {
	wantInt(t, evalLast(t, `(car (cons 7 '(8 9)))`), 7)
	wantFloat(t, evalLast(t, `(car (cons 1.5 '()))`), 1.5)
	wantStr(t, evalLast(t, `(car (cons "s" '(1)))`), "s")
}

func Test_List_append(t *testing.T) {
	wantRender(t, evalLast(t, `(append '(1 2) '(3 4))`), "(1 2 3 4)")
	wantRender(t, evalLast(t, `(append '() '(1))`), "(1)")
	wantRender(t, evalLast(t, `(append '() '())`), "()")
	wantEvalErr(t, `(append 1 '(2))`, ErrInvalidOperandType)
	wantEvalErr(t, `(append '(1) 2)`, ErrInvalidOperandType)
}

func Test_List_append_does_not_alias_operands(t *testing.T) {
	v := evalLast(t, `
		(define a '(1 2))
		(define b '(3 4))
		(define c (append a b))
		(append c '(5))
		a
	`)
	wantRender(t, v, "(1 2)")
}

func Test_List_null_predicate(t *testing.T) {
	wantBool(t, evalLast(t, `(null? '())`), true)
	wantBool(t, evalLast(t, `(null? '(1))`), false)
	wantBool(t, evalLast(t, `(null? 0)`), false)
	wantBool(t, evalLast(t, `(null? nil)`), false)
}

func Test_List_map(t *testing.T) {
	wantRender(t, evalLast(t, `(map (lambda (x) (+ x 1)) '(1 2 3))`), "(2 3 4)")
	wantRender(t, evalLast(t, `(map (lambda (x) x) '())`), "()")
	wantEvalErr(t, `(map 1 '(1 2))`, ErrInvalidOperandType)
	wantEvalErr(t, `(map (lambda (x) x) 1)`, ErrInvalidOperandType)
}

func Test_List_map_accepts_named_procedure(t *testing.T) {
	v := evalLast(t, `
		(define inc (lambda (x) (+ x 1)))
		(map inc '(1 2 3))
	`)
	wantRender(t, v, "(2 3 4)")
}

func Test_List_filter(t *testing.T) {
	wantRender(t, evalLast(t, `(filter (lambda (x) (> x 2)) '(1 2 3 4))`), "(3 4)")
	wantRender(t, evalLast(t, `(filter (lambda (x) #f) '(1 2))`), "()")
}

func Test_List_filter_predicate_must_return_boolean(t *testing.T) {
	wantEvalErr(t, `(filter (lambda (x) x) '(1 2))`, ErrInvalidPredicateResult)
	wantEvalErr(t, `(filter (lambda (x) "yes") '(1))`, ErrInvalidPredicateResult)
}

func Test_List_map_propagates_element_error(t *testing.T) {
	wantEvalErr(t, `(map (lambda (x) (/ 1 x)) '(2 1 0))`, ErrDivisionByZero)
}

func Test_List_nested_quoted_lists(t *testing.T) {
	wantRender(t, evalLast(t, `'(1 (2 3) (4 (5)))`), "(1 (2 3) (4 (5)))")
	wantRender(t, evalLast(t, `(car '((1 2) 3))`), "(1 2)")
}
