package nscm

import "testing"

func Test_Render_literals(t *testing.T) {
	cases := []struct {
		in   Expr
		want string
	}{
		{&IntExpr{Val: 42}, "42"},
		{&IntExpr{Val: -7}, "-7"},
		{&FloatExpr{Val: 3.14}, "3.14"},
		{&FloatExpr{Val: 2}, "2"},
		{&StrExpr{Val: "hi"}, `"hi"`},
		{True, "#t"},
		{False, "#f"},
		{Nil, "()"},
		{&ListExpr{}, "()"},
		{&ListExpr{Items: []Expr{&IntExpr{Val: 1}, &StrExpr{Val: "a"}}}, `(1 "a")`},
		{&ProcExpr{}, "<closure>"},
	}
	for _, c := range cases {
		if got := Render(c.in); got != c.want {
			t.Fatalf("Render(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func Test_Render_string_escapes(t *testing.T) {
	if got := Render(&StrExpr{Val: "a\"b\n"}); got != `"a\"b\n"` {
		t.Fatalf("got %q", got)
	}
}

func Test_Render_unresolved_symbol_prints_its_name(t *testing.T) {
	if got := Render(&SymbolExpr{Name: "foo"}); got != "foo" {
		t.Fatalf("got %q", got)
	}
}

func Test_Render_resolved_symbol_prints_its_referent(t *testing.T) {
	s := &SymbolExpr{Name: "foo", Bound: &IntExpr{Val: 3}}
	if got := Render(s); got != "3" {
		t.Fatalf("got %q", got)
	}
}

func Test_Render_lambda_form(t *testing.T) {
	v := parseOne(t, `(lambda (x) x)`)
	if got := Render(v); got != "<closure>" {
		t.Fatalf("got %q", got)
	}
}

func Test_Render_other_primitive_forms(t *testing.T) {
	if got := Render(parseOne(t, `(+ 1 2)`)); got != "<primitive>" {
		t.Fatalf("got %q", got)
	}
	if got := Render(parseOne(t, `(define x 1)`)); got != "" {
		t.Fatalf("define form should render empty, got %q", got)
	}
}

// Rendering a literal and re-parsing it must yield an equal value.
func Test_Render_round_trip(t *testing.T) {
	cases := []Expr{
		&IntExpr{Val: 0},
		&IntExpr{Val: -123456},
		&FloatExpr{Val: 0.25},
		&FloatExpr{Val: -1e17},
		&StrExpr{Val: `quo"ted and \slashed`},
		&StrExpr{Val: "multi\nline\ttabbed"},
		True,
		False,
	}
	for _, in := range cases {
		out := parseOne(t, Render(in))
		switch a := in.(type) {
		case *IntExpr:
			wantInt(t, out, a.Val)
		case *FloatExpr:
			// Integral floats legitimately re-read as ints; compare views.
			switch b := out.(type) {
			case *FloatExpr:
				if b.Val != a.Val {
					t.Fatalf("float round trip: %v != %v", b.Val, a.Val)
				}
			case *IntExpr:
				if float64(b.Val) != a.Val {
					t.Fatalf("float round trip: %v != %v", b.Val, a.Val)
				}
			default:
				t.Fatalf("float round trip produced %T", out)
			}
		case *StrExpr:
			wantStr(t, out, a.Val)
		case *LitExpr:
			if out != in {
				t.Fatalf("literal round trip: got %s", Render(out))
			}
		}
	}
}
