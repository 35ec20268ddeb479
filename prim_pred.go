// prim_pred.go: type predicates. Each evaluates its single argument and
// reports the resolved variant's kind.
package nscm

func evalPredicate(p *PrimExpr, bindings []Expr, env *Env) (Expr, error) {
	if err := wantArity(p.Op, p.Args, 1); err != nil {
		return nil, err
	}
	v, err := Eval(p.Args[0], bindings, env)
	if err != nil {
		return nil, err
	}

	var r bool
	switch p.Op {
	case OpIsNum:
		switch v.(type) {
		case *IntExpr, *FloatExpr:
			r = true
		}
	case OpIsSym:
		_, r = v.(*SymbolExpr)
	case OpIsProc:
		_, r = v.(*ProcExpr)
	case OpIsList:
		_, r = v.(*ListExpr)
	case OpIsStr:
		_, r = v.(*StrExpr)
	case OpIsBool:
		if lit, ok := v.(*LitExpr); ok {
			r = lit.Lit == LitTrue || lit.Lit == LitFalse
		}
	}
	return BoolLit(r), nil
}
