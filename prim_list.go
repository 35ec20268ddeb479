// prim_list.go: list operations and the higher-order map/filter.
//
// Lists are proper, ordered, and own their element slices; every producing
// operation here copies the slice (elements stay shared). cons rejects a
// list as its first argument: prepending a list onto a list is refused
// rather than silently nesting, the stricter of the observed behaviors.
package nscm

// asList evaluates arg and requires a list result.
func asList(op PrimOp, arg Expr, bindings []Expr, env *Env) (*ListExpr, error) {
	v, err := Eval(arg, bindings, env)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*ListExpr)
	if !ok {
		return nil, evalErrf(ErrInvalidOperandType,
			"'%s' expects a list, got %s", op, Render(v))
	}
	return l, nil
}

func evalListOp(p *PrimExpr, bindings []Expr, env *Env) (Expr, error) {
	args := p.Args
	switch p.Op {

	case OpCar:
		if err := wantArity(p.Op, args, 1); err != nil {
			return nil, err
		}
		l, err := asList(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		if len(l.Items) == 0 {
			return Nil, nil
		}
		return Eval(l.Items[0], bindings, env)

	case OpCdr:
		if err := wantArity(p.Op, args, 1); err != nil {
			return nil, err
		}
		l, err := asList(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		if len(l.Items) < 2 {
			return Nil, nil
		}
		return &ListExpr{Items: copyItems(l.Items[1:])}, nil

	case OpCons:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		head, err := Eval(args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		if _, isList := head.(*ListExpr); isList {
			return nil, evalErrf(ErrInvalidOperandType,
				"'cons' does not accept a list as its first argument")
		}
		tail, err := asList(p.Op, args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		items := make([]Expr, 0, len(tail.Items)+1)
		items = append(items, head)
		items = append(items, tail.Items...)
		return &ListExpr{Items: items}, nil

	case OpAppend:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		a, err := asList(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		b, err := asList(p.Op, args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		items := make([]Expr, 0, len(a.Items)+len(b.Items))
		items = append(items, a.Items...)
		items = append(items, b.Items...)
		return &ListExpr{Items: items}, nil

	case OpIsNull:
		if err := wantArity(p.Op, args, 1); err != nil {
			return nil, err
		}
		v, err := Eval(args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		l, ok := v.(*ListExpr)
		return BoolLit(ok && len(l.Items) == 0), nil

	case OpMap, OpFilter:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		fnv, err := Eval(args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		fn, ok := fnv.(*ProcExpr)
		if !ok {
			return nil, evalErrf(ErrInvalidOperandType,
				"'%s' expects a procedure, got %s", p.Op, Render(fnv))
		}
		l, err := asList(p.Op, args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		out := make([]Expr, 0, len(l.Items))
		for _, item := range l.Items {
			r, err := applyProc(fn, []Expr{item}, env)
			if err != nil {
				return nil, err
			}
			if p.Op == OpMap {
				out = append(out, r)
				continue
			}
			lit, ok := r.(*LitExpr)
			if !ok || (lit.Lit != LitTrue && lit.Lit != LitFalse) {
				return nil, evalErrf(ErrInvalidPredicateResult,
					"'filter' predicate returned %s, want a boolean", Render(r))
			}
			if lit.Lit == LitTrue {
				out = append(out, item)
			}
		}
		return &ListExpr{Items: out}, nil
	}
	return nil, evalErrf(ErrUnknownVariantForEval, "unhandled list form '%s'", p.Op)
}
