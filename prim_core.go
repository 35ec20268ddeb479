// prim_core.go: special forms: define, set!, lambda, if, while.
//
// These are the operators that touch control flow or the environment. They
// evaluate their arguments selectively: define and set! evaluate the value
// expression exactly once and bind the result (a define'd lambda still sees
// its own name, because the closure body resolves it through the chain at
// call time), if evaluates exactly one branch, while re-evaluates its
// condition on every turn.
package nscm

// evalCore handles define/set!/lambda/if/while.
func evalCore(p *PrimExpr, bindings []Expr, env *Env) (Expr, error) {
	args := p.Args
	switch p.Op {

	case OpDefine:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		name, err := defineName(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		v, err := Eval(args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		env.Define(name, v)
		return Nil, nil

	case OpSet:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		name, err := defineName(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		if !env.IsBound(name) {
			return nil, evalErrf(ErrUnboundIdentifier,
				"set! of undefined identifier '%s'", name)
		}
		v, err := Eval(args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		// Existence is checked chain-wide, but the rebind lands in the
		// current frame: set! shadows an ancestor binding, it does not
		// mutate the ancestor's own entry.
		env.Define(name, v)
		return Nil, nil

	case OpLambda:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		params, ok := args[0].(*ListExpr)
		if !ok {
			return nil, evalErrf(ErrInvalidLambdaParams,
				"'lambda' parameters must be a list, got %s", Render(args[0]))
		}
		names := make([]string, len(params.Items))
		for i, it := range params.Items {
			switch n := it.(type) {
			case *StrExpr:
				names[i] = n.Val
			case *SymbolExpr:
				names[i] = n.Name
			default:
				return nil, evalErrf(ErrInvalidLambdaParams,
					"'lambda' parameter %d is not a name", i+1)
			}
		}
		return &ProcExpr{Params: names, Body: args[1], Env: env}, nil

	case OpIf:
		if err := wantArity(p.Op, args, 3); err != nil {
			return nil, err
		}
		cond, err := Eval(args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return Eval(args[1], bindings, env)
		}
		return Eval(args[2], bindings, env)

	case OpWhile:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		for {
			cond, err := Eval(args[0], bindings, env)
			if err != nil {
				return nil, err
			}
			lit, ok := cond.(*LitExpr)
			if !ok {
				return nil, evalErrf(ErrInvalidOperandType,
					"'while' condition must be a boolean, got %s", Render(cond))
			}
			if lit.Lit != LitTrue {
				return Nil, nil
			}
			if _, err := Eval(args[1], bindings, env); err != nil {
				return nil, err
			}
		}
	}
	return nil, evalErrf(ErrUnknownVariantForEval, "unhandled core form '%s'", p.Op)
}

// defineName reduces the name position of define/set! to a string.
func defineName(op PrimOp, arg Expr, bindings []Expr, env *Env) (string, error) {
	v, err := Eval(arg, bindings, env)
	if err != nil {
		return "", err
	}
	s, ok := v.(*StrExpr)
	if !ok {
		return "", evalErrf(ErrInvalidDefineTarget,
			"'%s' name must be a string, got %s", op, Render(v))
	}
	return s.Val, nil
}

// isTruthy: #t is true, and so is any number greater than zero. Everything
// else (#f, nil, zero, negatives, strings, lists, procedures) is false.
func isTruthy(v Expr) bool {
	switch c := v.(type) {
	case *LitExpr:
		return c.Lit == LitTrue
	case *IntExpr:
		return c.Val > 0
	case *FloatExpr:
		return c.Val > 0
	default:
		return false
	}
}
