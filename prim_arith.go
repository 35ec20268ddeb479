// prim_arith.go: arithmetic, comparison, and numeric equality.
//
// All arithmetic accepts int64 and float64 operands in any combination,
// promoting to float when either side is float. + and * are variadic folds
// (identities 0 and 1) and demote an integral float result back to an
// integer; -, /, mod and the comparators are strictly binary.
package nscm

import "math"

// number is an evaluated numeric operand in a uniform shape.
type number struct {
	f     float64
	i     int64
	isInt bool
}

// asNumber evaluates arg and requires a numeric result.
func asNumber(op PrimOp, arg Expr, bindings []Expr, env *Env) (number, error) {
	v, err := Eval(arg, bindings, env)
	if err != nil {
		return number{}, err
	}
	switch n := v.(type) {
	case *IntExpr:
		return number{f: float64(n.Val), i: n.Val, isInt: true}, nil
	case *FloatExpr:
		return number{f: n.Val}, nil
	default:
		return number{}, evalErrf(ErrInvalidOperandType,
			"'%s' expects numeric operands, got %s", op, Render(v))
	}
}

// demote collapses an integral float back to the integer representation.
func demote(f float64) Expr {
	if math.Floor(f) == f && !math.IsInf(f, 0) {
		return &IntExpr{Val: int64(f)}
	}
	return &FloatExpr{Val: f}
}

func evalArith(p *PrimExpr, bindings []Expr, env *Env) (Expr, error) {
	args := p.Args
	switch p.Op {

	// Variadic folds. An empty '+' is 0, an empty '*' is 1, and integral
	// results demote to ints.
	case OpAdd, OpMul:
		acc := 0.0
		if p.Op == OpMul {
			acc = 1.0
		}
		for _, a := range args {
			n, err := asNumber(p.Op, a, bindings, env)
			if err != nil {
				return nil, err
			}
			if p.Op == OpAdd {
				acc += n.f
			} else {
				acc *= n.f
			}
		}
		return demote(acc), nil

	case OpSub, OpDiv:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		a, err := asNumber(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		b, err := asNumber(p.Op, args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		if p.Op == OpDiv && b.f == 0 {
			return nil, evalErrf(ErrDivisionByZero, "division by zero")
		}
		if a.isInt && b.isInt {
			if p.Op == OpSub {
				return &IntExpr{Val: a.i - b.i}, nil
			}
			return &IntExpr{Val: a.i / b.i}, nil
		}
		if p.Op == OpSub {
			return &FloatExpr{Val: a.f - b.f}, nil
		}
		return &FloatExpr{Val: a.f / b.f}, nil

	case OpMod:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		a, err := asNumber(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		b, err := asNumber(p.Op, args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		// Zero divisor wins over the integer-operand requirement.
		if b.f == 0 {
			return nil, evalErrf(ErrDivisionByZero, "division by zero")
		}
		if !a.isInt || !b.isInt {
			return nil, evalErrf(ErrInvalidOperandType,
				"'mod' expects integer operands")
		}
		return &IntExpr{Val: a.i % b.i}, nil

	case OpGT, OpLT, OpGE, OpLE:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		a, err := asNumber(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		b, err := asNumber(p.Op, args[1], bindings, env)
		if err != nil {
			return nil, err
		}
		var r bool
		// Int pairs compare exactly; the float view loses precision past 2^53.
		if a.isInt && b.isInt {
			switch p.Op {
			case OpGT:
				r = a.i > b.i
			case OpLT:
				r = a.i < b.i
			case OpGE:
				r = a.i >= b.i
			case OpLE:
				r = a.i <= b.i
			}
		} else {
			switch p.Op {
			case OpGT:
				r = a.f > b.f
			case OpLT:
				r = a.f < b.f
			case OpGE:
				r = a.f >= b.f
			case OpLE:
				r = a.f <= b.f
			}
		}
		return BoolLit(r), nil

	case OpEq:
		if err := wantArity(p.Op, args, 2); err != nil {
			return nil, err
		}
		return evalEq(args, bindings, env)
	}
	return nil, evalErrf(ErrUnknownVariantForEval, "unhandled arithmetic form '%s'", p.Op)
}

// evalEq compares int pairs exactly, other number pairs in mixed int/float
// mode, strings by content, and literals by identity. Operands of differing
// kinds do not compare.
func evalEq(args []Expr, bindings []Expr, env *Env) (Expr, error) {
	x, err := Eval(args[0], bindings, env)
	if err != nil {
		return nil, err
	}
	y, err := Eval(args[1], bindings, env)
	if err != nil {
		return nil, err
	}
	if xi, ok := x.(*IntExpr); ok {
		if yi, ok := y.(*IntExpr); ok {
			return BoolLit(xi.Val == yi.Val), nil
		}
	}
	if xn, ok := numeric(x); ok {
		yn, ok := numeric(y)
		if !ok {
			return nil, evalErrf(ErrInvalidOperandType,
				"'=' cannot compare %s with %s", Render(x), Render(y))
		}
		return BoolLit(xn == yn), nil
	}
	switch a := x.(type) {
	case *StrExpr:
		if b, ok := y.(*StrExpr); ok {
			return BoolLit(a.Val == b.Val), nil
		}
	case *LitExpr:
		if b, ok := y.(*LitExpr); ok {
			return BoolLit(a.Lit == b.Lit), nil
		}
	}
	return nil, evalErrf(ErrInvalidOperandType,
		"'=' cannot compare %s with %s", Render(x), Render(y))
}

// numeric extracts a float view from an already-evaluated operand.
func numeric(v Expr) (float64, bool) {
	switch n := v.(type) {
	case *IntExpr:
		return float64(n.Val), true
	case *FloatExpr:
		return n.Val, true
	default:
		return 0, false
	}
}
