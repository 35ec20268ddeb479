// prim_math.go: trigonometry, sqrt/log, abs, max/min.
//
// The unary transcendentals always return floats (the host math library's
// behavior, NaN/Inf included). abs, max and min preserve integer operands.
package nscm

import "math"

func evalMath(p *PrimExpr, bindings []Expr, env *Env) (Expr, error) {
	args := p.Args
	switch p.Op {

	case OpSin, OpCos, OpTan, OpSqrt, OpLog:
		if err := wantArity(p.Op, args, 1); err != nil {
			return nil, err
		}
		n, err := asNumber(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		var f float64
		switch p.Op {
		case OpSin:
			f = math.Sin(n.f)
		case OpCos:
			f = math.Cos(n.f)
		case OpTan:
			f = math.Tan(n.f)
		case OpSqrt:
			f = math.Sqrt(n.f)
		case OpLog:
			f = math.Log(n.f)
		}
		return &FloatExpr{Val: f}, nil

	case OpAbs:
		if err := wantArity(p.Op, args, 1); err != nil {
			return nil, err
		}
		n, err := asNumber(p.Op, args[0], bindings, env)
		if err != nil {
			return nil, err
		}
		if n.isInt {
			if n.i < 0 {
				return &IntExpr{Val: -n.i}, nil
			}
			return &IntExpr{Val: n.i}, nil
		}
		return &FloatExpr{Val: math.Abs(n.f)}, nil

	case OpMax, OpMin:
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
		pick := a
		if (p.Op == OpMax && b.f > a.f) || (p.Op == OpMin && b.f < a.f) {
			pick = b
		}
		if pick.isInt {
			return &IntExpr{Val: pick.i}, nil
		}
		return &FloatExpr{Val: pick.f}, nil
	}
	return nil, evalErrf(ErrUnknownVariantForEval, "unhandled math form '%s'", p.Op)
}
