// eval.go: evaluator dispatch and procedure application.
//
// Eval reduces an expression to normal form against an environment chain.
// Evaluation is synchronous recursive descent: recursion depth mirrors the
// host stack, nothing suspends, and the only mutators of environments are
// define/set! and the child frame created on every procedure application.
//
// Dispatch by variant:
//   - Int/Float/Str/Lit/List reduce to themselves. Lists are not recursed
//     into; a list literal already holds the constant leaves the parser
//     built.
//   - Symbol resolves its name against the live chain (falling back to its
//     construction-time Bound reference) and evaluates the referent, so a
//     symbol bound to another symbol chains through.
//   - Call reduces the callee to a procedure and applies it to the call's
//     argument expressions.
//   - Proc applies the closure to the caller-supplied bindings.
//   - Prim dispatches to the operator's rule (prim_*.go). Operators decide
//     which arguments to reduce, which is what makes `if` short-circuit.
//
// The bindings parameter threads the ambient argument list through nested
// evaluation: a primitive's arguments are evaluated with the primitive's own
// ambient bindings, and a procedure body runs with nil bindings in its fresh
// frame.
package nscm

// Eval reduces x to a normal-form expression, consulting and possibly
// mutating env. bindings supplies argument expressions when x is a
// procedure; pass nil otherwise.
func Eval(x Expr, bindings []Expr, env *Env) (Expr, error) {
	switch v := x.(type) {
	case *IntExpr, *FloatExpr, *StrExpr, *LitExpr, *ListExpr:
		return x, nil
	case *SymbolExpr:
		return evalSymbol(v, bindings, env)
	case *CallExpr:
		return evalCall(v, env)
	case *ProcExpr:
		// A closure is a value until a bindings list arrives; evaluating it
		// without one (symbol resolution, map/filter argument positions)
		// yields the closure itself.
		if bindings == nil {
			return x, nil
		}
		return applyProc(v, bindings, env)
	case *PrimExpr:
		return evalPrim(v, bindings, env)
	default:
		return nil, evalErrf(ErrUnknownVariantForEval, "cannot evaluate %T", x)
	}
}

// evalSymbol resolves the symbol and evaluates its referent. The live
// environment chain wins over the construction-time Bound snapshot, so a
// set! performed after the symbol was parsed is visible; Bound only serves
// symbols evaluated outside the chain that resolved them.
func evalSymbol(s *SymbolExpr, bindings []Expr, env *Env) (Expr, error) {
	ref, ok := env.Resolve(s.Name)
	if !ok {
		ref = s.Bound
	}
	if ref == nil {
		return nil, evalErrf(ErrUnboundIdentifier, "unbound identifier '%s'", s.Name)
	}
	return Eval(ref, bindings, env)
}

// evalCall reduces the callee to a procedure and applies it to the call's
// argument expressions.
func evalCall(c *CallExpr, env *Env) (Expr, error) {
	callee, err := Eval(c.Fn, nil, env)
	if err != nil {
		return nil, err
	}
	proc, ok := callee.(*ProcExpr)
	if !ok {
		return nil, evalErrf(ErrInvalidOperandType, "call of non-procedure %s", Render(callee))
	}
	return applyProc(proc, c.Args, env)
}

// applyProc is procedure application: exact arity, arguments evaluated in
// the caller's environment, results bound to parameter names in a fresh
// child of the closure's captured environment, body evaluated there.
//
// Recursive bindings need no special shape here: a body that names its own
// procedure (or a forward-referenced one) holds an unresolved symbol, and
// symbol resolution walks the live chain at call time, where the define has
// already landed.
func applyProc(p *ProcExpr, bindings []Expr, env *Env) (Expr, error) {
	if len(bindings) != len(p.Params) {
		return nil, evalErrf(ErrArityMismatch,
			"procedure expects %d argument(s), got %d", len(p.Params), len(bindings))
	}
	closure := p.Env
	if closure == nil {
		closure = env
	}
	frame := closure.Child()
	for i, name := range p.Params {
		v, err := Eval(bindings[i], nil, env)
		if err != nil {
			return nil, err
		}
		frame.Define(name, v)
	}
	return Eval(p.Body, nil, frame)
}

// evalPrim routes an operator application to its rule group.
func evalPrim(p *PrimExpr, bindings []Expr, env *Env) (Expr, error) {
	switch p.Op {
	case OpDefine, OpSet, OpLambda, OpIf, OpWhile:
		return evalCore(p, bindings, env)
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpGT, OpLT, OpGE, OpLE, OpEq:
		return evalArith(p, bindings, env)
	case OpIsNum, OpIsSym, OpIsProc, OpIsList, OpIsStr, OpIsBool:
		return evalPredicate(p, bindings, env)
	case OpSin, OpCos, OpTan, OpSqrt, OpLog, OpAbs, OpMax, OpMin:
		return evalMath(p, bindings, env)
	case OpCar, OpCdr, OpCons, OpAppend, OpIsNull, OpMap, OpFilter:
		return evalListOp(p, bindings, env)
	default:
		return nil, evalErrf(ErrUnknownVariantForEval, "unknown primitive %d", int(p.Op))
	}
}

// wantArity is the shared arity guard for primitives.
func wantArity(op PrimOp, args []Expr, n int) error {
	if len(args) != n {
		return evalErrf(ErrArityMismatch,
			"'%s' expects %d argument(s), got %d", op, n, len(args))
	}
	return nil
}
