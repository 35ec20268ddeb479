// expr.go
//
// Expression model for nanoscheme.
//
// Every node a parsed program can contain is one of the variants below. The
// set is closed: Expr is a sealed interface (unexported marker method), so a
// consumer can type-switch exhaustively and never reach a payload that does
// not belong to the active variant. Evaluated values reuse the same
// representation; a reduced expression *is* the value (numbers, strings,
// literals and lists are self-evaluating; lambda reduces to *ProcExpr).
//
// Ownership notes:
//   - A *ListExpr owns its element slice. List-producing primitives (cons,
//     cdr, append) copy the slice, never the elements.
//   - A *ProcExpr shares its captured *Env by reference. Closures defined in
//     the same scope alias the same frames; mutation through define/set! in
//     one call is visible to every closure holding an ancestor frame. That
//     aliasing is how recursive defines see themselves.
//   - A *SymbolExpr with a non-nil Bound reference was resolved while the
//     tree was being built (the name was already defined in the environment
//     chain at construction time). Bound always outlives the symbol.
package nscm

// Expr is the closed set of nanoscheme expression kinds.
type Expr interface {
	expr() // sealed marker
}

// IntExpr is an integer literal.
type IntExpr struct {
	Val int64
}

func (*IntExpr) expr() {}

// FloatExpr is a floating-point literal.
type FloatExpr struct {
	Val float64
}

func (*FloatExpr) expr() {}

// StrExpr is a string literal. The surface syntax is double-quoted; the
// payload holds the unquoted text.
type StrExpr struct {
	Val string
}

func (*StrExpr) expr() {}

// Literal enumerates the singleton literals.
type Literal int

const (
	LitTrue Literal = iota
	LitFalse
	LitNil
)

// LitExpr is one of the #t / #f / nil singletons.
type LitExpr struct {
	Lit Literal
}

func (*LitExpr) expr() {}

// Shared literal instances. Literals carry no other state, so every #t in a
// program may point at the same node.
var (
	True  = &LitExpr{Lit: LitTrue}
	False = &LitExpr{Lit: LitFalse}
	Nil   = &LitExpr{Lit: LitNil}
)

// BoolLit maps a Go bool onto the matching literal singleton.
func BoolLit(b bool) *LitExpr {
	if b {
		return True
	}
	return False
}

// ListExpr is a proper list. Insertion order is significant and the node
// owns Items.
type ListExpr struct {
	Items []Expr
}

func (*ListExpr) expr() {}

// SymbolExpr is an identifier. Bound is nil for symbols resolved against the
// environment at eval time; it points directly at the referent when the
// parser could already resolve the name while building the tree (the shape
// forward-referenced recursive lambdas rely on).
type SymbolExpr struct {
	Name  string
	Bound Expr
}

func (*SymbolExpr) expr() {}

// ProcExpr is a user-defined closure: parameter names, an unevaluated body,
// and the lexical environment captured when the lambda was evaluated.
type ProcExpr struct {
	Params []string
	Body   Expr
	Env    *Env
}

func (*ProcExpr) expr() {}

// CallExpr is a procedure application as the parser writes it: an expression
// for the callee plus unevaluated argument expressions. The callee may be an
// unresolved symbol; it is reduced to a *ProcExpr at eval time.
type CallExpr struct {
	Fn   Expr
	Args []Expr
}

func (*CallExpr) expr() {}

// PrimOp enumerates the built-in operators. The set is fixed at compile
// time; the parser's operator table is the only producer.
type PrimOp int

const (
	OpIf PrimOp = iota
	OpWhile
	OpDefine
	OpSet
	OpLambda

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	OpGT
	OpLT
	OpGE
	OpLE
	OpEq

	OpIsNum
	OpIsSym
	OpIsProc
	OpIsList
	OpIsStr
	OpIsBool

	OpSin
	OpCos
	OpTan
	OpSqrt
	OpLog
	OpAbs
	OpMax
	OpMin

	OpCar
	OpCdr
	OpCons
	OpAppend
	OpIsNull
	OpMap
	OpFilter
)

// primNames maps operators back to their surface tokens, for diagnostics.
var primNames = map[PrimOp]string{
	OpIf: "if", OpWhile: "while", OpDefine: "define", OpSet: "set!",
	OpLambda: "lambda",
	OpAdd:    "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "mod",
	OpGT: ">", OpLT: "<", OpGE: ">=", OpLE: "<=", OpEq: "=",
	OpIsNum: "number?", OpIsSym: "symbol?", OpIsProc: "procedure?",
	OpIsList: "list?", OpIsStr: "string?", OpIsBool: "bool?",
	OpSin: "sin", OpCos: "cos", OpTan: "tan", OpSqrt: "sqrt",
	OpLog: "log", OpAbs: "abs", OpMax: "max", OpMin: "min",
	OpCar: "car", OpCdr: "cdr", OpCons: "cons", OpAppend: "append",
	OpIsNull: "null?", OpMap: "map", OpFilter: "filter",
}

// String returns the operator's surface token.
func (op PrimOp) String() string {
	if s, ok := primNames[op]; ok {
		return s
	}
	return "<unknown-op>"
}

// PrimExpr is an operator application. Args stay unevaluated until dispatch;
// each operator decides which arguments it reduces (if never touches its
// untaken branch).
type PrimExpr struct {
	Op   PrimOp
	Args []Expr
}

func (*PrimExpr) expr() {}

// copyItems shallow-copies a list payload: the slice is fresh, the elements
// are shared.
func copyItems(items []Expr) []Expr {
	out := make([]Expr, len(items))
	copy(out, items)
	return out
}
