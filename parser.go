// parser.go: s-expression reader for nanoscheme.
//
// Parsing is a mechanical front for the core: it turns source text into the
// expression tree of expr.go and hands the root to the evaluator. Its single
// callback into the core is the lenient environment probe (Env.Resolve) used
// to bind symbols that were already defined when the tree is being built,
// the forward-reference contract recursive lambdas rely on.
//
// Surface syntax:
//
//	42  -7  3.14          int64 / float64 literals
//	"text"                string literal with \" \\ \n \r \t escapes
//	#t  #f  nil           literal singletons
//	'(1 2 3)              quoted (constant) list
//	(op arg ...)          primitive application, op from the operator table
//	(f arg ...)           procedure call
//	; comment             to end of line
//
// The operator table is an immutable process-wide constant: the operator set
// is fixed, so nothing ever mutates it after init.
package nscm

import (
	"fmt"
	"strconv"
	"strings"
)

// opTable maps surface tokens to primitive operators.
var opTable = map[string]PrimOp{
	"if": OpIf, "while": OpWhile, "define": OpDefine, "set!": OpSet,
	"lambda": OpLambda,
	"+":      OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "mod": OpMod,
	">": OpGT, "<": OpLT, ">=": OpGE, "<=": OpLE, "=": OpEq,
	"number?": OpIsNum, "symbol?": OpIsSym, "procedure?": OpIsProc,
	"list?": OpIsList, "string?": OpIsStr, "bool?": OpIsBool,
	"sin": OpSin, "cos": OpCos, "tan": OpTan, "sqrt": OpSqrt,
	"log": OpLog, "abs": OpAbs, "max": OpMax, "min": OpMin,
	"car": OpCar, "cdr": OpCdr, "cons": OpCons, "append": OpAppend,
	"null?": OpIsNull, "map": OpMap, "filter": OpFilter,
}

// ---- tokens ----------------------------------------------------------------

type tokenKind int

const (
	tkLParen tokenKind = iota
	tkRParen
	tkQuote
	tkStr
	tkAtom
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// tokenize splits src into tokens with 1-based positions. An unterminated
// string is reported as incomplete input.
func tokenize(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1

	advance := func(r byte) {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			advance(c)
			i++
		case c == ';':
			for i < len(src) && src[i] != '\n' {
				advance(src[i])
				i++
			}
		case c == '(':
			toks = append(toks, token{tkLParen, "(", line, col})
			advance(c)
			i++
		case c == ')':
			toks = append(toks, token{tkRParen, ")", line, col})
			advance(c)
			i++
		case c == '\'':
			toks = append(toks, token{tkQuote, "'", line, col})
			advance(c)
			i++
		case c == '"':
			startLine, startCol := line, col
			advance(c)
			i++
			var b strings.Builder
			closed := false
			for i < len(src) {
				c = src[i]
				if c == '\\' && i+1 < len(src) {
					advance(c)
					i++
					esc := src[i]
					switch esc {
					case 'n':
						b.WriteByte('\n')
					case 't':
						b.WriteByte('\t')
					case 'r':
						b.WriteByte('\r')
					default:
						b.WriteByte(esc)
					}
					advance(esc)
					i++
					continue
				}
				if c == '"' {
					closed = true
					advance(c)
					i++
					break
				}
				b.WriteByte(c)
				advance(c)
				i++
			}
			if !closed {
				return nil, &ParseError{Line: startLine, Col: startCol,
					Msg: "unterminated string literal", Incomplete: true}
			}
			toks = append(toks, token{tkStr, b.String(), startLine, startCol})
		default:
			startLine, startCol := line, col
			j := i
			for j < len(src) && !isDelimiter(src[j]) {
				advance(src[j])
				j++
			}
			toks = append(toks, token{tkAtom, src[i:j], startLine, startCol})
			i = j
		}
	}
	return toks, nil
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '\'', '"', ';':
		return true
	}
	return false
}

// ---- parser ----------------------------------------------------------------

// Parser reads top-level forms one at a time. env may be nil; when set, the
// parser resolves symbols it can already see (previously evaluated defines)
// and stores the reference on the symbol.
type Parser struct {
	toks []token
	pos  int
	env  *Env
	last token
}

// NewParser tokenizes src. The returned parser yields one top-level form per
// Next call.
func NewParser(src string, env *Env) (*Parser, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks, env: env}, nil
}

// Parse reads every top-level form of src at once. Forms parsed this way do
// not see defines from earlier forms in the same call; interleaved
// parse/eval goes through Parser.Next (see Interp).
func Parse(src string, env *Env) ([]Expr, error) {
	p, err := NewParser(src, env)
	if err != nil {
		return nil, err
	}
	var forms []Expr
	for {
		f, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return forms, nil
		}
		forms = append(forms, f)
	}
}

// Next returns the next top-level form, or ok=false at end of input.
func (p *Parser) Next() (form Expr, ok bool, err error) {
	if p.pos >= len(p.toks) {
		return nil, false, nil
	}
	f, err := p.parseForm()
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}

func (p *Parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.last = t
		p.pos++
	}
	return t, ok
}

// errEOF reports truncated input at the last consumed token; the REPL probes
// for this to keep prompting.
func (p *Parser) errEOF(msg string) error {
	return &ParseError{Line: p.last.line, Col: p.last.col, Msg: msg, Incomplete: true}
}

func errAt(t token, format string, args ...interface{}) error {
	return &ParseError{Line: t.line, Col: t.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) parseForm() (Expr, error) {
	t, ok := p.next()
	if !ok {
		return nil, p.errEOF("unexpected end of input")
	}
	switch t.kind {
	case tkStr:
		return &StrExpr{Val: t.text}, nil
	case tkAtom:
		return p.atomExpr(t), nil
	case tkQuote:
		nt, ok := p.next()
		if !ok {
			return nil, p.errEOF("unexpected end of input after quote")
		}
		if nt.kind != tkLParen {
			return nil, errAt(nt, "expected '(' after quote")
		}
		return p.parseQuotedList()
	case tkRParen:
		return nil, errAt(t, "unmatched ')'")
	case tkLParen:
		return p.parseCompound()
	}
	return nil, errAt(t, "unexpected token %q", t.text)
}

// parseCompound handles everything that starts with '(': primitive
// applications and procedure calls.
func (p *Parser) parseCompound() (Expr, error) {
	head, ok := p.peek()
	if !ok {
		return nil, p.errEOF("unclosed '('")
	}
	if head.kind == tkRParen {
		p.next()
		return &ListExpr{}, nil
	}

	if head.kind == tkAtom {
		if op, isOp := opTable[head.text]; isOp {
			p.next()
			switch op {
			case OpDefine, OpSet:
				return p.parseAssignment(op, head)
			case OpLambda:
				return p.parseLambda(head)
			default:
				args, err := p.parseUntilClose()
				if err != nil {
					return nil, err
				}
				return &PrimExpr{Op: op, Args: args}, nil
			}
		}
	}

	fn, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	args, err := p.parseUntilClose()
	if err != nil {
		return nil, err
	}
	return &CallExpr{Fn: fn, Args: args}, nil
}

// parseAssignment reads the tail of (define name value) / (set! name value).
// The name position becomes a string expression: define's target must reduce
// to a string at eval time.
func (p *Parser) parseAssignment(op PrimOp, head token) (Expr, error) {
	nameTok, ok := p.next()
	if !ok {
		return nil, p.errEOF(fmt.Sprintf("missing name for '%s'", op))
	}
	if nameTok.kind != tkAtom {
		return nil, errAt(nameTok, "'%s' name must be an identifier", op)
	}
	if _, isSym := constAtom(nameTok).(*SymbolExpr); !isSym {
		return nil, errAt(nameTok, "'%s' name must be an identifier, got %q", op, nameTok.text)
	}
	value, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	if err := p.expectClose(head); err != nil {
		return nil, err
	}
	return &PrimExpr{Op: op, Args: []Expr{&StrExpr{Val: nameTok.text}, value}}, nil
}

// parseLambda reads the tail of (lambda (params...) body).
func (p *Parser) parseLambda(head token) (Expr, error) {
	openParams, ok := p.next()
	if !ok {
		return nil, p.errEOF("missing parameter list for 'lambda'")
	}
	if openParams.kind != tkLParen {
		return nil, errAt(openParams, "'lambda' parameters must be a list")
	}
	params := &ListExpr{}
	for {
		t, ok := p.next()
		if !ok {
			return nil, p.errEOF("unclosed 'lambda' parameter list")
		}
		if t.kind == tkRParen {
			break
		}
		if t.kind != tkAtom {
			return nil, errAt(t, "'lambda' parameter must be an identifier")
		}
		if _, isSym := constAtom(t).(*SymbolExpr); !isSym {
			return nil, errAt(t, "'lambda' parameter must be an identifier, got %q", t.text)
		}
		params.Items = append(params.Items, &StrExpr{Val: t.text})
	}
	body, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	if err := p.expectClose(head); err != nil {
		return nil, err
	}
	return &PrimExpr{Op: OpLambda, Args: []Expr{params, body}}, nil
}

// parseUntilClose collects forms up to the matching ')'.
func (p *Parser) parseUntilClose() ([]Expr, error) {
	var out []Expr
	for {
		t, ok := p.peek()
		if !ok {
			return nil, p.errEOF("unclosed '('")
		}
		if t.kind == tkRParen {
			p.next()
			return out, nil
		}
		f, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
}

func (p *Parser) expectClose(head token) error {
	t, ok := p.next()
	if !ok {
		return p.errEOF("unclosed '('")
	}
	if t.kind != tkRParen {
		return errAt(t, "too many arguments for '%s'", head.text)
	}
	return nil
}

// parseQuotedList reads the constant elements of '(...) after the opening
// paren was consumed. Quoted data never resolves symbols: the leaves are
// constants produced right here.
func (p *Parser) parseQuotedList() (Expr, error) {
	list := &ListExpr{}
	for {
		t, ok := p.next()
		if !ok {
			return nil, p.errEOF("unclosed quoted list")
		}
		switch t.kind {
		case tkRParen:
			return list, nil
		case tkLParen:
			inner, err := p.parseQuotedList()
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, inner)
		case tkQuote:
			nt, ok := p.next()
			if !ok {
				return nil, p.errEOF("unexpected end of input after quote")
			}
			if nt.kind != tkLParen {
				return nil, errAt(nt, "expected '(' after quote")
			}
			inner, err := p.parseQuotedList()
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, inner)
		case tkStr:
			list.Items = append(list.Items, &StrExpr{Val: t.text})
		case tkAtom:
			list.Items = append(list.Items, constAtom(t))
		}
	}
}

// atomExpr builds the expression for a bare atom, resolving symbols against
// the environment when one is available.
func (p *Parser) atomExpr(t token) Expr {
	e := constAtom(t)
	if sym, ok := e.(*SymbolExpr); ok && p.env != nil {
		if ref, found := p.env.Resolve(sym.Name); found {
			sym.Bound = ref
		}
	}
	return e
}

// constAtom classifies an atom token: number, literal singleton, or symbol.
func constAtom(t token) Expr {
	if n, err := strconv.ParseInt(t.text, 10, 64); err == nil {
		return &IntExpr{Val: n}
	}
	if f, err := strconv.ParseFloat(t.text, 64); err == nil {
		return &FloatExpr{Val: f}
	}
	switch t.text {
	case "#t":
		return True
	case "#f":
		return False
	case "nil":
		return Nil
	}
	return &SymbolExpr{Name: t.text}
}
