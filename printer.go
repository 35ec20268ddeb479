// printer.go: rendering evaluated expressions back to text.
//
// Render is the single output surface of the core. Mappings:
//
//	integers      decimal
//	floats        shortest round-trippable form
//	strings       double-quoted with escapes (round-trips through the parser)
//	#t / #f / ()  the boolean and nil tokens
//	lists         space-separated elements in parentheses
//	procedures    <closure>
//	primitives    <primitive>, except lambda (<closure>) and define/set!
//	              (no visible output)
package nscm

import (
	"strconv"
	"strings"
)

// Render produces the printable text of an expression.
func Render(x Expr) string {
	switch v := x.(type) {
	case *IntExpr:
		return strconv.FormatInt(v.Val, 10)
	case *FloatExpr:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case *StrExpr:
		return quoteString(v.Val)
	case *LitExpr:
		switch v.Lit {
		case LitTrue:
			return "#t"
		case LitFalse:
			return "#f"
		default:
			return "()"
		}
	case *ListExpr:
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = Render(it)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *SymbolExpr:
		if v.Bound != nil {
			return Render(v.Bound)
		}
		return v.Name
	case *ProcExpr:
		return "<closure>"
	case *CallExpr:
		return "<procedure>"
	case *PrimExpr:
		switch v.Op {
		case OpLambda:
			return "<closure>"
		case OpDefine, OpSet:
			return ""
		default:
			return "<primitive>"
		}
	default:
		return ""
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
