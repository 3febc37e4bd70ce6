package ast

import (
	"bytes"
	"fmt"
)

// Print renders an expression as a fully-parenthesized Lisp-style
// string, e.g. "(+ 1 (* 2 3))". It exists for debugging the parser
// independent of the evaluator.
func Print(expr Expr) string {
	var buf bytes.Buffer
	printExpr(&buf, expr)
	return buf.String()
}

func printExpr(buf *bytes.Buffer, expr Expr) {
	switch e := expr.(type) {
	case *BinaryExpr:
		parenthesize(buf, e.Operator.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		parenthesize(buf, e.Operator.Lexeme, e.Left, e.Right)
	case *UnaryExpr:
		parenthesize(buf, e.Operator.Lexeme, e.Right)
	case *GroupingExpr:
		parenthesize(buf, "group", e.Expression)
	case *LiteralExpr:
		if e.Value == nil {
			buf.WriteString("nil")
			return
		}
		fmt.Fprintf(buf, "%v", e.Value)
	case *VariableExpr:
		buf.WriteString(e.Name.Lexeme)
	case *AssignExpr:
		parenthesize(buf, "= "+e.Name.Lexeme, e.Value)
	case *CallExpr:
		parenthesize(buf, "call", append([]Expr{e.Callee}, e.Arguments...)...)
	case *GetExpr:
		parenthesize(buf, "get "+e.Name.Lexeme, e.Object)
	case *SetExpr:
		parenthesize(buf, "set "+e.Name.Lexeme, e.Object, e.Value)
	case *ThisExpr:
		buf.WriteString("this")
	case *SuperExpr:
		buf.WriteString("(super " + e.Method.Lexeme + ")")
	default:
		fmt.Fprintf(buf, "<unknown expr %T>", e)
	}
}

func parenthesize(buf *bytes.Buffer, name string, exprs ...Expr) {
	buf.WriteString("(")
	buf.WriteString(name)
	for _, e := range exprs {
		buf.WriteString(" ")
		printExpr(buf, e)
	}
	buf.WriteString(")")
}
