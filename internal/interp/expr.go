package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/runtime"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

// evaluate computes an expression's Value, or the first RuntimeError
// raised while computing it.
func (in *Interp) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return in.evaluate(e.Expression)

	case *ast.VariableExpr:
		return in.lookupVariable(e.Name, e.ID())

	case *ast.AssignExpr:
		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e.ID()]; ok {
			in.env.AssignAt(distance, e.Name, v)
			return v, nil
		}
		if err := in.Globals.Assign(e.Name, v); err != nil {
			return nil, wrapLookupError(e.Name, err)
		}
		return v, nil

	case *ast.LogicalExpr:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == token.Or {
			if value.IsTruthy(left) {
				return left, nil
			}
		} else if !value.IsTruthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		return in.evalGet(e)

	case *ast.SetExpr:
		return in.evalSet(e)

	case *ast.ThisExpr:
		return in.lookupVariable(e.Keyword, e.ID())

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic(unhandledExpr(e))
	}
}

// literalValue converts the raw interface{} payload a LiteralExpr
// carries (as scanned: float64, string, bool, or nil) into a
// value.Value.
func literalValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.NilValue
	case bool:
		return value.Boolean(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		panic(unhandledExpr(raw))
	}
}

func (in *Interp) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.Bang:
		return value.Boolean(!value.IsTruthy(right)), nil
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic(unhandledExpr(e))
	}
}

func (in *Interp) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		l, r, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Type {
		case token.Greater:
			return value.Boolean(l > r), nil
		case token.GreaterEqual:
			return value.Boolean(l >= r), nil
		case token.Less:
			return value.Boolean(l < r), nil
		default:
			return value.Boolean(l <= r), nil
		}

	case token.BangEqual:
		return value.Boolean(!value.Equal(left, right)), nil
	case token.EqualEqual:
		return value.Boolean(value.Equal(left, right)), nil

	case token.Minus:
		l, r, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case token.Plus:
		if l, ok := left.(value.Number); ok {
			if r, ok := right.(value.Number); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(value.String); ok {
			if r, ok := right.(value.String); ok {
				return l + r, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.Slash:
		l, r, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil

	case token.Star:
		l, r, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil

	default:
		panic(unhandledExpr(e))
	}
}

func (in *Interp) numberOperands(operator token.Token, left, right value.Value) (value.Number, value.Number, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, newRuntimeError(operator, "Operands must be numbers.")
	}
	return l, r, nil
}

func (in *Interp) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]value.Value, len(e.Arguments))
	for i, arg := range e.Arguments {
		v, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments[i] = v
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	result, err := callable.Call(in, arguments)
	if err != nil {
		// Native built-ins return plain errors; give them the call's line.
		if _, ok := err.(*RuntimeError); !ok {
			return nil, newRuntimeError(e.Paren, "%s", err.Error())
		}
		return nil, err
	}
	return result, nil
}

func (in *Interp) evalGet(e *ast.GetExpr) (value.Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	v, err := instance.Get(e.Name)
	if err != nil {
		return nil, wrapLookupError(e.Name, err)
	}
	return v, nil
}

func (in *Interp) evalSet(e *ast.SetExpr) (value.Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, v)
	return v, nil
}

func (in *Interp) evalSuper(e *ast.SuperExpr) (value.Value, error) {
	distance, ok := in.locals[e.ID()]
	if !ok {
		panic("interp: super expression left unresolved by the resolver")
	}
	superclass := in.env.GetAt(distance, "super").(*runtime.Class)
	object := in.env.GetAt(distance-1, "this").(*runtime.Instance)

	method, found := superclass.FindMethod(e.Method.Lexeme)
	if !found {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(object), nil
}

func unhandledExpr(v interface{}) string {
	return fmt.Sprintf("interp: unhandled expression type %T", v)
}
