/*
File    : golox/internal/runtime/callable.go
Package : runtime

Package runtime implements Lox's callable and object-oriented runtime
values: user-defined functions, classes, their instances, and the
built-in native functions. These are richer than the primitives in
value (a Function closes over an Environment, a Class tracks its
method table and superclass), so they live in their own package rather
than value, but they still satisfy value.Value by duck typing: each
has a Type and String method, without either package importing the
other.

Calling a user-defined Function means running its body, which is a
list of statements the interp package knows how to execute. But
runtime cannot import interp without interp also importing runtime for
Function/Class/Instance. Callable.Call instead takes a narrow
Interpreter interface (ExecuteBlock) that the interp package's
evaluator implements; runtime depends only on that interface, never on
the concrete interp package.
*/
package runtime

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/value"
)

// Interpreter is the slice of evaluator behavior a Callable needs to
// run a user-defined function or method body.
type Interpreter interface {
	// ExecuteBlock runs statements in env and reports whether a
	// "return" statement fired, along with its value.
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) (result value.Value, didReturn bool, err error)
}

// Callable is anything Lox can invoke with "(...)": a user function, a
// class (instantiation), or a native built-in.
type Callable interface {
	value.Value
	Arity() int
	Call(interp Interpreter, arguments []value.Value) (value.Value, error)
}
