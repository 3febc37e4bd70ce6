package runtime

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/value"
)

// Function is a user-defined function or method: its declaration, the
// environment it closed over at definition time, and whether it is a
// class's "init" method (which always returns the bound instance,
// even from a bare "return;").
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) Type() value.Type { return value.TypeFunction }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Bind returns a copy of f whose closure is a new scope, nested in f's
// original closure, with "this" bound to instance. Method lookup
// calls this every time a method is read off an instance, so the same
// Function declaration can be bound to many different instances.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call runs the function body in a fresh scope nested in its closure,
// with parameters bound to arguments. A return statement unwinds as
// far as ExecuteBlock, which reports it via the didReturn flag rather
// than as a Go error: "return" is control flow, not failure.
func (f *Function) Call(interp Interpreter, arguments []value.Value) (value.Value, error) {
	env := environment.NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	result, didReturn, err := interp.ExecuteBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	if didReturn {
		return result, nil
	}
	return value.NilValue, nil
}
