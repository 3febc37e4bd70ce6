/*
File    : golox/internal/interp/interp.go
Package : interp

Package interp is the tree-walking evaluator: it executes a resolved
Lox program statement by statement, using the resolver's scope
distances to jump straight to the right Environment for every variable
reference instead of re-walking the enclosing chain on every access.

Dispatch is a plain type switch over ast.Stmt/ast.Expr, not a
Visitor/Accept double dispatch. An environment is threaded through
statement execution; ExecuteBlock swaps it out for the block's own
scope and always restores it afterward, the same shape block, function,
and class scoping all share.
*/
package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/runtime"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

// Interp holds the running program's global scope, its currently
// active scope, the resolver's distance table, and where "print"
// writes to.
type Interp struct {
	Globals *environment.Environment
	env     *environment.Environment
	locals  map[int]int
	stdout  io.Writer
}

// New creates an Interp with the native built-ins bound in its global
// scope and ready to run a resolved program.
func New(stdout io.Writer) *Interp {
	globals := environment.New()
	for name, fn := range runtime.Globals() {
		globals.Define(name, fn)
	}
	return &Interp{Globals: globals, env: globals, stdout: stdout}
}

// Resolve adds the scope-distance table a resolver.Resolver computed
// for the program about to run to the tables of earlier runs. Node IDs
// are never reused, so functions declared by an earlier REPL line keep
// their distances when a later line calls them.
func (in *Interp) Resolve(locals map[int]int) {
	if in.locals == nil {
		in.locals = make(map[int]int, len(locals))
	}
	for id, distance := range locals {
		in.locals[id] = distance
	}
}

// Interpret executes a full program's statement list in the global
// scope, stopping at the first RuntimeError.
func (in *Interp) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if _, _, err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock runs statements in env, restoring the previously active
// scope before returning, including when a RuntimeError or a "return"
// unwinds out early. It satisfies runtime.Interpreter so
// runtime.Function.Call can run a function body without runtime
// importing this package.
func (in *Interp) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) (value.Value, bool, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		result, didReturn, err := in.execute(stmt)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return result, true, nil
		}
	}
	return nil, false, nil
}

// execute runs one statement. The (value, bool) pair is only ever
// populated by a return statement, directly or bubbled up from a
// nested block/if/while/for body; every other statement kind returns
// (nil, false, err).
func (in *Interp) execute(stmt ast.Stmt) (value.Value, bool, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return nil, false, err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return nil, false, err
		}
		fmt.Fprintln(in.stdout, Stringify(v))
		return nil, false, nil

	case *ast.VarStmt:
		var v value.Value = value.NilValue
		if s.Initializer != nil {
			var err error
			v, err = in.evaluate(s.Initializer)
			if err != nil {
				return nil, false, err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil, false, nil

	case *ast.BlockStmt:
		return in.ExecuteBlock(s.Statements, environment.NewEnclosed(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, false, err
		}
		if value.IsTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil, false, nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return nil, false, err
			}
			if !value.IsTruthy(cond) {
				return nil, false, nil
			}
			result, didReturn, err := in.execute(s.Body)
			if err != nil || didReturn {
				return result, didReturn, err
			}
		}

	case *ast.FunctionStmt:
		fn := &runtime.Function{Declaration: s, Closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
		return nil, false, nil

	case *ast.ReturnStmt:
		var v value.Value = value.NilValue
		if s.Value != nil {
			var err error
			v, err = in.evaluate(s.Value)
			if err != nil {
				return nil, false, err
			}
		}
		return v, true, nil

	case *ast.ClassStmt:
		return nil, false, in.executeClassStmt(s)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

func (in *Interp) executeClassStmt(s *ast.ClassStmt) error {
	var superclass *runtime.Class
	if s.Superclass != nil {
		v, err := in.lookupVariable(s.Superclass.Name, s.Superclass.ID())
		if err != nil {
			return err
		}
		sc, ok := v.(*runtime.Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	// The class name is bound before its methods are built so a
	// method body can refer to its own class recursively.
	in.env.Define(s.Name.Lexeme, value.NilValue)

	methodEnv := in.env
	if superclass != nil {
		methodEnv = environment.NewEnclosed(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &runtime.Function{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &runtime.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return in.env.Assign(s.Name, class)
}

// Stringify renders a Value the way "print" does: nil prints as
// "nil", and every other value uses its own String method.
func Stringify(v value.Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// lookupVariable reads a name either at the resolver-assigned scope
// distance, or, if the resolver left it unresolved, as a global.
func (in *Interp) lookupVariable(name token.Token, exprID int) (value.Value, error) {
	if distance, ok := in.locals[exprID]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	v, err := in.Globals.Get(name)
	if err != nil {
		return nil, wrapLookupError(name, err)
	}
	return v, nil
}
