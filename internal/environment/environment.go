/*
File    : golox/internal/environment/environment.go
Package : environment

Package environment implements Lox's lexical variable bindings as a
chain of scopes linked by pointer, one per block/call/class body. Each
Environment holds only the bindings introduced at its own level; a
lookup that misses walks Enclosing outward until it reaches the global
scope or runs out of scopes.

A shallow copy of the variable map on closure capture would break
Lox's required reference-semantics closures: two closures created from
the same enclosing scope, or a closure and the code that later
reassigns one of its captured variables, must observe each other's
writes. Environment is never copied; a closure simply holds a pointer
to the Environment active at the time it was created.
*/
package environment

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

// UndefinedVariableError reports a read or assignment to a name with
// no binding anywhere in the enclosing chain. The interp package
// converts this into its own runtime error, attaching the token's
// source line.
type UndefinedVariableError struct {
	Name token.Token
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme)
}

// Environment is one scope level: its own bindings plus a pointer to
// the scope it is nested in.
type Environment struct {
	Enclosing *Environment
	values    map[string]value.Value
}

// New creates a top-level environment with no enclosing scope. The
// global environment is built this way.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewEnclosed creates a new scope nested directly inside enclosing,
// such as a block body or a function call's parameter scope.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{Enclosing: enclosing, values: make(map[string]value.Value)}
}

// Define binds name to val in this scope, overwriting any existing
// binding of the same name at this level. Lox permits redeclaring a
// global, and the resolver rejects a redeclaration in a local scope
// before the program runs, so no "already defined" check happens
// here.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get resolves name by walking outward from this scope.
func (e *Environment) Get(name token.Token) (value.Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign rebinds an existing binding of name, walking outward from
// this scope. Unlike Define, it errors if no such binding exists
// anywhere in the chain: Lox requires "var" to introduce a name
// before it can be assigned.
func (e *Environment) Assign(name token.Token, val value.Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = val
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, val)
	}
	return &UndefinedVariableError{Name: name}
}

// ancestor walks outward exactly distance scopes. The resolver
// guarantees distance is always a valid hop count for the variable
// being looked up, so a nil Enclosing here would indicate a resolver
// bug rather than a user error.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt resolves name at exactly the scope distance computed by the
// resolver, bypassing the walk-and-miss fallback Get uses for globals.
func (e *Environment) GetAt(distance int, name string) value.Value {
	return e.ancestor(distance).values[name]
}

// AssignAt rebinds name at exactly the scope distance computed by the
// resolver.
func (e *Environment) AssignAt(distance int, name token.Token, val value.Value) {
	e.ancestor(distance).values[name.Lexeme] = val
}
