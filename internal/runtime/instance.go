package runtime

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

// UndefinedPropertyError reports a read of a field or method name that
// neither the instance's fields nor its class's method chain define.
type UndefinedPropertyError struct {
	Name token.Token
}

func (e *UndefinedPropertyError) Error() string {
	return fmt.Sprintf("Undefined property '%s'.", e.Name.Lexeme)
}

// Instance is a live object: a reference to its class plus its own
// field bindings.
type Instance struct {
	Class  *Class
	fields map[string]value.Value
}

// NewInstance creates a field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: make(map[string]value.Value)}
}

func (i *Instance) Type() value.Type { return value.TypeInstance }
func (i *Instance) String() string   { return i.Class.Name + " instance" }

// Get reads a property: fields shadow methods, and a matched method is
// bound to this instance before being returned, so the method body
// sees the right "this" even when stored in a variable and called
// later.
func (i *Instance) Get(name token.Token) (value.Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, &UndefinedPropertyError{Name: name}
}

// Set assigns a field, creating it if it doesn't already exist. Lox
// instances are open, unlike their classes' fixed method tables.
func (i *Instance) Set(name token.Token, val value.Value) {
	i.fields[name.Lexeme] = val
}
