package runtime

import "github.com/akashmaji946/golox/internal/value"

// Class is a Lox class: its name, an optional superclass, and its own
// (not inherited) method table. Method lookup walks the superclass
// chain at call time rather than flattening inherited methods into
// the subclass's table at declaration time.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() value.Type { return value.TypeClass }
func (c *Class) String() string   { return c.Name }

// FindMethod looks up name in this class's own methods, falling back
// to the superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init", or 0 for a class with no initializer.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: it builds a bare Instance and, if an
// "init" method exists, runs it bound to that instance. The return
// value of "init" itself is discarded; Call always produces the new
// instance, matching Lox's rule that a constructor call always
// evaluates to the instance regardless of what init returns.
func (c *Class) Call(interp Interpreter, arguments []value.Value) (value.Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
