/*
File    : golox/internal/value/value.go
Package : value

Package value defines the primitive Lox runtime values: nil, booleans,
numbers, and strings. It is intentionally the lowest layer of the
interpreter's runtime: it imports nothing from ast, environment, or
runtime, so that those packages can import value without any cycle.
Richer runtime objects (functions, classes, instances) live in the
runtime package and satisfy this same Value interface by duck typing.
*/
package value

import "strconv"

// Type names a Value's runtime kind, used in error messages and by
// callers that need to branch on kind without a type switch.
type Type string

const (
	TypeNil      Type = "nil"
	TypeBoolean  Type = "boolean"
	TypeNumber   Type = "number"
	TypeString   Type = "string"
	TypeFunction Type = "function"
	TypeClass    Type = "class"
	TypeInstance Type = "instance"
)

// Value is anything that can be stored in a variable, passed as an
// argument, or produced by an expression.
type Value interface {
	Type() Type
	String() string
}

// Nil is Lox's single nil value.
type Nil struct{}

func (Nil) Type() Type     { return TypeNil }
func (Nil) String() string { return "nil" }

// NilValue is the one Nil instance in circulation; Nil carries no
// state, so every nil in a running program can share it.
var NilValue = Nil{}

// Boolean is a Lox true/false value.
type Boolean bool

func (Boolean) Type() Type         { return TypeBoolean }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is Lox's single numeric type: a float64, used for every
// number literal regardless of whether it looks like an integer.
type Number float64

func (Number) Type() Type { return TypeNumber }

// String formats the number the way Lox's reference printer does:
// an integral float64 is printed without a trailing ".0".
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is a Lox string value.
type String string

func (String) Type() Type     { return TypeString }
func (s String) String() string { return string(s) }

// IsTruthy applies Lox's truthiness rule: nil and false are falsy,
// everything else, including 0 and the empty string, is truthy.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case Nil:
		return false
	case Boolean:
		return bool(x)
	default:
		return true
	}
}

// Equal implements Lox's "==" equality: nil equals only nil, and
// values of different underlying Go types are never equal (so a
// Number is never equal to a String, even a numeric-looking one).
func Equal(a, b Value) bool {
	if a == nil {
		a = NilValue
	}
	if b == nil {
		b = NilValue
	}
	if _, aNil := a.(Nil); aNil {
		_, bNil := b.(Nil)
		return bNil
	}
	switch x := a.(type) {
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	default:
		return a == b
	}
}
