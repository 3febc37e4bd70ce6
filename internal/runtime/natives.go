package runtime

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/akashmaji946/golox/internal/value"
)

// nativeFunc adapts a plain Go function into a Callable, for the
// small set of built-ins Lox exposes without any user-visible
// declaration.
type nativeFunc struct {
	name  string
	arity int
	fn    func(arguments []value.Value) (value.Value, error)
}

func (n *nativeFunc) Type() value.Type { return value.TypeFunction }
func (n *nativeFunc) String() string   { return "<native fn>" }
func (n *nativeFunc) Arity() int       { return n.arity }

func (n *nativeFunc) Call(_ Interpreter, arguments []value.Value) (value.Value, error) {
	return n.fn(arguments)
}

// Globals returns the native built-ins bound in every fresh Lox
// program's outermost scope: clock, str, float, and randint.
func Globals() map[string]Callable {
	return map[string]Callable{
		"clock":   &nativeFunc{name: "clock", arity: 0, fn: clockNative},
		"str":     &nativeFunc{name: "str", arity: 1, fn: strNative},
		"float":   &nativeFunc{name: "float", arity: 1, fn: floatNative},
		"randint": &nativeFunc{name: "randint", arity: 2, fn: randintNative},
	}
}

// clockNative returns the number of seconds since the Unix epoch, as
// a float with sub-second precision.
func clockNative(_ []value.Value) (value.Value, error) {
	return value.Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
}

// strNative converts any value to its Lox string representation.
func strNative(arguments []value.Value) (value.Value, error) {
	return value.String(stringOf(arguments[0])), nil
}

func stringOf(v value.Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// floatNative converts a number or a numeric string into a number.
func floatNative(arguments []value.Value) (value.Value, error) {
	switch v := arguments[0].(type) {
	case value.Number:
		return v, nil
	case value.String:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot be cast to a number: %q", string(v))
		}
		return value.Number(f), nil
	default:
		return nil, fmt.Errorf("cannot be cast to a number: %s", stringOf(v))
	}
}

// randintNative returns a random integer-valued float in [lo, hi]
// inclusive.
func randintNative(arguments []value.Value) (value.Value, error) {
	lo, loOK := arguments[0].(value.Number)
	hi, hiOK := arguments[1].(value.Number)
	if !loOK || !hiOK {
		return nil, fmt.Errorf("randint expects two numbers")
	}
	low, high := int64(lo), int64(hi)
	if low > high {
		return nil, fmt.Errorf("randint: low bound greater than high bound")
	}
	return value.Number(float64(low + rand.Int63n(high-low+1))), nil
}
