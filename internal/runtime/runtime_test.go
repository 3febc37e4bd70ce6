package runtime

import (
	"testing"

	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameTok(lexeme string) token.Token {
	return token.New(token.Identifier, lexeme, 1)
}

func TestInstanceGetSetAndUndefinedProperty(t *testing.T) {
	class := &Class{Name: "Point", Methods: map[string]*Function{}}
	instance := NewInstance(class)

	instance.Set(nameTok("x"), value.Number(1))
	v, err := instance.Get(nameTok("x"))
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)

	_, err = instance.Get(nameTok("missing"))
	require.Error(t, err)
	assert.IsType(t, &UndefinedPropertyError{}, err)
}

func TestClassFindMethodWalksSuperclassChain(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{
		"speak": {Declaration: nil},
	}}
	derived := &Class{Name: "Derived", Superclass: base, Methods: map[string]*Function{}}

	method, ok := derived.FindMethod("speak")
	assert.True(t, ok)
	assert.Same(t, base.Methods["speak"], method)

	_, ok = derived.FindMethod("missing")
	assert.False(t, ok)
}

func TestFunctionBindCreatesThisInNewScope(t *testing.T) {
	closure := environment.New()
	fn := &Function{Closure: closure}
	class := &Class{Name: "C", Methods: map[string]*Function{}}
	instance := NewInstance(class)

	bound := fn.Bind(instance)
	assert.NotSame(t, closure, bound.Closure)
	assert.Equal(t, instance, bound.Closure.GetAt(0, "this"))
}

func TestNativeGlobalsIncludeExactlyTheSpecifiedSet(t *testing.T) {
	globals := Globals()
	for _, name := range []string{"clock", "str", "float", "randint"} {
		_, ok := globals[name]
		assert.True(t, ok, "expected native %q to be registered", name)
	}
	assert.Len(t, globals, 4)
}

func TestNativeClockReturnsANumber(t *testing.T) {
	fn := Globals()["clock"]
	v, err := fn.Call(nil, nil)
	require.NoError(t, err)
	assert.IsType(t, value.Number(0), v)
}

func TestNativeStrFormatsValue(t *testing.T) {
	fn := Globals()["str"]
	v, err := fn.Call(nil, []value.Value{value.Number(3)})
	require.NoError(t, err)
	assert.Equal(t, value.String("3"), v)
}

func TestNativeFloatParsesNumericString(t *testing.T) {
	fn := Globals()["float"]
	v, err := fn.Call(nil, []value.Value{value.String("3.5")})
	require.NoError(t, err)
	assert.Equal(t, value.Number(3.5), v)

	_, err = fn.Call(nil, []value.Value{value.String("not a number")})
	assert.Error(t, err)
}

func TestNativeRandintStaysWithinBounds(t *testing.T) {
	fn := Globals()["randint"]
	for i := 0; i < 20; i++ {
		v, err := fn.Call(nil, []value.Value{value.Number(1), value.Number(3)})
		require.NoError(t, err)
		n := float64(v.(value.Number))
		assert.GreaterOrEqual(t, n, 1.0)
		assert.LessOrEqual(t, n, 3.0)
	}
}
