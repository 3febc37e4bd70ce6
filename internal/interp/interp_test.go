package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes source against a fresh Interp and returns everything
// "print" wrote plus the formatted diagnostics, so tests can assert on
// exact interpreter output the way a golden Lox script's output would
// be checked.
func run(t *testing.T, source string) (stdout string, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	in := New(&out)
	Run(source, in, &errOut)
	return out.String(), errOut.String()
}

func TestArithmeticAndPrecedence(t *testing.T) {
	out, errOut := run(t, `print 1 + 2 * 3;`)
	assert.Empty(t, errOut)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestAddingStringAndNumberIsARuntimeError(t *testing.T) {
	_, errOut := run(t, `print "foo" + 1;`)
	assert.Contains(t, errOut, "Operands must be two numbers or two strings.")
}

func TestVariablesAndAssignment(t *testing.T) {
	out, errOut := run(t, `
		var a = 1;
		a = a + 1;
		print a;
	`)
	assert.Empty(t, errOut)
	assert.Equal(t, "2\n", out)
}

func TestBlockScopingShadowsOuterVariable(t *testing.T) {
	out, _ := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestIfElseBranches(t *testing.T) {
	out, _ := run(t, `
		if (1 < 2) print "yes"; else print "no";
	`)
	assert.Equal(t, "yes\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, _ := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestForLoop(t *testing.T) {
	out, _ := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestLogicalOperatorsShortCircuitAndReturnOperandValue(t *testing.T) {
	out, _ := run(t, `
		print nil or "default";
		print false and "never";
	`)
	assert.Equal(t, "default\nfalse\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, _ := run(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	assert.Equal(t, "5\n", out)
}

func TestClosureCapturesByReference(t *testing.T) {
	// The canonical Lox closure-counter test: two calls to makeCounter
	// must each keep their own "count", and repeated calls to the same
	// counter must observe its own earlier increments.
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var counterA = makeCounter();
		var counterB = makeCounter();
		print counterA();
		print counterA();
		print counterB();
	`)
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestClassInstantiationFieldsAndMethods(t *testing.T) {
	out, _ := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				return "Hello, " + this.name;
			}
		}
		var g = Greeter("world");
		print g.greet();
	`)
	assert.Equal(t, "Hello, world\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	out, _ := run(t, `
		class Animal {
			speak() {
				return "...";
			}
		}
		class Dog < Animal {
			speak() {
				return "Woof, and also: " + super.speak();
			}
		}
		print Dog().speak();
	`)
	assert.Equal(t, "Woof, and also: ...\n", out)
}

func TestCallingNonCallableIsARuntimeError(t *testing.T) {
	_, errOut := run(t, `var a = 1; a();`)
	assert.Contains(t, errOut, "Can only call functions and classes.")
}

func TestWrongArityIsARuntimeError(t *testing.T) {
	_, errOut := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	assert.Contains(t, errOut, "Expected 2 arguments but got 1.")
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, errOut := run(t, `print nope;`)
	assert.Contains(t, errOut, "Undefined variable 'nope'.")
}

func TestUndefinedPropertyIsARuntimeError(t *testing.T) {
	_, errOut := run(t, `
		class A {}
		var a = A();
		print a.missing;
	`)
	assert.Contains(t, errOut, "Undefined property 'missing'.")
}

func TestStringifyFormatsNumbersWithoutTrailingZero(t *testing.T) {
	out, _ := run(t, `print 10 / 2;`)
	assert.Equal(t, "5\n", out)
}

func TestParseErrorStopsExecution(t *testing.T) {
	out, errOut := run(t, `var = 1;`)
	assert.Empty(t, out)
	require.NotEmpty(t, errOut)
	assert.True(t, strings.Contains(errOut, "Error"))
}
