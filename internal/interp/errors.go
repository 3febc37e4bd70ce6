package interp

import (
	"errors"
	"fmt"

	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/runtime"
	"github.com/akashmaji946/golox/internal/token"
)

// RuntimeError is the one kind of failure the evaluator itself raises
// while a program runs: a bad operand type, a call to a non-callable
// value, wrong arity, an undefined name. It always carries the token
// whose evaluation triggered it, so the driver can print "[line N]".
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// wrapLookupError converts the environment and runtime packages' own
// undefined-name/undefined-property errors into a RuntimeError, since
// neither lower package carries enough context to format the
// "[line N]" trailer the driver expects.
func wrapLookupError(tok token.Token, err error) error {
	var undefinedVar *environment.UndefinedVariableError
	if errors.As(err, &undefinedVar) {
		return newRuntimeError(tok, undefinedVar.Error())
	}
	var undefinedProp *runtime.UndefinedPropertyError
	if errors.As(err, &undefinedProp) {
		return newRuntimeError(tok, undefinedProp.Error())
	}
	return err
}
