package interp

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/resolver"
	"github.com/akashmaji946/golox/internal/scanner"
	"github.com/akashmaji946/golox/internal/token"
)

// Run drives one full pass of the pipeline (scan, parse, resolve,
// evaluate) over source against in's existing global scope, so that
// REPL lines keep seeing variables declared by earlier lines. It
// reports every diagnostic to stderr in a fixed wire format
// ("[line N] Error WHERE: MESSAGE" for static errors, "MESSAGE\n[line
// N]" for runtime errors), so file mode, REPL mode, and the TCP server
// mode all produce identical diagnostics for the same program.
func Run(source string, in *Interp, stderr io.Writer) (hadError, hadRuntimeError bool) {
	sc := scanner.New(source)
	tokens := sc.ScanTokens()
	for _, e := range sc.Errors() {
		fmt.Fprintf(stderr, "[line %d] Error: %s\n", e.Line, e.Message)
		hadError = true
	}
	if hadError {
		return true, false
	}

	p := parser.New(tokens)
	statements := p.Parse()
	for _, e := range p.Errors() {
		fmt.Fprintln(stderr, formatStaticError(e))
		hadError = true
	}
	if hadError {
		return true, false
	}

	res := resolver.New()
	res.Resolve(statements)
	for _, e := range res.Errors() {
		fmt.Fprintln(stderr, formatStaticError(e))
		hadError = true
	}
	if hadError {
		return true, false
	}
	in.Resolve(res.Locals)

	if err := in.Interpret(statements); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return false, true
	}
	return false, false
}

// formatStaticError renders a *parser.Error or *resolver.Error as
// "[line N] Error WHERE: MESSAGE".
func formatStaticError(err error) string {
	switch e := err.(type) {
	case *parser.Error:
		return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, where(e.Token), e.Message)
	case *resolver.Error:
		return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, where(e.Token), e.Message)
	default:
		return err.Error()
	}
}

func where(tok token.Token) string {
	if tok.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}
