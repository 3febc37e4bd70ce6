package scanner

import (
	"testing"

	"github.com/akashmaji946/golox/internal/token"
	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []token.Type
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `( ) { } , . - + ; * /`,
			Expected: []token.Type{token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace, token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star, token.Slash, token.EOF},
		},
		{
			Input:    `! != = == > >= < <=`,
			Expected: []token.Type{token.Bang, token.BangEqual, token.Equal, token.EqualEqual, token.Greater, token.GreaterEqual, token.Less, token.LessEqual, token.EOF},
		},
	}

	for _, tt := range tests {
		sc := New(tt.Input)
		tokens := sc.ScanTokens()
		var kinds []token.Type
		for _, tok := range tokens {
			kinds = append(kinds, tok.Type)
		}
		assert.Equal(t, tt.Expected, kinds)
		assert.Empty(t, sc.Errors())
	}
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	sc := New(`class fun var and_or _private Class2`)
	tokens := sc.ScanTokens()

	assert.Equal(t, token.Class, tokens[0].Type)
	assert.Equal(t, token.Fun, tokens[1].Type)
	assert.Equal(t, token.Var, tokens[2].Type)
	assert.Equal(t, token.Identifier, tokens[3].Type)
	assert.Equal(t, "and_or", tokens[3].Lexeme)
	assert.Equal(t, token.Identifier, tokens[4].Type)
	assert.Equal(t, token.Identifier, tokens[5].Type)
}

func TestScanTokens_NumbersAndStrings(t *testing.T) {
	sc := New(`123 45.67 "hello world"`)
	tokens := sc.ScanTokens()

	assert.Equal(t, token.Number, tokens[0].Type)
	assert.Equal(t, 123.0, tokens[0].Literal)

	assert.Equal(t, token.Number, tokens[1].Type)
	assert.Equal(t, 45.67, tokens[1].Literal)

	assert.Equal(t, token.String, tokens[2].Type)
	assert.Equal(t, "hello world", tokens[2].Literal)
}

func TestScanTokens_LineComment(t *testing.T) {
	sc := New("1 + 1 // this whole thing is ignored\n2")
	tokens := sc.ScanTokens()

	assert.Equal(t, token.Number, tokens[0].Type)
	assert.Equal(t, token.Plus, tokens[1].Type)
	assert.Equal(t, token.Number, tokens[2].Type)
	assert.Equal(t, token.Number, tokens[3].Type)
	assert.Equal(t, 2.0, tokens[3].Literal)
	assert.Equal(t, token.EOF, tokens[4].Type)
}

func TestScanTokens_UnterminatedStringReportsError(t *testing.T) {
	sc := New(`"never closed`)
	sc.ScanTokens()

	if assert.Len(t, sc.Errors(), 1) {
		assert.Equal(t, "Unterminated string.", sc.Errors()[0].Message)
	}
}

func TestScanTokens_UnexpectedCharacterReportsErrorAndContinues(t *testing.T) {
	sc := New(`1 @ 2`)
	tokens := sc.ScanTokens()

	if assert.Len(t, sc.Errors(), 1) {
		assert.Equal(t, "Unexpected character.", sc.Errors()[0].Message)
	}
	assert.Equal(t, token.Number, tokens[0].Type)
	assert.Equal(t, token.Number, tokens[1].Type)
}

func TestScanTokens_IdentifierStartIsASCIIOnly(t *testing.T) {
	// Non-ASCII letters must never start an identifier: the scanner's
	// isAlpha is restricted to [A-Za-z_], unlike unicode.IsLetter.
	sc := New(`é`)
	sc.ScanTokens()
	assert.NotEmpty(t, sc.Errors())
}

func TestScanTokens_EmptySourceProducesOnlyEOF(t *testing.T) {
	sc := New("")
	tokens := sc.ScanTokens()

	assert.Equal(t, []token.Type{token.EOF}, []token.Type{tokens[0].Type})
	assert.Len(t, tokens, 1)
	assert.Empty(t, sc.Errors())
}

func TestScanTokens_TracksLineNumbers(t *testing.T) {
	sc := New("var a = 1;\nvar b = 2;\nprint a;")
	tokens := sc.ScanTokens()

	var printLine int
	for _, tok := range tokens {
		if tok.Type == token.Print {
			printLine = tok.Line
		}
	}
	assert.Equal(t, 3, printLine)
}
