/*
File    : golox/internal/scanner/scanner.go
Package : scanner

Package scanner turns Lox source text into a token stream. It is a
single pass over the source with a lookahead of one byte (plus one
extra byte of lookahead for the fractional part of a number): a
cursor, a current byte, and a line counter, advanced one byte at a
time.
*/
package scanner

import (
	"strconv"

	"github.com/akashmaji946/golox/internal/token"
)

// Error is a single lexical error: a source line and a message. The
// scanner never stops on an error; it records it and keeps scanning.
type Error struct {
	Line    int
	Message string
}

// Scanner consumes a Lox source string; ScanTokens produces the whole
// token sequence in one call.
type Scanner struct {
	src     string
	start   int // start of the lexeme being scanned
	current int // index of the next byte to consume
	line    int
	errors  []Error
}

// New creates a Scanner positioned at the beginning of src.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Errors returns every lexical error recorded so far.
func (s *Scanner) Errors() []Error {
	return s.errors
}

// ScanTokens tokenizes the entire source and returns the resulting
// token sequence, always terminated by exactly one EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for !s.isAtEnd() {
		s.start = s.current
		tok, ok := s.scanToken()
		if ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", s.line))
	return tokens
}

// scanToken scans a single token starting at s.current. The second
// return value is false when the current position produced no token
// (whitespace, comments) or was swallowed by an error.
func (s *Scanner) scanToken() (token.Token, bool) {
	c := s.advance()
	switch c {
	case '(':
		return s.makeToken(token.LeftParen), true
	case ')':
		return s.makeToken(token.RightParen), true
	case '{':
		return s.makeToken(token.LeftBrace), true
	case '}':
		return s.makeToken(token.RightBrace), true
	case ',':
		return s.makeToken(token.Comma), true
	case '.':
		return s.makeToken(token.Dot), true
	case '-':
		return s.makeToken(token.Minus), true
	case '+':
		return s.makeToken(token.Plus), true
	case ';':
		return s.makeToken(token.Semicolon), true
	case '*':
		return s.makeToken(token.Star), true
	case '!':
		if s.match('=') {
			return s.makeToken(token.BangEqual), true
		}
		return s.makeToken(token.Bang), true
	case '=':
		if s.match('=') {
			return s.makeToken(token.EqualEqual), true
		}
		return s.makeToken(token.Equal), true
	case '<':
		if s.match('=') {
			return s.makeToken(token.LessEqual), true
		}
		return s.makeToken(token.Less), true
	case '>':
		if s.match('=') {
			return s.makeToken(token.GreaterEqual), true
		}
		return s.makeToken(token.Greater), true
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
			return token.Token{}, false
		}
		return s.makeToken(token.Slash), true
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		s.line++
		return token.Token{}, false
	case '"':
		return s.scanString()
	default:
		if isDigit(c) {
			return s.scanNumber(), true
		}
		if isAlpha(c) {
			return s.scanIdentifier(), true
		}
		s.errorf("Unexpected character.")
		return token.Token{}, false
	}
}

func (s *Scanner) scanString() (token.Token, bool) {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.errorf("Unterminated string.")
		return token.Token{}, false
	}
	s.advance() // the closing quote
	value := s.src[s.start+1 : s.current-1]
	return token.NewLiteral(token.String, s.src[s.start:s.current], value, s.line), true
}

func (s *Scanner) scanNumber() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := s.src[s.start:s.current]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.NewLiteral(token.Number, lexeme, value, s.line)
}

func (s *Scanner) scanIdentifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := s.src[s.start:s.current]
	typ, isKeyword := token.Keywords[lexeme]
	if !isKeyword {
		typ = token.Identifier
	}
	return s.makeToken(typ)
}

func (s *Scanner) makeToken(typ token.Type) token.Token {
	return token.New(typ, s.src[s.start:s.current], s.line)
}

func (s *Scanner) errorf(message string) {
	s.errors = append(s.errors, Error{Line: s.line, Message: message})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.src)
}

// advance consumes and returns the current byte.
func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

// match consumes the current byte only if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// peek returns the current byte without consuming it.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.current]
}

// peekNext returns the byte after the current one, for the
// fractional-digit lookahead in scanNumber.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c can start or continue an identifier.
// Restricted to ASCII letters and underscore.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
