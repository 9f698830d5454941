package loxlang

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"
)

// Scanner converts source text into tokens in a single pass. Errors
// never abort the scan: a diagnostic goes to ErrorWriter, the failure
// flag is set, and scanning resumes at the next character.
type Scanner struct {
	// ErrorWriter receives diagnostics, one line each, in the form
	// [line N] Error: <message>
	ErrorWriter io.Writer

	source   string
	tokens   []Token
	start    int
	current  int
	line     int
	hadError bool
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		ErrorWriter: os.Stderr,
		source:      source,
		line:        1,
	}
}

// ScanTokens scans the whole source. The returned sequence always ends
// with a single EOF token. ok is false if any lexical error occurred;
// the tokens recognized before and after each error are still returned.
func (s *Scanner) ScanTokens() ([]Token, bool) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{
		Kind: TokenEOF,
		Line: s.line,
	})
	return s.tokens, !s.hadError
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {

	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '{':
		s.addToken(TokenLeftBrace)
	case '}':
		s.addToken(TokenRightBrace)
	case ',':
		s.addToken(TokenComma)
	case '.':
		s.addToken(TokenDot)
	case '-':
		s.addToken(TokenMinus)
	case '+':
		s.addToken(TokenPlus)
	case ';':
		s.addToken(TokenSemicolon)
	case '*':
		s.addToken(TokenStar)

	case '!':
		if s.advanceIf('=') {
			s.addToken(TokenBangEqual)
		} else {
			s.addToken(TokenBang)
		}
	case '=':
		if s.advanceIf('=') {
			s.addToken(TokenEqualEqual)
		} else {
			s.addToken(TokenEqual)
		}
	case '<':
		if s.advanceIf('=') {
			s.addToken(TokenLessEqual)
		} else {
			s.addToken(TokenLess)
		}
	case '>':
		if s.advanceIf('=') {
			s.addToken(TokenGreaterEqual)
		} else {
			s.addToken(TokenGreater)
		}

	case '/':
		if s.advanceIf('/') {
			// comment runs to end of line, no token
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else {
			s.addToken(TokenSlash)
		}

	case ' ', '\r', '\t':

	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.reportError(fmt.Sprintf("Unexpected character: %c", c))
		}
	}
}

func (s *Scanner) scanString() {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reportError("Unterminated string.")
		return
	}

	// closing quote
	s.advance()

	// literal excludes the quotes; no escape processing
	s.addTokenLiteral(TokenString, s.source[s.start+1:s.current-1])
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// a fractional part needs a digit after the dot, otherwise the dot
	// belongs to the next token
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// the lexeme is digits and at most one dot, so the only possible
	// failure is range overflow, which yields ±Inf
	value, _ := strconv.ParseFloat(s.lexeme(), 64)
	s.addTokenLiteral(TokenNumber, value)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	if kind, ok := keywords()[s.lexeme()]; ok {
		s.addToken(kind)
		return
	}
	s.addToken(TokenIdentifier)
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// advance assumes not at end
func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	return r
}

func (s *Scanner) advanceIf(want rune) bool {
	if s.isAtEnd() || s.peek() != want {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+size >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+size:])
	return r
}

func (s *Scanner) lexeme() string {
	return s.source[s.start:s.current]
}

func (s *Scanner) addToken(kind TokenKind) {
	s.addTokenLiteral(kind, nil)
}

func (s *Scanner) addTokenLiteral(kind TokenKind, literal any) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  s.lexeme(),
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) reportError(message string) {
	s.hadError = true
	fmt.Fprintf(s.ErrorWriter, "[line %d] Error: %s\n", s.line, message)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
