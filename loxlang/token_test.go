package loxlang

import (
	"strings"
	"testing"
)

func TestTokenString(t *testing.T) {
	type testCase struct {
		token Token
		want  string
	}

	tests := []testCase{
		{
			token: Token{Kind: TokenEOF, Lexeme: "", Line: 1},
			want:  `EOF "" none`,
		},
		{
			token: Token{Kind: TokenLeftParen, Lexeme: "(", Line: 1},
			want:  `LeftParen "(" none`,
		},
		{
			token: Token{Kind: TokenString, Lexeme: `"foo"`, Literal: "foo", Line: 1},
			want:  `String "\"foo\"" foo`,
		},
		{
			token: Token{Kind: TokenNumber, Lexeme: "1.5", Literal: 1.5, Line: 1},
			want:  `Number "1.5" 1.5`,
		},
		{
			token: Token{Kind: TokenNumber, Lexeme: "42", Literal: float64(42), Line: 1},
			want:  `Number "42" 42`,
		},
	}

	for _, test := range tests {
		if got := test.token.String(); got != test.want {
			t.Fatalf("expected %q, got %q", test.want, got)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	// every kind has a name
	for kind := TokenLeftParen; kind <= TokenEOF; kind++ {
		name := kind.String()
		if name == "" || strings.HasPrefix(name, "TokenKind(") {
			t.Fatalf("kind %d has no name", kind)
		}
	}
	if name := TokenKind(200).String(); name != "TokenKind(200)" {
		t.Fatalf("got %q", name)
	}
}
