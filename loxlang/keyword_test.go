package loxlang

import (
	"testing"
)

func TestIsKeyword(t *testing.T) {
	for _, name := range []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	} {
		if !IsKeyword(name) {
			t.Fatalf("%s should be a keyword", name)
		}
	}
	for _, name := range []string{
		"", "And", "WHILE", "android", "nills", "foo", "_var",
	} {
		if IsKeyword(name) {
			t.Fatalf("%s should not be a keyword", name)
		}
	}
}

func TestKeywordKinds(t *testing.T) {
	wantKinds := map[string]TokenKind{
		"and":    TokenAnd,
		"class":  TokenClass,
		"else":   TokenElse,
		"false":  TokenFalse,
		"for":    TokenFor,
		"fun":    TokenFun,
		"if":     TokenIf,
		"nil":    TokenNil,
		"or":     TokenOr,
		"print":  TokenPrint,
		"return": TokenReturn,
		"super":  TokenSuper,
		"this":   TokenThis,
		"true":   TokenTrue,
		"var":    TokenVar,
		"while":  TokenWhile,
	}

	for name, want := range wantKinds {
		scanner := NewScanner(name)
		tokens, ok := scanner.ScanTokens()
		if !ok {
			t.Fatalf("%s: scan failed", name)
		}
		if len(tokens) != 2 {
			t.Fatalf("%s: got %v", name, tokens)
		}
		if tokens[0].Kind != want {
			t.Fatalf("%s: expected %v, got %v", name, want, tokens[0].Kind)
		}
		if tokens[0].Lexeme != name {
			t.Fatalf("%s: got lexeme %q", name, tokens[0].Lexeme)
		}
		if tokens[0].Literal != nil {
			t.Fatalf("%s: keywords carry no literal", name)
		}
	}
}
