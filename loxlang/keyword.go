package loxlang

import "sync"

// reserved words, exact case-sensitive match
var keywords = sync.OnceValue(func() map[string]TokenKind {
	return map[string]TokenKind{
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
})

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	_, ok := keywords()[name]
	return ok
}
