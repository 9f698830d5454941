package loxlang

// TokenStream is a cursor over scanned tokens for a parser to consume.
type TokenStream interface {
	Current() Token
	Consume()
}

// SliceTokenStream streams a scanned token slice.
type SliceTokenStream struct {
	tokens []Token
	idx    int
}

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

// Current returns the token under the cursor. Past the last token it
// keeps returning an EOF token.
func (s *SliceTokenStream) Current() Token {
	if s.idx >= len(s.tokens) {
		return Token{Kind: TokenEOF}
	}
	return s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
