package loxlang

import (
	"reflect"
	"testing"
)

func TestSliceTokenStream(t *testing.T) {
	scanner := NewScanner("var x = 1;")
	tokens, ok := scanner.ScanTokens()
	if !ok {
		t.Fatal("scan failed")
	}

	var stream TokenStream = NewSliceTokenStream(tokens)
	var kinds []TokenKind
	for stream.Current().Kind != TokenEOF {
		kinds = append(kinds, stream.Current().Kind)
		stream.Consume()
	}
	expected := []TokenKind{
		TokenVar,
		TokenIdentifier,
		TokenEqual,
		TokenNumber,
		TokenSemicolon,
	}
	if !reflect.DeepEqual(kinds, expected) {
		t.Fatalf("got %v", kinds)
	}

	// consuming past the end keeps yielding EOF
	stream.Consume()
	stream.Consume()
	if got := stream.Current(); got.Kind != TokenEOF {
		t.Fatalf("got %v", got)
	}
}

func TestSliceTokenStreamEmpty(t *testing.T) {
	stream := NewSliceTokenStream(nil)
	if got := stream.Current(); got.Kind != TokenEOF {
		t.Fatalf("got %v", got)
	}
	stream.Consume()
	if got := stream.Current(); got.Kind != TokenEOF {
		t.Fatalf("got %v", got)
	}
}
