package loxlang

import (
	"context"

	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
)

// Scan tokenizes source, writing diagnostics to the scope's
// ErrorWriter. In development mode a failed scan can suspend into a
// REPL holding the source and tokens, see loxconfigs.TapOnError.
type Scan func(source string) (tokens []Token, ok bool)

func (Module) Scan(
	errorWriter ErrorWriter,
	logger logs.Logger,
	newSpan logs.NewSpan,
	mode modes.Mode,
	tapOnError loxconfigs.TapOnError,
	tap debugs.Tap,
) Scan {
	return func(source string) ([]Token, bool) {
		ctx, _ := newSpan(context.Background(), "")

		scanner := NewScanner(source)
		scanner.ErrorWriter = errorWriter
		tokens, ok := scanner.ScanTokens()

		logger.DebugContext(ctx, "scan",
			"bytes", len(source),
			"tokens", len(tokens),
			"ok", ok,
		)

		if !ok && mode == modes.ModeDevelopment && bool(tapOnError) {
			tap(ctx, "scan error", map[string]any{
				"source": source,
				"tokens": tokens,
			})
		}

		return tokens, ok
	}
}
