package logs

// Span identifies one logical operation across its log records.
type Span string

type spanKeyType struct{}

// SpanKey is the context key holding the current Span.
var SpanKey spanKeyType
