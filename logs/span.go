package logs

// Span identifies one logical unit of work in log records. Handler
// stamps it on every record logged through a context carrying one.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
