package loxlang

import (
	"io"
	"os"
)

// ErrorWriter receives scan diagnostics. Tests fork it to a buffer.
type ErrorWriter io.Writer

func (Module) ErrorWriter() ErrorWriter {
	return os.Stderr
}
