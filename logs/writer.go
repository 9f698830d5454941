package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output. Tests fork it to a buffer.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
