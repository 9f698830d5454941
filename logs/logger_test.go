package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestLevel(t *testing.T) {
	restore := level.Level()
	level.Set(slog.LevelInfo)
	defer level.Set(restore)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("hidden")
		if strings.Contains(buf.String(), "hidden") {
			t.Fatal("debug record emitted at info level")
		}
		level.Set(slog.LevelDebug)
		logger.Debug("shown")
		if !strings.Contains(buf.String(), "shown") {
			t.Fatal("debug record suppressed at debug level")
		}
	})
}
