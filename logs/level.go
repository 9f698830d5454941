package logs

import (
	"log/slog"
	"os"
)

var level = new(slog.LevelVar)

func init() {
	if v := os.Getenv("LOX_LOG"); v != "" {
		// unrecognized values keep the default level
		_ = level.UnmarshalText([]byte(v))
	}
}
