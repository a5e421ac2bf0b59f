package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger writing to w. LOG_LEVEL overrides level;
// the default is info.
func New(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	for _, v := range []string{level, os.Getenv("LOG_LEVEL")} {
		if v == "" {
			continue
		}
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(v)); err == nil {
			lvl = parsed
		}
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}
