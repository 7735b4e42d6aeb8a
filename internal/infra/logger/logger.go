package logger

import (
	"io"
	"log/slog"
	"os"
)

// New JSON-логгер в stdout; для env=dev уровень Debug.
func New(env string) *slog.Logger {
	return NewTo(os.Stdout, env)
}

func NewTo(w io.Writer, env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Named дочерний логгер компонента.
func Named(base *slog.Logger, component string) *slog.Logger {
	if base == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return base.With("component", component)
}
