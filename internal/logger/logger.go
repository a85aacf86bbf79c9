package logger

import (
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Init configures the default logger. Text at debug level in development,
// JSON at info level otherwise. When logPath is set, all records are also
// written there as JSON. Returns a cleanup function that closes the log file.
func Init(debug bool, logPath string) (func(), error) {
	var level slog.Level
	var handler slog.Handler

	if debug {
		level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	cleanup := func() {}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		handler = slogmulti.Fanout(
			handler,
			slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}),
		)
	}

	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}
