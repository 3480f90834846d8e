package database

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pressly/goose/v3"
)

// gooseLogger routes goose output into slog.
type gooseLogger struct {
	log *slog.Logger
}

var _ goose.Logger = gooseLogger{}

func newGooseLogger(log *slog.Logger) goose.Logger {
	if log == nil {
		return goose.NopLogger()
	}
	return gooseLogger{log: log.With("component", "goose")}
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
