package utils

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "duopong",
	})
}
