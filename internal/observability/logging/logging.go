// Package logging builds the process-wide *slog.Logger. Records are rendered
// by charmbracelet/log as text, logfmt or JSON lines.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type Options struct {
	Level      string
	Format     string // text | logfmt | json
	Timestamps bool
}

func New(w io.Writer, opts Options) *slog.Logger {
	h := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.Timestamps,
		TimeFormat:      time.RFC3339Nano,
	})
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, Options{Level: "error"})
}

func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Err returns attributes describing err and every error it wraps, outermost
// first.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Group("error",
		slog.String("message", err.Error()),
		slog.Any("causes", Causes(err)),
	)
}

// Causes walks the wrap chain below err. Joined errors contribute each branch.
func Causes(err error) []string {
	var out []string
	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				out = append(out, inner.Error())
				walk(inner)
			}
		default:
			if inner := errors.Unwrap(e); inner != nil {
				out = append(out, inner.Error())
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}
