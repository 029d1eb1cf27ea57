package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// DocumentFetched logs a successful document acquisition
func (l *Logger) DocumentFetched(origin, requestID string, bytes int) {
	l.Info("document fetched",
		"origin", origin,
		"request_id", requestID,
		"bytes", bytes)
}

// FetchFallback logs a failed fetch that fell back to the local file
func (l *Logger) FetchFallback(url, fallback string, err error) {
	l.Warn("fetch failed, using fallback",
		"url", url,
		"fallback", fallback,
		"error", err)
}

// FetchFailed logs a document acquisition that exhausted every source
func (l *Logger) FetchFailed(requestID string, err error) {
	l.Error("document unavailable",
		"request_id", requestID,
		"error", err)
}

// ParseCompleted logs the result of a full reparse
func (l *Logger) ParseCompleted(entries, rows, networks, categories int) {
	l.Info("parse completed",
		"entries", entries,
		"rows", rows,
		"networks", networks,
		"categories", categories)
}

// CheckCompleted logs the outcome of one monitor check
func (l *Logger) CheckCompleted(added, removed int, duration time.Duration) {
	l.Info("check completed",
		"added", added,
		"removed", removed,
		"duration", duration.Round(time.Millisecond))
}

// MonitorStarted logs monitor startup
func (l *Logger) MonitorStarted(documentURL string, interval time.Duration) {
	l.Info("monitor started",
		"document_url", documentURL,
		"interval", interval)
}

// MonitorStopped logs monitor shutdown
func (l *Logger) MonitorStopped(reason string) {
	l.Info("monitor stopped", "reason", reason)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(documentURL, fallbackFile string, interval time.Duration) {
	l.Debug("config loaded",
		"document_url", documentURL,
		"fallback_file", fallbackFile,
		"interval", interval)
}
