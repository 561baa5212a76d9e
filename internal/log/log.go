// Package log provides the logging backend for textsign, built on go-logging.
//
// Log output never goes to stdout: stdout carries signatures, ciphertexts and
// plaintexts, so records are written to stderr or to a file.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/op/go-logging.v1"
)

const logFileMode = 0600

var recordFormat = logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{module}: %{message}")

var levels = map[string]logging.Level{
	"ERROR":   logging.ERROR,
	"WARNING": logging.WARNING,
	"NOTICE":  logging.NOTICE,
	"INFO":    logging.INFO,
	"DEBUG":   logging.DEBUG,
}

// Backend is a leveled go-logging backend bound to a single output. Records
// below the configured level are dropped for every module.
type Backend struct {
	logging.LeveledBackend

	// closer is the log file, nil when writing to the console.
	closer io.Closer
}

// New returns a backend writing to os.Stderr, or to file when it is not
// empty.
func New(file string, level string, disable bool) (*Backend, error) {
	return NewWithWriter(os.Stderr, file, level, disable)
}

// NewWithWriter is New with the console writer supplied by the caller. A
// disabled backend discards everything; a file is opened for appending with
// mode 0600.
func NewWithWriter(console io.Writer, file string, level string, disable bool) (*Backend, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	b := new(Backend)
	out := console
	switch {
	case disable:
		out = io.Discard
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFileMode)
		if err != nil {
			return nil, fmt.Errorf("log: open %s: %w", file, err)
		}
		out = f
		b.closer = f
	}

	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(out, "", 0), recordFormat))
	leveled.SetLevel(lvl, "")
	b.LeveledBackend = leveled
	return b, nil
}

// GetLogger returns a logger for module that writes to b.
func (b *Backend) GetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	l.SetBackend(b)
	return l
}

// Close releases the log file, if one was opened. It is safe to call more
// than once.
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	err := b.closer.Close()
	b.closer = nil
	return err
}

// Discard returns a logger for module whose records are dropped.
func Discard(module string) *logging.Logger {
	b, _ := NewWithWriter(io.Discard, "", "ERROR", true)
	return b.GetLogger(module)
}

// ValidLevel reports whether l names a supported log level.
func ValidLevel(l string) bool {
	_, err := parseLevel(l)
	return err == nil
}

func parseLevel(l string) (logging.Level, error) {
	if lvl, ok := levels[strings.ToUpper(l)]; ok {
		return lvl, nil
	}
	return logging.CRITICAL, fmt.Errorf("log: invalid level: '%v'", l)
}
