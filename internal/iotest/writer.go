// Package iotest provides IO helpers for testing.
package iotest

import (
	"bytes"
	"io"
	"log"
	"testing"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that writes to the given testing.TB.
func Writer(t testing.TB) io.Writer {
	return &writer{t}
}

// Logger builds a log.Logger that writes to the given testing.TB.
func Logger(t testing.TB) *log.Logger {
	return log.New(Writer(t), "", 0)
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	b = bytes.TrimSuffix(b, _newline)
	w.t.Logf("%s", b)
	return len(b), nil
}
