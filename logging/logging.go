package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
)

var debug atomic.Bool

// Setup points the standard logger at filename, creating its directory if
// needed. An empty filename discards log output. The returned cleanup closes
// the file.
func Setup(filename string, verbose bool) (cleanup func(), err error) {
	debug.Store(verbose)
	log.SetFlags(log.LstdFlags)

	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	dir := filepath.Dir(filename)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	return func() { f.Close() }, nil
}

// Debug reports whether debug output is on.
func Debug() bool {
	return debug.Load()
}

// Debugf logs only when debug output is on.
func Debugf(format string, v ...interface{}) {
	if debug.Load() {
		log.Printf(format, v...)
	}
}
