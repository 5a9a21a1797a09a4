package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "SHOWCASE_DEBUG"

const (
	maxSizeMB  = 10
	maxBackups = 3
)

var (
	output io.Closer
	mu     sync.Mutex
)

var logger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init points the package logger at path with the given level name
// ("debug", "info", ...). An empty path falls back to $SHOWCASE_DEBUG; if
// that is empty too, logging stays disabled.
func Init(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return nil
	}

	lvl := logrus.DebugLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	closeLocked()
	logger = l
	output = w
	return nil
}

// Logger returns the package logger. It is never nil.
func Logger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// Close flushes and closes the log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if output != nil {
		err = output.Close()
		output = nil
	}
	logger = newDiscardLogger()
	return err
}
