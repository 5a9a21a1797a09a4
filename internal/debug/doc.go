// Package debug provides optional file-based debug logging.
//
// When a log path is given (the --log flag or the SHOWCASE_DEBUG
// environment variable), messages are appended to that file through a
// size-rotated writer. Otherwise the logger discards everything, so the
// alternate screen is never disturbed by log output.
package debug
