package unittest

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var verbose = flag.Bool("vv", false, "print debug logs of the components under test")

// Logger returns a logger for tests. It discards all output unless the -vv
// flag is set, in which case debug logs go to stderr.
func Logger() zerolog.Logger {
	var writer io.Writer = io.Discard
	if *verbose {
		writer = os.Stderr
	}
	return LoggerWithWriter(writer)
}

// LoggerWithWriter returns a debug-level test logger with UTC timestamps, so
// captured output compares stable across machines.
func LoggerWithWriter(writer io.Writer) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
