package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the given logger for command line use.  Verbose
// turns on debug output.
func SetupLogger(logger *logrus.Logger, verbose bool) {
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	// Only log the info severity or above.
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// SetNullOutput sets the logger to send everything to /dev/null.
// useful when running unittests.
func SetNullOutput(logger *logrus.Logger) {
	logger.SetOutput(io.Discard)
}

// NullLogger returns a logger that discards everything.
func NullLogger() *logrus.Logger {
	l := logrus.New()
	SetNullOutput(l)
	return l
}
