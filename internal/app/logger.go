package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits for the debug log file.
const (
	logMaxSizeMB  = 5
	logMaxBackups = 2
	logMaxAgeDays = 14
)

// newFileLogger creates a leveled logger writing to a rotating file under
// logDir. Logging to stderr would corrupt the TUI display, so everything
// goes to the file. The returned closer owns the underlying file.
func newFileLogger(logDir string, verbose bool) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, err
	}

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "gistwatch.log"),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	logger := log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	return logger, writer, nil
}
