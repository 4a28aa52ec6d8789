package logger

import (
	"io"
	"log"
	"os"
)

// Log flags
const (
	LstdFlags     = log.LstdFlags
	Lmicroseconds = log.Lmicroseconds
)

// Logger wraps the standard log.Logger with a verbose switch
type Logger struct {
	*log.Logger
	verbose bool
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Logger: log.New(os.Stdout, "", log.LstdFlags),
	}
}

// NewWriter creates a new logger that writes to the provided writer
func NewWriter(w io.Writer) *Logger {
	return &Logger{
		Logger: log.New(w, "", log.LstdFlags),
	}
}

// Discard creates a logger that drops everything
func Discard() *Logger {
	return NewWriter(io.Discard)
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// SetFlags sets the output flags for the logger
func (l *Logger) SetFlags(flag int) {
	l.Logger.SetFlags(flag)
}

// SetVerbose enables Debugf output
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

// Verbose reports whether Debugf output is enabled
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Debugf logs only in verbose mode
func (l *Logger) Debugf(format string, v ...any) {
	if !l.verbose {
		return
	}
	l.Logger.Printf(format, v...)
}
