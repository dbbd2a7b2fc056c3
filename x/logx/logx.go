// Package logx provides the levelled loggers used by services and tools.
// The level comes from LOG_LEVEL (DEBUG, INFO, WARNING, ERROR); output goes
// to stderr unless SetOutput redirects it, e.g. to a rotating file.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LevelDebug   = 10
	LevelInfo    = 20
	LevelWarning = 30
	LevelError   = 40
)

var (
	DEBUG   *log.Logger
	INFO    *log.Logger
	WARNING *log.Logger
	ERROR   *log.Logger

	level = LevelInfo
)

const flags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lmsgprefix | log.Lshortfile

func init() {
	DEBUG = log.New(os.Stderr, "DEBUG ", flags)
	INFO = log.New(os.Stderr, "INFO ", flags)
	WARNING = log.New(os.Stderr, "WARNING ", flags)
	ERROR = log.New(os.Stderr, "ERROR ", flags)
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if lv, ok := ParseLevel(s); ok {
			level = lv
		} else {
			WARNING.Printf("unrecognised LOG_LEVEL %q, keeping INFO", s)
		}
	}
}

// ParseLevel maps a level name to its value.
func ParseLevel(s string) (int, bool) {
	switch s {
	case "DEBUG", "debug":
		return LevelDebug, true
	case "INFO", "info":
		return LevelInfo, true
	case "WARNING", "warning", "WARN", "warn":
		return LevelWarning, true
	case "ERROR", "error":
		return LevelError, true
	}
	return 0, false
}

// SetLevel changes the minimum level that Debugf..Errorf emit.
func SetLevel(lv int) { level = lv }

// Level returns the current minimum level.
func Level() int { return level }

// SetOutput points every logger at w.
func SetOutput(w io.Writer) {
	for _, l := range []*log.Logger{DEBUG, INFO, WARNING, ERROR} {
		l.SetOutput(w)
	}
}

// RotatingFile returns a size-rotated, compressed log file writer.
func RotatingFile(path string, maxSizeMB, maxBackups int) io.Writer {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxBackups <= 0 {
		maxBackups = 4
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     180, // days
		Compress:   true,
	}
}

func Debugf(format string, args ...any) {
	if level <= LevelDebug {
		DEBUG.Output(2, fmt.Sprintf(format, args...))
	}
}

func Infof(format string, args ...any) {
	if level <= LevelInfo {
		INFO.Output(2, fmt.Sprintf(format, args...))
	}
}

func Warnf(format string, args ...any) {
	if level <= LevelWarning {
		WARNING.Output(2, fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if level <= LevelError {
		ERROR.Output(2, fmt.Sprintf(format, args...))
	}
}
