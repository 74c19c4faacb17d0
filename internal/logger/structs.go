package logger

import (
	"os"
	"path"

	"gopkg.in/natefinch/lumberjack.v2"
)

const logDirPerm = 0o750

// Console configures logging to stdout and stderr.
type Console struct {
	Enabled bool
	// UseConsoleWriter prints human readable lines instead of json.
	UseConsoleWriter bool
}

// RollingFile is one size and age rotated log file.
type RollingFile struct {
	Name       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Writer returns the lumberjack writer of the file below dir.
func (r RollingFile) Writer(dir string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path.Join(dir, r.Name),
		MaxSize:    r.MaxSize,
		MaxAge:     r.MaxAge,
		MaxBackups: r.MaxBackups,
	}
}

// LogFile configures file based logging, one file per stream.
type LogFile struct {
	Enabled bool
	Path    string

	Access RollingFile
	Error  RollingFile
	Info   RollingFile
	Trace  RollingFile
	Warn   RollingFile
}

// MkDir creates the log directory.
func (f LogFile) MkDir() error {
	if f.Path == "" {
		return nil
	}

	return os.MkdirAll(f.Path, logDirPerm) //nolint:wrapcheck
}

// Log is the logging section of the config.
type Log struct {
	LogLevel string // trace, debug, info, warn or error
	LogEnv   string

	// EnableAccessLogToConsole writes the http access log to stdout.
	// Needs Console.Enabled as well.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log health check calls

	AppName     string
	ServiceName string

	Console Console
	File    LogFile
}
