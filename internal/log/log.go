package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	WarningLog *log.Logger
	InfoLog    *log.Logger
	ErrorLog   *log.Logger

	logFile io.WriteCloser
)

// LogConfig holds logging configuration
type LogConfig struct {
	Enabled    bool
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultLogConfig returns the default logging configuration
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Enabled:    true,
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 30,
		Compress:   true,
	}
}

const logFileName = "tasks.log"

func init() {
	// Loggers are usable before Initialize (tests, early CLI errors). The TUI owns
	// stdout, so nothing is written anywhere until a file is configured.
	setWriter(io.Discard)
}

func setWriter(w io.Writer) {
	InfoLog = log.New(w, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(w, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(w, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogDir returns the directory where logs should be stored.
func LogDir(cfg LogConfig) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tasks", "logs"), nil
}

// LogFilePath returns the full path to the log file.
func LogFilePath(cfg LogConfig) (string, error) {
	dir, err := LogDir(cfg)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// Initialize points the loggers at a rotated log file. Call Close when done.
func Initialize(cfg LogConfig) error {
	if !cfg.Enabled {
		setWriter(io.Discard)
		return nil
	}
	path, err := LogFilePath(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
	logFile = w
	setWriter(w)
	return nil
}

func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	setWriter(io.Discard)
}
