// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

const defaultLogDir = "./logs"

// logDir resolves the directory log files go to. LOG_DIR overrides the
// default for deployments that mount a dedicated volume.
func logDir() string {
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		return dir
	}
	return defaultLogDir
}

// ------------------- logger initialization -------------------

// InitLogger creates or reinitializes the logging system. It ensures the
// log directory exists, opens a timestamped file in it, and points the
// four level loggers at both that file and stdout.
func InitLogger() error {
	dir := logDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	name := filepath.Join(dir, time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		return err
	}

	out := io.MultiWriter(os.Stdout, file)
	flags := log.Ldate | log.Ltime | log.Lshortfile

	Info = log.New(out, "INFO: ", flags)
	Warn = log.New(out, "WARN: ", flags)
	Error = log.New(out, "ERROR: ", flags)
	Debug = log.New(out, "DEBUG: ", flags)
	return nil
}

// SetLogLevel adjusts the Debug logger's output depending on environment.
// In production debug output is discarded entirely; everywhere else it stays on.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
	}
}

// init attempts to initialize the logger at package load time. If that fails,
// fall back to the standard library logger to report it, because our own
// loggers are not ready.
func init() {
	if err := InitLogger(); err != nil {
		log.Fatalf("Failed to initialise custom logger: %v", err)
	}
}
