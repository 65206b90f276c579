// Package logging wraps github.com/datatrails/go-datatrails-common/logger
// for the I/O-boundary packages (fixture, determinism): registry
// construction and verification report logging. The C1-C5 core never
// logs — logger.Logger is injected only where this module actually
// touches the filesystem or assembles a user-facing report.
package logging

import "github.com/datatrails/go-datatrails-common/logger"

// New initializes the package-level logger at the given level ("NOOP",
// "DEBUG", "INFO", ...) and returns a logger.Logger for injection.
func New(level string) logger.Logger {
	logger.New(level)
	return logger.Sugar
}

// Noop returns a logger that discards everything, for tests and library
// callers who have not configured logging.
func Noop() logger.Logger {
	logger.New("NOOP")
	return logger.Sugar
}
