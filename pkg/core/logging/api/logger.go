/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package api

// Level defines all available log levels for log messages.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

//Logger - Standard logger interface
type Logger interface {
	Debug(args ...interface{})

	Debugf(format string, args ...interface{})

	Info(args ...interface{})

	Infof(format string, args ...interface{})

	Warn(args ...interface{})

	Warnf(format string, args ...interface{})

	Error(args ...interface{})

	Errorf(format string, args ...interface{})

	// With returns a logger that adds the given key/value pairs to every entry
	With(keysAndValues ...interface{}) Logger
}

// LoggerProvider is a factory for module loggers
type LoggerProvider interface {
	GetLogger(module string) Logger
}

// Leveler is implemented by logger providers that support per-module levels
type Leveler interface {
	SetLevel(module string, level Level)
	GetLevel(module string) Level
	IsEnabledFor(module string, level Level) bool
}

// LoggingType defines the level of logging in config
type LoggingType struct {
	Level  string
	Format string
}
