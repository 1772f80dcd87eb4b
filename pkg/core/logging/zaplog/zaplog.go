/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package zaplog provides the default logger provider, backed by zap.
// Entries are encoded as logfmt unless the JSON or console format is requested,
// and every module logger is named after its module so that entries carry it.
package zaplog

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/metadata"
)

// Supported output formats
const (
	LogfmtFormat  = "logfmt"
	JSONFormat    = "json"
	ConsoleFormat = "console"
)

// Config holds the settings of the provider
type Config struct {
	// Format is one of logfmt (default), json or console
	Format string
	// Level is the default level of every module (default INFO)
	Level string
	// Writer receives encoded entries (default os.Stderr)
	Writer io.Writer
}

// Provider is a api.LoggerProvider and api.Leveler writing through a single zap core
type Provider struct {
	levels  metadata.ModuleLevels
	encoder zapcore.Encoder
	writer  zapcore.WriteSyncer
}

// New returns a new zap backed provider
func New(c Config) (*Provider, error) {
	encoder, err := newEncoder(c.Format)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		encoder: encoder,
		writer:  writeSyncer(c.Writer),
	}

	if c.Level != "" {
		level, err := metadata.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		p.levels.SetLevel("", level)
	}

	return p, nil
}

// GetLogger returns the logger of the given module
func (p *Provider) GetLogger(module string) api.Logger {
	enabler := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return p.levels.IsEnabledFor(module, fromZapLevel(l))
	})
	core := zapcore.NewCore(p.encoder, p.writer, enabler)
	return &logger{SugaredLogger: zap.New(core).Named(module).Sugar()}
}

// SetLevel sets the level of the given module; the empty module sets the default
func (p *Provider) SetLevel(module string, level api.Level) {
	p.levels.SetLevel(module, level)
}

// GetLevel returns the level of the given module
func (p *Provider) GetLevel(module string) api.Level {
	return p.levels.GetLevel(module)
}

// IsEnabledFor returns true if the given level is logged for the module
func (p *Provider) IsEnabledFor(module string, level api.Level) bool {
	return p.levels.IsEnabledFor(module, level)
}

// Sync flushes buffered entries
func (p *Provider) Sync() error {
	return p.writer.Sync()
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) With(keysAndValues ...interface{}) api.Logger {
	return &logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "module"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(format) {
	case "", LogfmtFormat:
		return zaplogfmt.NewEncoder(encoderConfig), nil
	case JSONFormat:
		return zapcore.NewJSONEncoder(encoderConfig), nil
	case ConsoleFormat:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	default:
		return nil, errors.Errorf("unsupported log format [%s]", format)
	}
}

func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	switch t := w.(type) {
	case nil:
		return zapcore.Lock(os.Stderr)
	case *os.File:
		return zapcore.Lock(t)
	case zapcore.WriteSyncer:
		return t
	default:
		return zapcore.Lock(zapcore.AddSync(w))
	}
}

func fromZapLevel(l zapcore.Level) api.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return api.DEBUG
	case l == zapcore.InfoLevel:
		return api.INFO
	case l == zapcore.WarnLevel:
		return api.WARNING
	case l == zapcore.ErrorLevel:
		return api.ERROR
	default:
		return api.CRITICAL
	}
}
