/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the settings of the commercial paper client from a
// YAML or JSON document. Every key may be overridden from the environment:
// client.channel is read from CPAPER_CLIENT_CHANNEL.
package config

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hyperledger/fabric-cp-go/pkg/common/logging"
	"github.com/hyperledger/fabric-cp-go/pkg/core/config/lookup"
	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/zaplog"
)

const (
	cmdRoot = "CPAPER"

	defaultTimeout = 10 * time.Second
)

// keys of the configuration document
const (
	ChaincodeIDKey       = "client.chaincodeID"
	ChannelKey           = "client.channel"
	ConnectionProfileKey = "client.connectionProfile"
	WalletPathKey        = "client.walletPath"
	TimeoutKey           = "client.timeout"
	CommitRequiredKey    = "client.commitRequired"
	LogLevelKey          = "logging.level"
	LogFormatKey         = "logging.format"
)

var defaults = map[string]interface{}{
	ChaincodeIDKey:       "",
	ChannelKey:           "",
	ConnectionProfileKey: "",
	WalletPathKey:        "",
	TimeoutKey:           defaultTimeout.String(),
	CommitRequiredKey:    false,
	LogLevelKey:          "info",
	LogFormatKey:         zaplog.LogfmtFormat,
}

// Config is the loaded client configuration
type Config struct {
	Client  ClientConfig
	Logging LoggingConfig
}

// ClientConfig locates the chaincode and the network it is deployed on
type ClientConfig struct {
	ChaincodeID string
	Channel     string
	// ConnectionProfile is the path of the network connection profile
	ConnectionProfile string
	// WalletPath is the directory of the file system wallet holding the members
	WalletPath     string
	Timeout        time.Duration
	CommitRequired bool
}

// LoggingConfig configures the logger provider
type LoggingConfig struct {
	Level  string
	Format string
}

type options struct {
	envPrefix string
}

// Option configures the package.
type Option func(opts *options) error

// WithEnvPrefix defines the prefix for environment variable overrides.
// See viper SetEnvPrefix for more information.
func WithEnvPrefix(prefix string) Option {
	return func(opts *options) error {
		if prefix == "" {
			return errors.New("environment prefix is required")
		}
		opts.envPrefix = prefix
		return nil
	}
}

// FromFile reads from named config file
func FromFile(name string, opts ...Option) (*Config, error) {
	if name == "" {
		return nil, errors.New("filename is required")
	}

	backend, err := newBackend(opts...)
	if err != nil {
		return nil, err
	}

	backend.configViper.SetConfigFile(name)

	// If a config file is found, read it in.
	err = backend.configViper.MergeInConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "loading config file failed: %s", name)
	}

	return load(backend)
}

// FromReader loads configuration from in.
// configType can be "json" or "yaml".
func FromReader(in io.Reader, configType string, opts ...Option) (*Config, error) {
	if configType == "" {
		return nil, errors.New("empty config type")
	}

	backend, err := newBackend(opts...)
	if err != nil {
		return nil, err
	}

	// read config from bytes array, but must set ConfigType
	// for viper to properly unmarshal the bytes array
	backend.configViper.SetConfigType(configType)
	err = backend.configViper.MergeConfig(in)
	if err != nil {
		return nil, errors.Wrap(err, "loading config failed")
	}

	return load(backend)
}

// FromRaw will initialize the configs from a byte array
func FromRaw(configBytes []byte, configType string, opts ...Option) (*Config, error) {
	return FromReader(bytes.NewBuffer(configBytes), configType, opts...)
}

// FromEnv builds the configuration from the defaults and environment overrides only
func FromEnv(opts ...Option) (*Config, error) {
	backend, err := newBackend(opts...)
	if err != nil {
		return nil, err
	}
	return load(backend)
}

// Validate returns an error naming the first missing or malformed setting
func (c *Config) Validate() error {
	required := []struct {
		key, value string
	}{
		{ChaincodeIDKey, c.Client.ChaincodeID},
		{ChannelKey, c.Client.Channel},
		{ConnectionProfileKey, c.Client.ConnectionProfile},
		{WalletPathKey, c.Client.WalletPath},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Errorf("%s is required", r.key)
		}
	}

	if c.Client.Timeout < 0 {
		return errors.Errorf("%s must not be negative", TimeoutKey)
	}

	if _, err := logging.LogLevel(c.Logging.Level); err != nil {
		return errors.WithMessage(err, LogLevelKey)
	}

	switch c.Logging.Format {
	case zaplog.LogfmtFormat, zaplog.JSONFormat, zaplog.ConsoleFormat:
	default:
		return errors.Errorf("%s: unsupported format %s", LogFormatKey, c.Logging.Format)
	}

	return nil
}

func load(backend *defConfigBackend) (*Config, error) {
	l := lookup.New(backend)

	c := &Config{}
	if err := l.UnmarshalKey("client", &c.Client); err != nil {
		return nil, errors.Wrap(err, "failed to decode client settings")
	}

	c.Logging = LoggingConfig{
		Level:  l.GetLowerString(LogLevelKey),
		Format: l.GetLowerString(LogFormatKey),
	}

	return c, nil
}

func newBackend(opts ...Option) (*defConfigBackend, error) {
	o := options{
		envPrefix: cmdRoot,
	}

	for _, option := range opts {
		err := option(&o)
		if err != nil {
			return nil, errors.WithMessage(err, "Error in options passed to create new config backend")
		}
	}

	//default backend for config
	backend := &defConfigBackend{
		configViper: newViper(o.envPrefix),
		opts:        o,
	}
	backend.setDefaults()

	return backend, nil
}

func newViper(cmdRootPrefix string) *viper.Viper {
	myViper := viper.New()
	myViper.SetEnvPrefix(cmdRootPrefix)
	myViper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	myViper.SetEnvKeyReplacer(replacer)
	return myViper
}
