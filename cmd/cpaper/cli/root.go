/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the cpaper command line tool
package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hyperledger/fabric-cp-go/pkg/client/cpaper"
	"github.com/hyperledger/fabric-cp-go/pkg/common/logging"
	"github.com/hyperledger/fabric-cp-go/pkg/common/providers/chain"
	"github.com/hyperledger/fabric-cp-go/pkg/core/config"
	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/zaplog"
	"github.com/hyperledger/fabric-cp-go/pkg/fab/gwchain"
)

// CmdRoot is the prefix of the environment overrides
const CmdRoot = "CPAPER"

var logger = logging.NewLogger("cpaper/cli")

// ProviderFactory opens the chain provider described by the configuration.
// The returned release function is called once the command is done.
type ProviderFactory func(cfg *config.Config) (chain.Provider, func(), error)

// GatewayProvider opens a gwchain provider
func GatewayProvider(cfg *config.Config) (chain.Provider, func(), error) {
	p, err := gwchain.New(gwchain.Config{
		ConnectionProfile: cfg.Client.ConnectionProfile,
		WalletPath:        cfg.Client.WalletPath,
		Channel:           cfg.Client.Channel,
	})
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

type globalFlags struct {
	configFile string
	logLevel   string
	logFormat  string
}

// session carries what every sub command needs
type session struct {
	flags       globalFlags
	out         io.Writer
	newProvider ProviderFactory

	cfg     *config.Config
	client  *cpaper.Client
	release func()
}

// NewCmd returns the root command writing results to out
func NewCmd(out io.Writer, newProvider ProviderFactory) *cobra.Command {
	s := &session{out: out, newProvider: newProvider}

	cmd := &cobra.Command{
		Use:          "cpaper",
		Short:        "Trade commercial paper on a Fabric network.",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&s.flags.configFile, "config", "c", "", "Specifies the config file to load the configuration from")
	flags.StringVar(&s.flags.logLevel, "log-level", "", "Overrides the configured log level (debug, info, warning, error, critical)")
	flags.StringVar(&s.flags.logFormat, "log-format", "", "Overrides the configured log format (logfmt, json, console)")

	cmd.AddCommand(
		newCreateCompanyCmd(s),
		newCreatePaperCmd(s),
		newGetPapersCmd(s),
		newGetPaperCmd(s),
		newGetCompanyCmd(s),
		newTransferPaperCmd(s),
	)

	return cmd
}

// Execute runs the tool against the gateway and exits non-zero on failure
func Execute() {
	// On failure Cobra prints the error string, so we only
	// need to exit with a non-0 status
	if NewCmd(os.Stdout, GatewayProvider).Execute() != nil {
		os.Exit(1)
	}
}

// connect loads the configuration, initializes logging and creates the client
func (s *session) connect() error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}

	if s.flags.logLevel != "" {
		cfg.Logging.Level = s.flags.logLevel
	}
	if s.flags.logFormat != "" {
		cfg.Logging.Format = s.flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return errors.WithMessage(err, "invalid configuration")
	}

	if err := initLogging(cfg.Logging); err != nil {
		return err
	}

	provider, release, err := s.newProvider(cfg)
	if err != nil {
		return errors.WithMessage(err, "failed to open chain provider")
	}
	s.release = release

	opts := []cpaper.ClientOption{cpaper.WithTimeout(cfg.Client.Timeout)}
	if cfg.Client.CommitRequired {
		opts = append(opts, cpaper.WithCommitRequired())
	}

	client, err := cpaper.New(provider, cfg.Client.ChaincodeID, opts...)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.client = client
	return nil
}

// run connects, calls fn with the client and releases the provider
func (s *session) run(fn func(client *cpaper.Client) error) error {
	defer s.close()
	if err := s.connect(); err != nil {
		return err
	}
	return fn(s.client)
}

func (s *session) loadConfig() (*config.Config, error) {
	if s.flags.configFile == "" {
		return config.FromEnv(config.WithEnvPrefix(CmdRoot))
	}
	return config.FromFile(s.flags.configFile, config.WithEnvPrefix(CmdRoot))
}

func (s *session) close() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}

func initLogging(c config.LoggingConfig) error {
	provider, err := zaplog.New(zaplog.Config{Format: c.Format, Level: c.Level})
	if err != nil {
		return errors.WithMessage(err, "failed to initialize logging")
	}
	logging.Initialize(provider)

	// the provider may have been initialized before
	level, err := logging.LogLevel(c.Level)
	if err != nil {
		return err
	}
	logging.SetLevel("", level)
	return nil
}
