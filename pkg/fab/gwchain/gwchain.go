/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gwchain implements chain.Provider over the Fabric gateway.
//
// Members are the identities of a file system wallet. The gateway connection
// of a member is opened on first use and kept until Close.
package gwchain

import (
	"context"

	fabconfig "github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-cp-go/pkg/common/errors/retry"
	"github.com/hyperledger/fabric-cp-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-cp-go/pkg/common/logging"
	"github.com/hyperledger/fabric-cp-go/pkg/common/providers/chain"
	"github.com/hyperledger/fabric-cp-go/pkg/util/concurrent/lazycache"
)

var logger = logging.NewLogger("cpaper/gwchain")

// Config locates the network and the wallet
type Config struct {
	ConnectionProfile string
	WalletPath        string
	Channel           string
}

type identityStore interface {
	Exists(label string) bool
}

type contract interface {
	SubmitTransaction(name string, args ...string) ([]byte, error)
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}

// connection is a gateway connected on behalf of one member
type connection struct {
	contract func(chaincodeID string) contract
	close    func()
}

type connector func(enrollID string) (*connection, error)

// Provider resolves wallet identities to gateway members
type Provider struct {
	wallet    identityStore
	connect   connector
	retryOpts retry.Opts
	members   *lazycache.Cache
}

// Option configures the provider
type Option func(p *Provider)

// WithRetry sets the retry policy of gateway connections.
// Connections are retried with retry.DefaultOpts otherwise.
func WithRetry(opts retry.Opts) Option {
	return func(p *Provider) {
		p.retryOpts = opts
	}
}

// New opens the wallet at cfg.WalletPath. No network connection is made
// until a member is requested.
func New(cfg Config, opts ...Option) (*Provider, error) {
	if cfg.ConnectionProfile == "" || cfg.WalletPath == "" || cfg.Channel == "" {
		return nil, errors.New("connection profile, wallet path and channel are required")
	}

	wallet, err := gateway.NewFileSystemWallet(cfg.WalletPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open wallet %s", cfg.WalletPath)
	}

	return newProvider(wallet, gatewayConnector(cfg, wallet), opts...), nil
}

func newProvider(wallet identityStore, connect connector, opts ...Option) *Provider {
	p := &Provider{
		wallet:    wallet,
		connect:   connect,
		retryOpts: retry.DefaultOpts,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.members = lazycache.New("gateway_members", p.newMember)
	return p
}

func gatewayConnector(cfg Config, wallet *gateway.Wallet) connector {
	return func(enrollID string) (*connection, error) {
		gw, err := gateway.Connect(
			gateway.WithConfig(fabconfig.FromFile(cfg.ConnectionProfile)),
			gateway.WithIdentity(wallet, enrollID),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to connect to gateway as %s", enrollID)
		}

		network, err := gw.GetNetwork(cfg.Channel)
		if err != nil {
			gw.Close()
			return nil, errors.Wrapf(err, "failed to get network %s", cfg.Channel)
		}

		return &connection{
			contract: func(chaincodeID string) contract {
				return network.GetContract(chaincodeID)
			},
			close: gw.Close,
		}, nil
	}
}

// GetMember returns the member of the wallet identity labelled enrollID
func (p *Provider) GetMember(ctx context.Context, enrollID string) (chain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "lookup of member %s abandoned", enrollID)
	}

	m, err := p.members.GetContext(ctx, lazycache.NewStringKey(enrollID))
	if err != nil {
		return nil, err
	}
	return m.(*member), nil
}

func (p *Provider) newMember(key lazycache.Key) (interface{}, error) {
	enrollID := key.String()

	if !p.wallet.Exists(enrollID) {
		return nil, status.NewIdentityError(status.IdentityNotFound, enrollID,
			errors.Errorf("identity %s not found in wallet", enrollID))
	}

	invoker := retry.NewInvoker(retry.New(p.retryOpts), retry.WithBeforeRetry(func(err error) {
		logger.Warnf("retrying gateway connection for member %s: %s", enrollID, err)
	}))
	conn, err := invoker.Invoke(context.Background(), func() (interface{}, error) {
		return p.connect(enrollID)
	})
	if err != nil {
		return nil, status.NewIdentityError(status.ConnectionFailed, enrollID, err)
	}

	logger.Debugf("connected gateway for member %s", enrollID)
	return &member{enrollID: enrollID, conn: conn.(*connection)}, nil
}

// Close closes the gateway of every resolved member.
// Members can no longer be resolved once the provider is closed.
func (p *Provider) Close() {
	p.members.Close()
}

type member struct {
	enrollID string
	conn     *connection
}

func (m *member) Close() {
	logger.Debugf("closing gateway for member %s", m.enrollID)
	m.conn.close()
}

// Invoke submits the request and waits for its commit in the background.
// The transaction emits Completed or Failed.
func (m *member) Invoke(request chain.Request) chain.Transaction {
	return run(func() chain.Event {
		payload, err := m.conn.contract(request.ChaincodeID).SubmitTransaction(request.Fcn, request.Args...)
		if err != nil {
			return chain.NewFailedEvent(errors.WithMessagef(err, "%s submitting %s", m.enrollID, request.Fcn))
		}
		return chain.NewCompletedEvent(&chain.Results{Payload: payload})
	})
}

// Query evaluates the request in the background.
// The transaction emits QueryComplete or Failed.
func (m *member) Query(request chain.Request) chain.Transaction {
	return run(func() chain.Event {
		payload, err := m.conn.contract(request.ChaincodeID).EvaluateTransaction(request.Fcn, request.Args...)
		if err != nil {
			return chain.NewFailedEvent(errors.WithMessagef(err, "%s evaluating %s", m.enrollID, request.Fcn))
		}
		return chain.NewQueryCompleteEvent(payload)
	})
}

type transaction chan chain.Event

func (t transaction) Events() <-chan chain.Event {
	return t
}

// run emits the single notification returned by exec, then closes
func run(exec func() chain.Event) chain.Transaction {
	events := make(transaction, 1)
	go func() {
		defer close(events)
		events <- exec()
	}()
	return events
}
