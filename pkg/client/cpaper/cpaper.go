/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cpaper enables access to the commercial paper trading chaincode.
//
// A Client forwards each business operation to a chain.Provider: it resolves
// the caller's member, builds the chaincode request, submits it as an invoke
// or a query and waits for exactly one terminal notification.
//
//  Basic Flow:
//  1) Obtain a chain.Provider (for example gwchain.New)
//  2) Create a client with New, passing the provider and the chaincode ID
//  3) Call CreateCompany, CreatePaper, GetPapers ...
package cpaper

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hyperledger/fabric-cp-go/pkg/client/cpaper/metrics"
	"github.com/hyperledger/fabric-cp-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-cp-go/pkg/common/logging"
	"github.com/hyperledger/fabric-cp-go/pkg/common/providers/chain"
)

var logger = logging.NewLogger("cpaper/client")

// Chaincode functions and query names of the commercial paper chaincode
const (
	FcnCreateAccount        = "createAccount"
	FcnIssueCommercialPaper = "issueCommercialPaper"
	FcnTransferPaper        = "transferPaper"
	FcnQuery                = "query"

	QueryGetAllCPs  = "GetAllCPs"
	QueryGetCP      = "GetCP"
	QueryGetCompany = "GetCompany"
)

const defaultTxTimeout = 10 * time.Second

// Client enables access to the commercial paper chaincode through a chain provider.
// A Client holds no mutable state and may be shared by concurrent callers.
type Client struct {
	provider       chain.Provider
	chaincodeID    string
	timeout        time.Duration
	commitRequired bool
	metrics        *metrics.ClientMetrics
}

// New returns a Client bound to the given provider and chaincode.
// The provider is shared, not owned: the client never closes it.
func New(provider chain.Provider, chaincodeID string, opts ...ClientOption) (*Client, error) {
	if provider == nil || chaincodeID == "" {
		return nil, status.New(status.ClientStatus, status.InvalidArgument.ToInt32(),
			"cannot create chaincode client without both a chain provider and the chaincode ID", nil)
	}

	c := &Client{
		provider:    provider,
		chaincodeID: chaincodeID,
		timeout:     defaultTxTimeout,
		metrics:     metrics.NewDiscardClientMetrics(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, status.New(status.ClientStatus, status.InvalidArgument.ToInt32(), err.Error(), []interface{}{err})
		}
	}

	return c, nil
}

// ChaincodeID returns the ID of the chaincode the client submits to
func (c *Client) ChaincodeID() string {
	return c.chaincodeID
}

// CreateCompany creates a trading account on the commercial paper network.
// The enrollID is also taken as the name of the account.
// It returns once the transaction has been submitted; it does not wait for
// the ledger commit unless the client was created WithCommitRequired.
func (c *Client) CreateCompany(ctx context.Context, enrollID string) error {
	logger.Infof("Creating a trading account for: %s", enrollID)

	// Accounts will be named after the enrolled users
	results, err := c.invoke(ctx, enrollID, c.newRequest(FcnCreateAccount, enrollID))
	if err != nil {
		logger.Errorf("failed to create account for %s: %s", enrollID, err)
		return err
	}

	logger.Infof("successfully submitted createAccount transaction [%s]", results.TxID)
	return nil
}

// CreatePaper issues a new commercial paper. paper is serialized to JSON;
// Paper is its usual shape but any JSON-serializable value is accepted.
func (c *Client) CreatePaper(ctx context.Context, enrollID string, paper interface{}) error {
	logger.Info("creating a new commercial paper")

	arg, err := marshalArg(FcnIssueCommercialPaper, paper)
	if err != nil {
		return err
	}

	results, err := c.invoke(ctx, enrollID, c.newRequest(FcnIssueCommercialPaper, arg))
	if err != nil {
		logger.Errorf("failed to create paper: %s", err)
		return err
	}

	logger.Infof("Created paper successfully [%s]", results.TxID)
	return nil
}

// TransferPaper moves a quantity of a paper between two companies
func (c *Client) TransferPaper(ctx context.Context, enrollID string, transfer Transfer) error {
	logger.Infof("transferring %d of paper %s from %s to %s", transfer.Quantity, transfer.CUSIP, transfer.FromCompany, transfer.ToCompany)

	arg, err := marshalArg(FcnTransferPaper, transfer)
	if err != nil {
		return err
	}

	if _, err := c.invoke(ctx, enrollID, c.newRequest(FcnTransferPaper, arg)); err != nil {
		logger.Errorf("failed to transfer paper: %s", err)
		return err
	}
	return nil
}

// GetPapers returns the JSON list of every commercial paper, as reported by the chaincode
func (c *Client) GetPapers(ctx context.Context, enrollID string) (string, error) {
	logger.Info("getting commercial papers")

	papers, err := c.query(ctx, enrollID, c.newRequest(FcnQuery, QueryGetAllCPs, enrollID))
	if err != nil {
		logger.Errorf("failed to getPapers: %s", err)
		return "", err
	}

	logger.Info("got papers")
	return string(papers), nil
}

// GetPaper returns the JSON of the paper with the given CUSIP
func (c *Client) GetPaper(ctx context.Context, enrollID string, cusip string) (string, error) {
	paper, err := c.query(ctx, enrollID, c.newRequest(FcnQuery, QueryGetCP, cusip))
	if err != nil {
		logger.Errorf("failed to get paper %s: %s", cusip, err)
		return "", err
	}
	return string(paper), nil
}

// GetCompany returns the JSON of the trading account of the given company
func (c *Client) GetCompany(ctx context.Context, enrollID string, company string) (string, error) {
	account, err := c.query(ctx, enrollID, c.newRequest(FcnQuery, QueryGetCompany, company))
	if err != nil {
		logger.Errorf("failed to get company %s: %s", company, err)
		return "", err
	}
	return string(account), nil
}

// CreateCompanyAsync runs CreateCompany in the background and passes its
// outcome to cb exactly once. cb may be nil.
func (c *Client) CreateCompanyAsync(ctx context.Context, enrollID string, cb func(error)) {
	go func() {
		err := c.CreateCompany(ctx, enrollID)
		if cb != nil {
			cb(err)
		}
	}()
}

// CreatePaperAsync runs CreatePaper in the background and passes its
// outcome to cb exactly once. cb may be nil.
func (c *Client) CreatePaperAsync(ctx context.Context, enrollID string, paper interface{}, cb func(error)) {
	go func() {
		err := c.CreatePaper(ctx, enrollID, paper)
		if cb != nil {
			cb(err)
		}
	}()
}

// GetPapersAsync runs GetPapers in the background and passes its
// outcome to cb exactly once. cb may be nil.
func (c *Client) GetPapersAsync(ctx context.Context, enrollID string, cb func(string, error)) {
	go func() {
		papers, err := c.GetPapers(ctx, enrollID)
		if cb != nil {
			cb(papers, err)
		}
	}()
}

func (c *Client) newRequest(fcn string, args ...string) chain.Request {
	return chain.Request{ChaincodeID: c.chaincodeID, Fcn: fcn, Args: args}
}

func marshalArg(fcn string, v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", status.New(status.ClientStatus, status.SerializationFailed.ToInt32(),
			"failed to serialize "+fcn+" argument: "+err.Error(), []interface{}{err})
	}
	return string(raw), nil
}
