/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cpaper

import (
	"context"
	"encoding/json"
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/pkg/errors"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/hyperledger/fabric-cp-go/pkg/client/cpaper/metrics"
	"github.com/hyperledger/fabric-cp-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-cp-go/pkg/common/providers/chain"
	"github.com/hyperledger/fabric-cp-go/pkg/util/concurrent/futurevalue"
)

// resolution is the terminal outcome of a transaction
type resolution struct {
	results *chain.Results
	err     error
	// closed is set when the transaction stopped before a terminal notification
	closed bool
}

// selector maps a notification to the outcome of a call.
// A nil resolution means the notification is not terminal for this call.
type selector func(e chain.Event) *resolution

// invoke submits request as enrollID and waits for the first terminal
// notification: Completed or Submitted resolve success, Failed resolves the error.
func (c *Client) invoke(ctx context.Context, enrollID string, request chain.Request) (*chain.Results, error) {
	labels := []string{metrics.ChaincodeLabel, request.ChaincodeID, metrics.FcnLabel, request.Fcn}
	c.metrics.ExecutionsReceived.With(labels...).Add(1)
	defer func(start time.Time) {
		c.metrics.ExecutionDuration.With(labels...).Observe(time.Since(start).Seconds())
	}(time.Now())

	// Submit the invoke transaction as the given user
	logger.Debugf("Invoke transaction as: %s", enrollID)
	member, err := c.getMember(ctx, enrollID)
	if err != nil {
		c.recordFailure(c.metrics.ExecutionsFailed, labels, err)
		return nil, err
	}

	logger.Debugf("invoke body: %s", requestBody(request))
	res, err := c.await(ctx, member.Invoke(request), c.invokeSelector(request))
	if err == nil {
		switch {
		case res.closed:
			err = status.NewSubmissionError(status.NoTerminalEvent, request.Fcn, nil)
		case res.err != nil:
			err = status.NewSubmissionError(status.TransactionFailed, request.Fcn, res.err)
		}
	}
	if err != nil {
		c.recordFailure(c.metrics.ExecutionsFailed, labels, err)
		return nil, err
	}
	return res.results, nil
}

// query evaluates request as enrollID and returns the payload of the
// QueryComplete notification
func (c *Client) query(ctx context.Context, enrollID string, request chain.Request) ([]byte, error) {
	labels := []string{metrics.ChaincodeLabel, request.ChaincodeID, metrics.FcnLabel, request.Fcn}
	c.metrics.QueriesReceived.With(labels...).Add(1)
	defer func(start time.Time) {
		c.metrics.QueryDuration.With(labels...).Observe(time.Since(start).Seconds())
	}(time.Now())

	logger.Debugf("querying chaincode as: %s", enrollID)
	member, err := c.getMember(ctx, enrollID)
	if err != nil {
		c.recordFailure(c.metrics.QueriesFailed, labels, err)
		return nil, err
	}

	logger.Debugf("query body: %s", requestBody(request))
	res, err := c.await(ctx, member.Query(request), querySelector(request))
	if err == nil {
		switch {
		case res.closed:
			err = status.NewQueryError(status.NoTerminalEvent, request.Fcn, nil)
		case res.err != nil:
			err = status.NewQueryError(status.TransactionFailed, request.Fcn, res.err)
		}
	}
	if err != nil {
		c.recordFailure(c.metrics.QueriesFailed, labels, err)
		return nil, err
	}
	return res.results.Payload, nil
}

func (c *Client) getMember(ctx context.Context, enrollID string) (chain.Member, error) {
	if enrollID == "" {
		return nil, status.New(status.ClientStatus, status.InvalidArgument.ToInt32(), "enrollID is required", nil)
	}

	member, err := c.provider.GetMember(ctx, enrollID)
	if err != nil {
		logger.Errorf("failed to get %s member: %s", enrollID, err)
		if status.IsIdentityResolutionError(err) {
			return nil, err
		}
		code := status.Unknown
		if _, ok := grpcstatus.FromError(errors.Cause(err)); ok {
			code = status.ConnectionFailed
		}
		return nil, status.NewIdentityError(code, enrollID, err)
	}
	if member == nil {
		return nil, status.NewIdentityError(status.IdentityNotFound, enrollID, nil)
	}

	logger.Debugf("successfully got member: %s", enrollID)
	return member, nil
}

// await consumes the notifications of txn until sel resolves the call, the
// client timeout expires or ctx is done. The call is resolved at most once;
// notifications received after resolution are not processed.
func (c *Client) await(ctx context.Context, txn chain.Transaction, sel selector) (*resolution, error) {
	if txn == nil {
		return &resolution{closed: true}, nil
	}

	result := futurevalue.New()
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		events := txn.Events()
		for {
			select {
			case e, ok := <-events:
				if !ok {
					result.Set(&resolution{closed: true}, nil)
					return
				}
				if res := sel(e); res != nil {
					result.Set(res, nil)
					return
				}
			case <-stop:
				return
			}
		}
	}()

	waitCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// the future value is only ever resolved without error, so an error
	// means waitCtx was done first
	value, err := result.Get(waitCtx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "waiting for transaction notification")
		}
		return nil, status.New(status.ClientStatus, status.Timeout.ToInt32(),
			"Operation timed out", nil)
	}
	return value.(*resolution), nil
}

func (c *Client) invokeSelector(request chain.Request) selector {
	return func(e chain.Event) *resolution {
		switch e.Type {
		case chain.Completed:
			logger.Infof("Successfully completed invoke %s. Results: %s", request.Fcn, txID(e.Results))
			return &resolution{results: nonNilResults(e.Results)}
		case chain.Submitted:
			if c.commitRequired {
				logger.Debugf("invoke %s submitted, waiting for commit", request.Fcn)
				return nil
			}
			// accepted is not committed: the transaction may still be invalidated
			logger.Infof("invoke %s submitted but not committed [%s]", request.Fcn, txID(e.Results))
			return &resolution{results: nonNilResults(e.Results)}
		case chain.Failed:
			logger.Errorf("invoke %s failed. Error: %s", request.Fcn, e.Err)
			return &resolution{err: failure(e)}
		default:
			logger.Warnf("ignoring unexpected %s notification for invoke %s", e.Type, request.Fcn)
			return nil
		}
	}
}

func querySelector(request chain.Request) selector {
	return func(e chain.Event) *resolution {
		switch e.Type {
		case chain.QueryComplete:
			logger.Debugf("Successfully completed query %s", request.Fcn)
			return &resolution{results: nonNilResults(e.Results)}
		case chain.Failed:
			logger.Errorf("query %s failed. Error: %s", request.Fcn, e.Err)
			return &resolution{err: failure(e)}
		default:
			logger.Warnf("ignoring unexpected %s notification for query %s", e.Type, request.Fcn)
			return nil
		}
	}
}

func (c *Client) recordFailure(counter kitmetrics.Counter, labels []string, err error) {
	if status.IsTimeout(err) {
		c.metrics.Timeouts.With(labels...).Add(1)
		return
	}
	fail := status.Unknown.String()
	if s, ok := status.FromError(err); ok {
		fail = status.ToClientStatusCode(s.Code).String()
	}
	counter.With(append(labels, metrics.FailLabel, fail)...).Add(1)
}

func failure(e chain.Event) error {
	if e.Err == nil {
		return errors.New("transaction reported an error without details")
	}
	return e.Err
}

func nonNilResults(r *chain.Results) *chain.Results {
	if r == nil {
		return &chain.Results{}
	}
	return r
}

func txID(r *chain.Results) string {
	if r == nil {
		return ""
	}
	return r.TxID
}

func requestBody(request chain.Request) string {
	raw, err := json.Marshal(request)
	if err != nil {
		return err.Error()
	}
	return string(raw)
}
