/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cpaper

import (
	"time"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-cp-go/pkg/client/cpaper/metrics"
)

// ClientOption describes a functional parameter for the New constructor
type ClientOption func(*Client) error

// WithTimeout bounds the wait for the terminal notification of every call.
// A zero timeout waits until the call's context is done.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		if timeout < 0 {
			return errors.Errorf("invalid timeout [%s]", timeout)
		}
		c.timeout = timeout
		return nil
	}
}

// WithMetrics records invoke and query metrics
func WithMetrics(m *metrics.ClientMetrics) ClientOption {
	return func(c *Client) error {
		if m == nil {
			return errors.New("metrics are required")
		}
		c.metrics = m
		return nil
	}
}

// WithCommitRequired makes invokes wait for the Completed notification.
// By default a Submitted notification (accepted, not yet committed) is enough.
func WithCommitRequired() ClientOption {
	return func(c *Client) error {
		c.commitRequired = true
		return nil
	}
}
