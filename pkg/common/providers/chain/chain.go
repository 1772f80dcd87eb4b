/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -build_flags '--mod=mod' -package mocks -destination ./mocks/mockchain.gen.go -source chain.go

// Package chain defines the ledger capabilities consumed by the commercial paper
// client: member lookup, invoke and query.
package chain

import "context"

// Provider resolves enrolled members of a ledger network.
// Members remain owned by the provider; callers borrow them for one call.
type Provider interface {
	GetMember(ctx context.Context, enrollID string) (Member, error)
}

// Member is a resolved identity authorized to submit transactions
type Member interface {
	// Invoke submits a mutating transaction. The returned transaction emits
	// Submitted, Completed or Failed.
	Invoke(request Request) Transaction

	// Query evaluates a read-only request. The returned transaction emits
	// QueryComplete or Failed.
	Query(request Request) Transaction
}

// Transaction is a submitted invoke or query. Events delivers the
// notifications of the transaction; the channel may be closed once the
// transaction has nothing more to report. Producers never block on send.
type Transaction interface {
	Events() <-chan Event
}

// Request contains the parameters of an invoke or query
type Request struct {
	ChaincodeID string
	Fcn         string
	Args        []string
}

// Results contains what the ledger reported for a transaction
type Results struct {
	TxID    string
	Payload []byte
}

// EventType is the kind of a transaction notification
type EventType int

const (
	// Submitted reports that an invoke was accepted but not yet committed
	Submitted EventType = iota
	// Completed reports that an invoke has been committed to the ledger
	Completed
	// QueryComplete reports the result of a query
	QueryComplete
	// Failed reports that the transaction errored
	Failed
)

var eventTypeNames = map[EventType]string{
	Submitted:     "submitted",
	Completed:     "completed",
	QueryComplete: "complete",
	Failed:        "error",
}

func (t EventType) String() string {
	if s, ok := eventTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Event is a notification emitted by a transaction
type Event struct {
	Type    EventType
	Results *Results
	Err     error
}

// NewSubmittedEvent returns a Submitted notification
func NewSubmittedEvent(results *Results) Event {
	return Event{Type: Submitted, Results: results}
}

// NewCompletedEvent returns a Completed notification
func NewCompletedEvent(results *Results) Event {
	return Event{Type: Completed, Results: results}
}

// NewQueryCompleteEvent returns a QueryComplete notification carrying payload
func NewQueryCompleteEvent(payload []byte) Event {
	return Event{Type: QueryComplete, Results: &Results{Payload: payload}}
}

// NewFailedEvent returns a Failed notification
func NewFailedEvent(err error) Event {
	return Event{Type: Failed, Err: err}
}

// NewTransaction returns a Transaction that emits the given events and then closes
func NewTransaction(events ...Event) Transaction {
	ch := make(chan Event, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)
	return eventsTransaction(ch)
}

type eventsTransaction <-chan Event

func (t eventsTransaction) Events() <-chan Event {
	return t
}
