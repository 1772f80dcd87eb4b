/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status defines metadata for errors returned by the commercial paper
// client. This information may be used by callers to make decisions about how
// to handle certain error conditions.
// Status codes are divided by group, where each group represents the stage of
// a call that failed: identity resolution, transaction submission or query.
package status

import (
	"fmt"

	"github.com/pkg/errors"
	grpcstatus "google.golang.org/grpc/status"
)

// Status provides additional information about an unsuccessful operation
// performed by the client. Essentially, this object contains metadata about
// an error returned by the client.
type Status struct {
	// Group status group
	Group Group
	// Code status code
	Code int32
	// Message status message
	Message string
	// Details any additional status details. When the status was produced from
	// an error reported by the ledger SDK, Details[0] holds that error.
	Details []interface{}
}

// Group of status to help users infer the stage that produced an error
type Group int32

const (
	// UnknownStatus unknown status group
	UnknownStatus Group = iota

	// GRPCTransportStatus is the status associated with requests made over
	// gRPC connections by the underlying SDK
	GRPCTransportStatus

	// IdentityStatus is returned when a member could not be resolved
	IdentityStatus
	// SubmissionStatus is returned when a mutating transaction was rejected or
	// errored
	SubmissionStatus
	// QueryStatus is returned when a read-only query errored
	QueryStatus

	// ClientStatus is a generic client status, inferred by the client itself
	// (argument validation, timeouts)
	ClientStatus
)

// GroupName maps the groups in this packages to human-readable strings
var GroupName = map[int32]string{
	0: "Unknown",
	1: "gRPC Transport Status",
	2: "Identity Resolution Status",
	3: "Submission Status",
	4: "Query Status",
	5: "Client Status",
}

func (g Group) String() string {
	if s, ok := GroupName[int32(g)]; ok {
		return s
	}
	return UnknownStatus.String()
}

// FromError returns a Status representing err if available,
// otherwise it returns nil, false.
func FromError(err error) (s *Status, ok bool) {
	if err == nil {
		return &Status{Code: int32(OK)}, true
	}
	if s, ok := err.(*Status); ok {
		return s, true
	}
	unwrappedErr := errors.Cause(err)
	if s, ok := unwrappedErr.(*Status); ok {
		return s, true
	}
	if gs, ok := grpcstatus.FromError(unwrappedErr); ok {
		return NewFromGRPCStatus(gs), true
	}

	return nil, false
}

func (s *Status) Error() string {
	return fmt.Sprintf("%s Code: (%d) %s. Description: %s", s.Group.String(), s.Code, s.codeString(), s.Message)
}

// Unwrap returns the SDK error this status was created from, if any.
func (s *Status) Unwrap() error {
	if len(s.Details) == 0 {
		return nil
	}
	if err, ok := s.Details[0].(error); ok {
		return err
	}
	return nil
}

func (s *Status) codeString() string {
	switch s.Group {
	case GRPCTransportStatus:
		return ToGRPCStatusCode(s.Code).String()
	default:
		return ToClientStatusCode(s.Code).String()
	}
}

// New returns a Status with the given parameters
func New(group Group, code int32, msg string, details []interface{}) *Status {
	return &Status{Group: group, Code: code, Message: msg, Details: details}
}

// NewFromGRPCStatus new Status from gRPC status response
func NewFromGRPCStatus(s *grpcstatus.Status) *Status {
	if s == nil {
		return nil
	}
	details := make([]interface{}, len(s.Proto().Details))
	for i, detail := range s.Proto().Details {
		details[i] = detail
	}

	return &Status{Group: GRPCTransportStatus, Code: s.Proto().Code,
		Message: s.Message(), Details: details}
}

// NewIdentityError wraps an error raised while resolving a member
func NewIdentityError(code Code, enrollID string, cause error) *Status {
	return wrapCause(IdentityStatus, code, fmt.Sprintf("failed to get member %s", enrollID), cause)
}

// NewSubmissionError wraps an error raised by a mutating transaction
func NewSubmissionError(code Code, fcn string, cause error) *Status {
	return wrapCause(SubmissionStatus, code, fmt.Sprintf("invoke %s failed", fcn), cause)
}

// NewQueryError wraps an error raised by a read-only query
func NewQueryError(code Code, fcn string, cause error) *Status {
	return wrapCause(QueryStatus, code, fmt.Sprintf("query %s failed", fcn), cause)
}

func wrapCause(group Group, code Code, msg string, cause error) *Status {
	if cause == nil {
		return New(group, code.ToInt32(), msg, nil)
	}
	return New(group, code.ToInt32(), msg+": "+cause.Error(), []interface{}{cause})
}

// IsIdentityResolutionError returns true if err was produced while resolving a member
func IsIdentityResolutionError(err error) bool {
	return inGroup(err, IdentityStatus)
}

// IsSubmissionError returns true if err was produced by a mutating transaction
func IsSubmissionError(err error) bool {
	return inGroup(err, SubmissionStatus)
}

// IsQueryError returns true if err was produced by a read-only query
func IsQueryError(err error) bool {
	return inGroup(err, QueryStatus)
}

// IsInvalidArgument returns true if err reports an invalid argument
func IsInvalidArgument(err error) bool {
	return hasCode(err, InvalidArgument)
}

// IsTimeout returns true if err reports an operation timeout
func IsTimeout(err error) bool {
	return hasCode(err, Timeout)
}

func inGroup(err error, group Group) bool {
	s, ok := FromError(err)
	return ok && err != nil && s.Group == group
}

func hasCode(err error, code Code) bool {
	s, ok := FromError(err)
	return ok && err != nil && s.Group != GRPCTransportStatus && s.Code == code.ToInt32()
}
