/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func TestStatusConstructors(t *testing.T) {
	s := New(ClientStatus, InvalidArgument.ToInt32(), "test", nil)
	assert.NotNil(t, s, "Expected status to be constructed")
	assert.EqualValues(t, InvalidArgument, ToClientStatusCode(s.Code))
	assert.Equal(t, ClientStatus, s.Group)
	assert.Equal(t, "test", s.Message, "Expected test message")

	s = NewFromGRPCStatus(nil)
	assert.Nil(t, s)
	s = NewFromGRPCStatus(grpcstatus.New(grpccodes.DeadlineExceeded, "test"))
	assert.NotNil(t, s, "Expected status to be constructed")
	assert.EqualValues(t, grpccodes.DeadlineExceeded, ToGRPCStatusCode(s.Code))
	assert.Equal(t, GRPCTransportStatus, s.Group)
	assert.Equal(t, "test", s.Message, "Expected test message")
}

func TestStageConstructors(t *testing.T) {
	cause := fmt.Errorf("member not enrolled")

	s := NewIdentityError(IdentityNotFound, "alice", cause)
	assert.Equal(t, IdentityStatus, s.Group)
	assert.EqualValues(t, IdentityNotFound, s.Code)
	assert.Equal(t, "failed to get member alice: member not enrolled", s.Message)
	assert.Equal(t, cause, s.Details[0])
	assert.True(t, stderrors.Is(s, cause), "cause should be reachable through Unwrap")

	s = NewSubmissionError(TransactionFailed, "createAccount", cause)
	assert.Equal(t, SubmissionStatus, s.Group)
	assert.Equal(t, "invoke createAccount failed: member not enrolled", s.Message)

	s = NewQueryError(NoTerminalEvent, "query", nil)
	assert.Equal(t, QueryStatus, s.Group)
	assert.Equal(t, "query query failed", s.Message)
	assert.Empty(t, s.Details)
	assert.Nil(t, s.Unwrap())
}

func TestFromError(t *testing.T) {
	s := New(ClientStatus, Timeout.ToInt32(), "test", nil)
	derivedStatus, ok := FromError(s)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)

	// Test unwrap
	s1 := errors.Wrap(s, "test")
	derivedStatus, ok = FromError(s1)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)

	s, ok = FromError(nil)
	assert.True(t, ok)
	assert.EqualValues(t, OK.ToInt32(), s.Code)

	_, ok = FromError(fmt.Errorf("Test"))
	assert.False(t, ok)

	grpcErr := errors.WithMessage(grpcstatus.Error(grpccodes.Unavailable, "peer down"), "connect")
	s, ok = FromError(grpcErr)
	assert.True(t, ok)
	assert.Equal(t, GRPCTransportStatus, s.Group)
	assert.EqualValues(t, grpccodes.Unavailable, s.Code)
	assert.Equal(t, "peer down", s.Message)
}

func TestPredicates(t *testing.T) {
	cause := fmt.Errorf("boom")

	assert.True(t, IsIdentityResolutionError(NewIdentityError(IdentityNotFound, "bob", cause)))
	assert.True(t, IsSubmissionError(errors.Wrap(NewSubmissionError(TransactionFailed, "createAccount", cause), "wrapped")))
	assert.True(t, IsQueryError(NewQueryError(TransactionFailed, "query", cause)))
	assert.True(t, IsInvalidArgument(New(ClientStatus, InvalidArgument.ToInt32(), "missing", nil)))
	assert.True(t, IsTimeout(New(ClientStatus, Timeout.ToInt32(), "timed out", nil)))

	assert.False(t, IsSubmissionError(nil))
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsQueryError(cause))
	assert.False(t, IsSubmissionError(NewQueryError(TransactionFailed, "query", cause)))
	// gRPC code 5 is NotFound, not a client timeout
	assert.False(t, IsTimeout(grpcstatus.Error(grpccodes.NotFound, "missing")))
}

func TestStatusToError(t *testing.T) {
	s := New(ClientStatus, InvalidArgument.ToInt32(), "test", nil)
	assert.Equal(t, "Client Status Code: (2) INVALID_ARGUMENT. Description: test", s.Error())
}

func TestStatuCodeConversion(t *testing.T) {
	s := OK.String()
	assert.Equal(t, CodeName[OK.ToInt32()], s)

	invalidCode25999 := Code(25999)
	assert.Equal(t, "25999", invalidCode25999.String())
}

func TestStatusCodeString(t *testing.T) {
	s := Status{Group: GRPCTransportStatus, Code: int32(grpccodes.Aborted)}
	assert.Equal(t, grpccodes.Aborted.String(), s.codeString())

	s = Status{Group: SubmissionStatus, Code: int32(TransactionFailed)}
	assert.Equal(t, TransactionFailed.String(), s.codeString())

	s = Status{Group: IdentityStatus, Code: int32(OK)}
	assert.Equal(t, OK.String(), s.codeString())
}

func TestStatusGroupString(t *testing.T) {
	unknownGroup77377 := Group(73777)
	assert.Equal(t, UnknownStatus.String(), unknownGroup77377.String())
}
