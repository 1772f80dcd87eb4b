/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"strconv"

	grpcCodes "google.golang.org/grpc/codes"
)

// Code represents a status code
type Code uint32

const (
	// OK is returned on success.
	OK Code = 0

	// Unknown represents status codes that are uncategorized or unknown to the client
	Unknown Code = 1

	// InvalidArgument is returned when a required argument is absent or malformed
	InvalidArgument Code = 2

	// IdentityNotFound is returned when the chain has no member for an enrollment ID
	IdentityNotFound Code = 3

	// ConnectionFailed is returned when a network connection attempt made on
	// behalf of a member fails
	ConnectionFailed Code = 4

	// Timeout operation timed out
	Timeout Code = 5

	// TransactionFailed is returned when a transaction reported an error notification
	TransactionFailed Code = 6

	// NoTerminalEvent is returned when a transaction stopped emitting
	// notifications before reaching a terminal one
	NoTerminalEvent Code = 7

	// SerializationFailed is returned when a request argument could not be serialized
	SerializationFailed Code = 8
)

// CodeName maps the codes in this packages to human-readable strings
var CodeName = map[int32]string{
	0: "OK",
	1: "UNKNOWN",
	2: "INVALID_ARGUMENT",
	3: "IDENTITY_NOT_FOUND",
	4: "CONNECTION_FAILED",
	5: "TIMEOUT",
	6: "TRANSACTION_FAILED",
	7: "NO_TERMINAL_EVENT",
	8: "SERIALIZATION_FAILED",
}

// ToInt32 cast to int32
func (c Code) ToInt32() int32 {
	return int32(c)
}

// String representation of the code
func (c Code) String() string {
	if s, ok := CodeName[c.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// ToClientStatusCode cast to client status code
func ToClientStatusCode(c int32) Code {
	return Code(c)
}

// ToGRPCStatusCode cast to gRPC status code
func ToGRPCStatusCode(c int32) grpcCodes.Code {
	return grpcCodes.Code(c)
}
