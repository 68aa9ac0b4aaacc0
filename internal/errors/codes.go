package errors

import "google.golang.org/grpc/codes"

// Code classifies a catalog error
type Code string

const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the status code the catalog service answers with
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// codeFromGRPC maps a status code back; anything the catalog never sends
// becomes CodeInternal, except timeouts which read as Unavailable
func codeFromGRPC(c codes.Code) Code {
	switch c {
	case codes.OK:
		return CodeOK
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unavailable, codes.DeadlineExceeded:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
