package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Validation field
// reasons ride along in the status details as a Struct.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Fields) > 0 {
		// a status that cannot carry the details is sent without them
		if details, err := fieldsStruct(customErr.Fields); err == nil {
			if withDetails, err := st.WithDetails(details); err == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC status error back into a coded error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		customErr.Fields = structFields(details)
		break
	}

	return customErr
}

func fieldsStruct(fields map[string][]string) (*structpb.Struct, error) {
	m := make(map[string]any, len(fields))
	for field, reasons := range fields {
		list := make([]any, len(reasons))
		for i, r := range reasons {
			list[i] = r
		}
		m[field] = list
	}
	return structpb.NewStruct(map[string]any{"fields": m})
}

func structFields(details *structpb.Struct) map[string][]string {
	raw, ok := details.AsMap()["fields"].(map[string]any)
	if !ok {
		return nil
	}

	fields := make(map[string][]string, len(raw))
	for field, v := range raw {
		list, _ := v.([]any)
		for _, r := range list {
			if reason, ok := r.(string); ok {
				fields[field] = append(fields[field], reason)
			}
		}
	}
	return fields
}
