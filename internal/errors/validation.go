package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder collects per-field reasons for rejecting an input.
// Build returns nil when nothing was recorded.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

func (vb *ValidationBuilder) add(field, reason string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], reason)
	return vb
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.add(field, "is required")
}

// InvalidField records a field whose value was rejected
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.add(field, "is invalid: "+reason)
}

// Build returns an InvalidArgument error carrying every recorded field, or nil
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for field := range vb.fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", "))
	}

	return &Error{
		Code:    CodeInvalidArgument,
		Message: "validation failed: " + strings.Join(parts, "; "),
		Fields:  vb.fields,
	}
}
