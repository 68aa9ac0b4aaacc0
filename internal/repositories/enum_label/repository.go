// Package enumlabel provides the interface for localized enum label persistence
package enumlabel

//go:generate mockgen -destination=mock/mock_repository.go -package=enumlabelmock github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label Repository

import (
	"context"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// Repository defines the interface for enum label persistence.
// There is at most one label per (enum type, code, language).
type Repository interface {
	// ListByCodes retrieves the labels of many codes across many enum types in
	// one language with a single storage round trip. Unknown codes are absent
	// from the output.
	// Returns errors.InvalidArgument for an empty language
	// Returns errors.Internal for storage failures
	ListByCodes(ctx context.Context, input ListByCodesInput) (*ListByCodesOutput, error)

	// ListByType retrieves every label of one enum type in one language
	// Returns errors.InvalidArgument for empty keys
	// Returns errors.Internal for storage failures
	ListByType(ctx context.Context, input ListByTypeInput) (*ListByTypeOutput, error)

	// Upsert creates or replaces a label
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)
}

// ListByCodesInput defines the input for a batch label fetch
type ListByCodesInput struct {
	// CodesByType maps enum type to the codes wanted for it
	CodesByType map[string][]string
	Lang        dnd5e.Lang
}

// ListByCodesOutput defines the output for a batch label fetch
type ListByCodesOutput struct {
	Labels []*dnd5e.EnumLabel
}

// ListByTypeInput defines the input for listing one enum type
type ListByTypeInput struct {
	EnumType string
	Lang     dnd5e.Lang
}

// ListByTypeOutput defines the output for listing one enum type
type ListByTypeOutput struct {
	Labels []*dnd5e.EnumLabel
}

// UpsertInput defines the input for storing a label
type UpsertInput struct {
	Label *dnd5e.EnumLabel
}

// UpsertOutput defines the output for storing a label
type UpsertOutput struct {
	Label *dnd5e.EnumLabel
}
