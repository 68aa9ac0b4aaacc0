// Package translation provides the interface for localized entity text persistence
package translation

//go:generate mockgen -destination=mock/mock_repository.go -package=translationmock github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation Repository

import (
	"context"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// Repository defines the interface for translation persistence.
// There is at most one translation per entity per language.
type Repository interface {
	// Get retrieves the translation of one entity in one language
	// Returns errors.InvalidArgument for empty keys
	// Returns errors.NotFound if no translation exists for the language
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByEntityIDs retrieves translations for many entities in one language
	// with a single storage round trip. Entities without a translation are
	// simply absent from the output.
	// Returns errors.InvalidArgument for an empty entity type or language
	// Returns errors.Internal for storage failures
	ListByEntityIDs(ctx context.Context, input ListByEntityIDsInput) (*ListByEntityIDsOutput, error)

	// Upsert creates or replaces a translation
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// Delete removes every translation of an entity
	// Returns errors.InvalidArgument for empty keys
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a translation
type GetInput struct {
	EntityType string
	EntityID   string
	Lang       dnd5e.Lang
}

// GetOutput defines the output for getting a translation
type GetOutput struct {
	Translation *dnd5e.Translation
}

// ListByEntityIDsInput defines the input for a batch translation fetch
type ListByEntityIDsInput struct {
	EntityType string
	EntityIDs  []string
	Lang       dnd5e.Lang
}

// ListByEntityIDsOutput defines the output for a batch translation fetch
type ListByEntityIDsOutput struct {
	Translations []*dnd5e.Translation
}

// UpsertInput defines the input for storing a translation
type UpsertInput struct {
	Translation *dnd5e.Translation
}

// UpsertOutput defines the output for storing a translation
type UpsertOutput struct {
	Translation *dnd5e.Translation
}

// DeleteInput defines the input for deleting an entity's translations
type DeleteInput struct {
	EntityType string
	EntityID   string
}

// DeleteOutput defines the output for deleting an entity's translations
type DeleteOutput struct {
	Deleted int64
}
