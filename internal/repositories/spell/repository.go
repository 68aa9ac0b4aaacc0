// Package spell provides the interface for spell persistence
package spell

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmock github.com/vladmesh/dnd-helper-sub000/internal/repositories/spell Repository

import (
	"context"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// Repository defines the interface for spell persistence.
// Slugs are unique across spells.
type Repository interface {
	// Create stores a new spell
	// Returns errors.InvalidArgument for a missing ID
	// Returns errors.AlreadyExists if the ID or slug is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a spell by ID
	// Returns errors.NotFound if the spell doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBySlug retrieves a spell by slug
	// Returns errors.NotFound if no spell has the slug
	GetBySlug(ctx context.Context, input GetBySlugInput) (*GetBySlugOutput, error)

	// Update replaces a stored spell
	// Returns errors.NotFound if the spell doesn't exist
	// Returns errors.AlreadyExists if the new slug belongs to another spell
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a spell
	// Returns errors.NotFound if the spell doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every spell ordered by slug
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a spell
type CreateInput struct {
	Spell *dnd5e.Spell
}

// CreateOutput defines the output for creating a spell
type CreateOutput struct {
	Spell *dnd5e.Spell
}

// GetInput defines the input for getting a spell
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Spell *dnd5e.Spell
}

// GetBySlugInput defines the input for getting a spell by slug
type GetBySlugInput struct {
	Slug string
}

// GetBySlugOutput defines the output for getting a spell by slug
type GetBySlugOutput struct {
	Spell *dnd5e.Spell
}

// UpdateInput defines the input for updating a spell
type UpdateInput struct {
	Spell *dnd5e.Spell
}

// UpdateOutput defines the output for updating a spell
type UpdateOutput struct {
	Spell *dnd5e.Spell
}

// DeleteInput defines the input for deleting a spell
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a spell
type DeleteOutput struct{}

// ListInput defines the input for listing spells
type ListInput struct{}

// ListOutput defines the output for listing spells
type ListOutput struct {
	Spells []*dnd5e.Spell
}
