// Package monster provides the interface for monster persistence
package monster

//go:generate mockgen -destination=mock/mock_repository.go -package=monstermock github.com/vladmesh/dnd-helper-sub000/internal/repositories/monster Repository

import (
	"context"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// Repository defines the interface for monster persistence.
// Slugs are unique across monsters.
type Repository interface {
	// Create stores a new monster
	// Returns errors.InvalidArgument for a missing ID
	// Returns errors.AlreadyExists if the ID or slug is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a monster by ID
	// Returns errors.NotFound if the monster doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBySlug retrieves a monster by slug
	// Returns errors.NotFound if no monster has the slug
	GetBySlug(ctx context.Context, input GetBySlugInput) (*GetBySlugOutput, error)

	// Update replaces a stored monster
	// Returns errors.NotFound if the monster doesn't exist
	// Returns errors.AlreadyExists if the new slug belongs to another monster
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a monster
	// Returns errors.NotFound if the monster doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every monster ordered by slug
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a monster
type CreateInput struct {
	Monster *dnd5e.Monster
}

// CreateOutput defines the output for creating a monster
type CreateOutput struct {
	Monster *dnd5e.Monster
}

// GetInput defines the input for getting a monster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *dnd5e.Monster
}

// GetBySlugInput defines the input for getting a monster by slug
type GetBySlugInput struct {
	Slug string
}

// GetBySlugOutput defines the output for getting a monster by slug
type GetBySlugOutput struct {
	Monster *dnd5e.Monster
}

// UpdateInput defines the input for updating a monster
type UpdateInput struct {
	Monster *dnd5e.Monster
}

// UpdateOutput defines the output for updating a monster
type UpdateOutput struct {
	Monster *dnd5e.Monster
}

// DeleteInput defines the input for deleting a monster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a monster
type DeleteOutput struct{}

// ListInput defines the input for listing monsters
type ListInput struct{}

// ListOutput defines the output for listing monsters
type ListOutput struct {
	Monsters []*dnd5e.Monster
}
