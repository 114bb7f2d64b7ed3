// Package avatars provides the interface for avatar persistence and its
// memory, redis, sqlite and postgres stores.
package avatars

//go:generate mockgen -destination=mock/mock_repository.go -package=avatarsmock github.com/KirkDiggler/oripheon-api/internal/repositories/avatars Repository

import (
	"context"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

const (
	errAvatarNil     = "avatar cannot be nil"
	errAvatarIDEmpty = "avatar ID cannot be empty"
	errCreatedAtZero = "avatar createdAt cannot be zero"
	errLimitInvalid  = "limit must be positive"
	errOffsetInvalid = "offset cannot be negative"
)

// Repository defines the interface for avatar persistence. Every store
// returns copies; mutating a returned avatar never changes stored state.
type Repository interface {
	// Create stores a new avatar
	// Returns errors.InvalidArgument for a nil avatar, empty ID or zero createdAt
	// Returns errors.AlreadyExists if an avatar with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an avatar by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the avatar doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing avatar. The stored createdAt is kept.
	// Returns errors.InvalidArgument for a nil avatar or empty ID
	// Returns errors.NotFound if the avatar doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an avatar by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the avatar doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns avatars newest first. Ties on createdAt are broken by
	// ID descending.
	// Returns errors.InvalidArgument for a non-positive limit or negative offset
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// Store is a Repository that also owns a database handle
type Store interface {
	Repository
	Close() error
}

// CreateInput defines the input for creating an avatar
type CreateInput struct {
	Avatar *entities.Avatar
}

// CreateOutput defines the output for creating an avatar
type CreateOutput struct {
	Avatar *entities.Avatar
}

// GetInput defines the input for getting an avatar
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an avatar
type GetOutput struct {
	Avatar *entities.Avatar
}

// UpdateInput defines the input for updating an avatar
type UpdateInput struct {
	Avatar *entities.Avatar
}

// UpdateOutput defines the output for updating an avatar
type UpdateOutput struct {
	Avatar *entities.Avatar
}

// DeleteInput defines the input for deleting an avatar
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an avatar
type DeleteOutput struct{}

// ListInput defines a page of avatars
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput is one page plus the total number of stored avatars
type ListOutput struct {
	Avatars []*entities.Avatar
	Total   int
}

func validateCreate(a *entities.Avatar) error {
	if a == nil {
		return errors.InvalidArgument(errAvatarNil)
	}
	if a.ID == "" {
		return errors.InvalidArgument(errAvatarIDEmpty)
	}
	if a.CreatedAt.IsZero() {
		return errors.InvalidArgument(errCreatedAtZero)
	}
	return nil
}

func validateUpdate(a *entities.Avatar) error {
	if a == nil {
		return errors.InvalidArgument(errAvatarNil)
	}
	if a.ID == "" {
		return errors.InvalidArgument(errAvatarIDEmpty)
	}
	return nil
}

func validateList(input ListInput) error {
	if input.Limit <= 0 {
		return errors.InvalidArgument(errLimitInvalid)
	}
	if input.Offset < 0 {
		return errors.InvalidArgument(errOffsetInvalid)
	}
	return nil
}
