package avatars

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

type memoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Avatar
}

// NewMemory creates an in-process repository. Contents are lost on exit.
func NewMemory() Repository {
	return &memoryRepository{
		store: make(map[string]*entities.Avatar),
	}
}

func (r *memoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCreate(input.Avatar); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Avatar.ID]; exists {
		return nil, errors.AlreadyExistsf("avatar with ID %s already exists", input.Avatar.ID)
	}
	r.store[input.Avatar.ID] = input.Avatar.Clone()

	return &CreateOutput{Avatar: input.Avatar.Clone()}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAvatarIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	avatar, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("avatar with ID %s not found", input.ID)
	}

	return &GetOutput{Avatar: avatar.Clone()}, nil
}

func (r *memoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdate(input.Avatar); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[input.Avatar.ID]
	if !exists {
		return nil, errors.NotFoundf("avatar with ID %s not found", input.Avatar.ID)
	}

	updated := input.Avatar.Clone()
	updated.CreatedAt = existing.CreatedAt
	r.store[updated.ID] = updated

	return &UpdateOutput{Avatar: updated.Clone()}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAvatarIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("avatar with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

func (r *memoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if err := validateList(input); err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := make([]*entities.Avatar, 0, len(r.store))
	for _, avatar := range r.store {
		all = append(all, avatar)
	}
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b *entities.Avatar) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	out := &ListOutput{Avatars: []*entities.Avatar{}, Total: len(all)}
	if input.Offset >= len(all) {
		return out, nil
	}
	end := min(input.Offset+input.Limit, len(all))
	for _, avatar := range all[input.Offset:end] {
		out.Avatars = append(out.Avatars, avatar.Clone())
	}
	return out, nil
}
