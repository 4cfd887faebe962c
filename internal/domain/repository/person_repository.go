// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"personapi/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for person persistence.
var (
	// ErrPersonNotFound is returned when no person exists for the requested ID.
	ErrPersonNotFound = errors.New("person not found")
)

// PersonRepository defines the storage operations for person records.
// Each call is atomic for the single record it touches.
type PersonRepository interface {
	// Create persists a new person and sets person.ID to the storage-assigned value.
	Create(ctx context.Context, person *entity.Person) error

	// FindByID retrieves a person by ID. Returns ErrPersonNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Person, error)

	// FindByIDForUpdate retrieves a person by ID and holds a write lock on it until the
	// surrounding transaction ends. Returns ErrPersonNotFound when absent.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Person, error)

	// Update overwrites the names of the person identified by person.ID.
	// Returns ErrPersonNotFound when absent.
	Update(ctx context.Context, person *entity.Person) error

	// Delete permanently removes a person. Returns ErrPersonNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored persons.
	Count(ctx context.Context) (int64, error)

	// FindAll retrieves every stored person.
	FindAll(ctx context.Context) ([]*entity.Person, error)
}
