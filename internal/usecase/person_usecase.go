package usecase

import (
	"context"

	"personapi/internal/domain/entity"
)

// PersonUsecase defines the person record operations exposed to delivery layers.
//
// Absence is reported as domainerrors.ErrPersonNotFound, missing input as
// domainerrors.ErrValidationFailed and storage faults as a
// domainerrors.DatabaseExecuteError. The three never overlap.
type PersonUsecase interface {
	// CreatePerson stores a copy of candidate under a fresh storage-assigned ID.
	// Any ID on candidate is ignored.
	CreatePerson(ctx context.Context, candidate *entity.Person) (*entity.Person, error)

	// CreatePersons creates every candidate in order. Records created before a
	// failure stay persisted.
	CreatePersons(ctx context.Context, candidates []*entity.Person) ([]*entity.Person, error)

	// GetPerson retrieves a person by ID.
	GetPerson(ctx context.Context, id int64) (*entity.Person, error)

	// UpdatePerson merges the non-empty names of candidate onto the person stored under id.
	UpdatePerson(ctx context.Context, candidate *entity.Person, id int64) (*entity.Person, error)

	// DeletePerson removes the person stored under id and returns it as it was before removal.
	DeletePerson(ctx context.Context, id int64) (*entity.Person, error)

	// CountPersons returns the number of stored persons.
	CountPersons(ctx context.Context) (int64, error)

	// ListPersons returns every stored person.
	ListPersons(ctx context.Context) ([]*entity.Person, error)
}
