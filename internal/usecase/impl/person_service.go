// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "personapi/internal/delivery/context"
	"personapi/internal/domain/entity"
	domainerrors "personapi/internal/domain/errors"
	"personapi/internal/domain/repository"
	"personapi/internal/usecase"

	"github.com/pkg/errors"
)

// personService implements the PersonUsecase interface.
type personService struct {
	personRepo repository.PersonRepository
	txManager  repository.TransactionManager
	logger     *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(
	personRepo repository.PersonRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PersonUsecase {
	return &personService{
		personRepo: personRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *personService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePerson stores a copy of candidate under a fresh storage-assigned ID.
func (srv *personService) CreatePerson(ctx context.Context, candidate *entity.Person) (*entity.Person, error) {
	if candidate == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "person is required")
	}

	// The caller's ID is never honored; storage assigns one.
	person := &entity.Person{
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
	}

	if err := srv.personRepo.Create(ctx, person); err != nil {
		return nil, errors.Wrap(err, "failed to create person")
	}

	srv.log(ctx).Debug("Person created", slog.Int64("id", person.ID))

	return person, nil
}

// CreatePersons creates every candidate in order.
func (srv *personService) CreatePersons(ctx context.Context, candidates []*entity.Person) ([]*entity.Person, error) {
	if len(candidates) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one person is required")
	}
	for i, candidate := range candidates {
		if candidate == nil {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "person at index %d is missing", i)
		}
	}

	created := make([]*entity.Person, 0, len(candidates))
	for i, candidate := range candidates {
		person, err := srv.CreatePerson(ctx, candidate)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create person %d of %d", i+1, len(candidates))
		}
		created = append(created, person)
	}

	return created, nil
}

// GetPerson retrieves a person by ID.
func (srv *personService) GetPerson(ctx context.Context, id int64) (*entity.Person, error) {
	if id <= 0 {
		return nil, personNotFound(id)
	}

	person, err := srv.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, id, "failed to find person")
	}

	return person, nil
}

// UpdatePerson merges the non-empty names of candidate onto the stored person.
// The row stays locked from lookup to write, so concurrent updates of one id apply in sequence.
// A missing id is reported before a candidate without names.
func (srv *personService) UpdatePerson(ctx context.Context, candidate *entity.Person, id int64) (*entity.Person, error) {
	if candidate == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "person is required")
	}
	if id <= 0 {
		return nil, personNotFound(id)
	}

	var updated *entity.Person

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.PersonRepo()

		existing, err := personRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, id, "failed to find person")
		}

		if candidate.FirstName == "" && candidate.LastName == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "first name or last name is required")
		}
		mergePerson(existing, candidate)

		if err := personRepo.Update(ctx, existing); err != nil {
			return lookupError(err, id, "failed to save person")
		}
		updated = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update person")
	}

	srv.log(ctx).Debug("Person updated", slog.Int64("id", updated.ID))

	return updated, nil
}

// DeletePerson removes the stored person and returns it as it was before removal.
func (srv *personService) DeletePerson(ctx context.Context, id int64) (*entity.Person, error) {
	if id <= 0 {
		return nil, personNotFound(id)
	}

	var removed *entity.Person

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.PersonRepo()

		existing, err := personRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, id, "failed to find person")
		}

		if err := personRepo.Delete(ctx, id); err != nil {
			return lookupError(err, id, "failed to remove person")
		}
		removed = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete person")
	}

	srv.log(ctx).Debug("Person deleted", slog.Int64("id", removed.ID))

	return removed, nil
}

// CountPersons returns the number of stored persons.
func (srv *personService) CountPersons(ctx context.Context) (int64, error) {
	count, err := srv.personRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count persons")
	}

	return count, nil
}

// ListPersons returns every stored person.
func (srv *personService) ListPersons(ctx context.Context) ([]*entity.Person, error) {
	persons, err := srv.personRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}
	if persons == nil {
		persons = []*entity.Person{}
	}

	return persons, nil
}

// mergePerson copies the names supplied by candidate onto target. ID is never touched.
func mergePerson(target, candidate *entity.Person) {
	if candidate.FirstName != "" {
		target.FirstName = candidate.FirstName
	}
	if candidate.LastName != "" {
		target.LastName = candidate.LastName
	}
}

func personNotFound(id int64) error {
	return errors.WithStack(domainerrors.ErrPersonNotFound.WithDetails(
		fmt.Sprintf("No person with the id %d exists.", id),
	))
}

// lookupError translates storage absence into ErrPersonNotFound and wraps anything else untouched.
func lookupError(err error, id int64, message string) error {
	if errors.Is(err, repository.ErrPersonNotFound) {
		return personNotFound(id)
	}

	return errors.Wrap(err, message)
}
