package impl

import (
	"context"
	"testing"

	"personapi/internal/domain/entity"
	domainerrors "personapi/internal/domain/errors"
	"personapi/internal/domain/repository"
	mockRepo "personapi/internal/mocks/repository"
	"personapi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// personServiceFixtures holds all test dependencies for person service tests.
type personServiceFixtures struct {
	t          *testing.T
	service    usecase.PersonUsecase
	personRepo *mockRepo.MockPersonRepository
	txManager  *mockRepo.MockTransactionManager
}

func createTestPersonService(t *testing.T) personServiceFixtures {
	personRepo := mockRepo.NewMockPersonRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPersonService(personRepo, txManager, newDiscardLogger())

	return personServiceFixtures{
		t:          t,
		service:    service,
		personRepo: personRepo,
		txManager:  txManager,
	}
}

// onExecute runs the transactional callback against a fresh transaction-bound repository.
func (f personServiceFixtures) onExecute(ctx context.Context, setup func(txRepo *mockRepo.MockPersonRepository)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			txRepo := mockRepo.NewMockPersonRepository(f.t)
			factory.EXPECT().PersonRepo().Return(txRepo)
			setup(txRepo)

			return fn(factory)
		})
}

func storageFault(details string) error {
	return domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), details)
}

func TestPersonService_CreatePerson_IgnoresSuppliedID(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	candidate := &entity.Person{ID: 100, FirstName: "John", LastName: "Doe"}

	fx.personRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Person) bool {
			return p.ID == 0 && p.FirstName == "John" && p.LastName == "Doe"
		})).
		Run(func(_ context.Context, p *entity.Person) { p.ID = 1 }).
		Return(nil)

	person, err := fx.service.CreatePerson(ctx, candidate)

	require.NoError(t, err)
	assert.Equal(t, &entity.Person{ID: 1, FirstName: "John", LastName: "Doe"}, person)
	assert.NotEqual(t, candidate.ID, person.ID)
	assert.Equal(t, int64(100), candidate.ID, "candidate must not be mutated")
}

func TestPersonService_CreatePerson_NilCandidate(t *testing.T) {
	fx := createTestPersonService(t)

	person, err := fx.service.CreatePerson(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, person)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPersonService_CreatePerson_StorageFault(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.personRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Person")).
		Return(storageFault("failed to create person"))

	person, err := fx.service.CreatePerson(ctx, &entity.Person{FirstName: "John", LastName: "Doe"})

	require.Error(t, err)
	assert.Nil(t, person)
	assert.True(t, domainerrors.IsStorageFault(err))
	assert.False(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_CreatePersons_Success(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	candidates := []*entity.Person{
		{FirstName: "John", LastName: "Doe"},
		{FirstName: "Mary", LastName: "Shelly"},
		{FirstName: "Patrick", LastName: "Bateman"},
	}

	nextID := int64(0)
	fx.personRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Person")).
		Run(func(_ context.Context, p *entity.Person) {
			nextID++
			p.ID = nextID
		}).
		Return(nil).
		Times(3)

	created, err := fx.service.CreatePersons(ctx, candidates)

	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, person := range created {
		assert.Equal(t, int64(i+1), person.ID)
		assert.Equal(t, candidates[i].FirstName, person.FirstName)
		assert.Equal(t, candidates[i].LastName, person.LastName)
	}
}

func TestPersonService_CreatePersons_RejectsBeforeWriting(t *testing.T) {
	tests := []struct {
		name       string
		candidates []*entity.Person
	}{
		{name: "empty batch", candidates: nil},
		{name: "nil element", candidates: []*entity.Person{{FirstName: "John", LastName: "Doe"}, nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPersonService(t)

			created, err := fx.service.CreatePersons(context.Background(), tt.candidates)

			require.Error(t, err)
			assert.Nil(t, created)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPersonService_CreatePersons_StopsOnFault(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.personRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Person) bool { return p.FirstName == "John" })).
		Run(func(_ context.Context, p *entity.Person) { p.ID = 1 }).
		Return(nil).
		Once()
	fx.personRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Person) bool { return p.FirstName == "Mary" })).
		Return(storageFault("failed to create person")).
		Once()

	created, err := fx.service.CreatePersons(ctx, []*entity.Person{
		{FirstName: "John", LastName: "Doe"},
		{FirstName: "Mary", LastName: "Shelly"},
		{FirstName: "Patrick", LastName: "Bateman"},
	})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domainerrors.IsStorageFault(err))
	assert.Contains(t, err.Error(), "failed to create person 2 of 3")
}

func TestPersonService_GetPerson(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestPersonService(t)
		ctx := context.Background()
		stored := &entity.Person{ID: 3, FirstName: "John", LastName: "Doe"}

		fx.personRepo.EXPECT().FindByID(ctx, int64(3)).Return(stored, nil)

		person, err := fx.service.GetPerson(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, stored, person)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestPersonService(t)
		ctx := context.Background()

		fx.personRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrPersonNotFound)

		person, err := fx.service.GetPerson(ctx, 3)

		require.Error(t, err)
		assert.Nil(t, person)
		assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
		assert.False(t, domainerrors.IsStorageFault(err))
	})

	t.Run("non-positive id never reaches storage", func(t *testing.T) {
		fx := createTestPersonService(t)

		_, err := fx.service.GetPerson(context.Background(), 0)

		assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
	})

	t.Run("storage fault", func(t *testing.T) {
		fx := createTestPersonService(t)
		ctx := context.Background()

		fx.personRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, storageFault("failed to find person by ID"))

		_, err := fx.service.GetPerson(ctx, 3)

		require.Error(t, err)
		assert.True(t, domainerrors.IsStorageFault(err))
		assert.False(t, errors.Is(err, domainerrors.ErrPersonNotFound))
	})
}

func TestPersonService_UpdatePerson_MergesSuppliedNames(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().
			FindByIDForUpdate(ctx, int64(1)).
			Return(&entity.Person{ID: 1, FirstName: "John", LastName: "Doe"}, nil)
		txRepo.EXPECT().
			Update(ctx, &entity.Person{ID: 1, FirstName: "Jane", LastName: "Doe"}).
			Return(nil)
	})

	person, err := fx.service.UpdatePerson(ctx, &entity.Person{ID: 42, FirstName: "Jane"}, 1)

	require.NoError(t, err)
	assert.Equal(t, &entity.Person{ID: 1, FirstName: "Jane", LastName: "Doe"}, person)
}

func TestPersonService_UpdatePerson_ReplacesBothNames(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().
			FindByIDForUpdate(ctx, int64(5)).
			Return(&entity.Person{ID: 5, FirstName: "John", LastName: "Doe"}, nil)
		txRepo.EXPECT().
			Update(ctx, &entity.Person{ID: 5, FirstName: "Doe", LastName: "John"}).
			Return(nil)
	})

	person, err := fx.service.UpdatePerson(ctx, &entity.Person{FirstName: "Doe", LastName: "John"}, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), person.ID)
	assert.Equal(t, "Doe", person.FirstName)
	assert.Equal(t, "John", person.LastName)
}

func TestPersonService_UpdatePerson_NotFound(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().FindByIDForUpdate(ctx, int64(100)).Return(nil, repository.ErrPersonNotFound)
	})

	person, err := fx.service.UpdatePerson(ctx, &entity.Person{FirstName: "John", LastName: "Doe"}, 100)

	require.Error(t, err)
	assert.Nil(t, person)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))

	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "No person with the id 100 exists.", appErr.Details())
}

func TestPersonService_UpdatePerson_RemovedBeforeWrite(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().
			FindByIDForUpdate(ctx, int64(1)).
			Return(&entity.Person{ID: 1, FirstName: "John", LastName: "Doe"}, nil)
		txRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Person")).
			Return(repository.ErrPersonNotFound)
	})

	_, err := fx.service.UpdatePerson(ctx, &entity.Person{FirstName: "Jane"}, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_UpdatePerson_StorageFault(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().
			FindByIDForUpdate(ctx, int64(1)).
			Return(&entity.Person{ID: 1, FirstName: "John", LastName: "Doe"}, nil)
		txRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Person")).
			Return(storageFault("failed to update person"))
	})

	_, err := fx.service.UpdatePerson(ctx, &entity.Person{FirstName: "Jane"}, 1)

	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageFault(err))
	assert.False(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_UpdatePerson_RejectsNilCandidate(t *testing.T) {
	fx := createTestPersonService(t)

	_, err := fx.service.UpdatePerson(context.Background(), nil, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPersonService_UpdatePerson_RejectsCandidateWithoutNames(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().
			FindByIDForUpdate(ctx, int64(1)).
			Return(&entity.Person{ID: 1, FirstName: "John", LastName: "Doe"}, nil)
	})

	_, err := fx.service.UpdatePerson(ctx, &entity.Person{ID: 1}, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_UpdatePerson_MissingIDWinsOverEmptyCandidate(t *testing.T) {
	tests := []struct {
		name  string
		id    int64
		setup func(ctx context.Context, fx personServiceFixtures)
	}{
		{
			name: "unknown id",
			id:   100,
			setup: func(ctx context.Context, fx personServiceFixtures) {
				fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
					txRepo.EXPECT().FindByIDForUpdate(ctx, int64(100)).Return(nil, repository.ErrPersonNotFound)
				})
			},
		},
		{
			name:  "non-positive id",
			id:    0,
			setup: func(context.Context, personServiceFixtures) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPersonService(t)
			ctx := context.Background()
			tt.setup(ctx, fx)

			person, err := fx.service.UpdatePerson(ctx, &entity.Person{}, tt.id)

			assert.Nil(t, person)
			assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
			assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPersonService_DeletePerson_ReturnsRemovedRecord(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	stored := &entity.Person{ID: 2, FirstName: "Mary", LastName: "Shelly"}
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().FindByIDForUpdate(ctx, int64(2)).Return(stored, nil)
		txRepo.EXPECT().Delete(ctx, int64(2)).Return(nil)
	})

	person, err := fx.service.DeletePerson(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, stored, person)
}

func TestPersonService_DeletePerson_NotFound(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().FindByIDForUpdate(ctx, int64(100)).Return(nil, repository.ErrPersonNotFound)
	})

	person, err := fx.service.DeletePerson(ctx, 100)

	require.Error(t, err)
	assert.Nil(t, person)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_DeletePerson_ConcurrentRemoval(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().
			FindByIDForUpdate(ctx, int64(2)).
			Return(&entity.Person{ID: 2, FirstName: "Mary", LastName: "Shelly"}, nil)
		txRepo.EXPECT().Delete(ctx, int64(2)).Return(repository.ErrPersonNotFound)
	})

	person, err := fx.service.DeletePerson(ctx, 2)

	assert.Nil(t, person)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_DeletePerson_StorageFault(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.onExecute(ctx, func(txRepo *mockRepo.MockPersonRepository) {
		txRepo.EXPECT().FindByIDForUpdate(ctx, int64(2)).Return(nil, storageFault("failed to find person by ID"))
	})

	_, err := fx.service.DeletePerson(ctx, 2)

	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageFault(err))
	assert.False(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_CountPersons(t *testing.T) {
	fx := createTestPersonService(t)

	ctx := context.Background()
	fx.personRepo.EXPECT().Count(ctx).Return(int64(3), nil).Once()
	fx.personRepo.EXPECT().Count(ctx).Return(int64(0), storageFault("failed to count persons")).Once()

	count, err := fx.service.CountPersons(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	_, err = fx.service.CountPersons(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageFault(err))
}

func TestPersonService_ListPersons(t *testing.T) {
	t.Run("empty storage yields empty slice", func(t *testing.T) {
		fx := createTestPersonService(t)
		ctx := context.Background()

		fx.personRepo.EXPECT().FindAll(ctx).Return(nil, nil)

		persons, err := fx.service.ListPersons(ctx)

		require.NoError(t, err)
		assert.NotNil(t, persons)
		assert.Empty(t, persons)
	})

	t.Run("returns stored persons", func(t *testing.T) {
		fx := createTestPersonService(t)
		ctx := context.Background()
		stored := []*entity.Person{
			{ID: 1, FirstName: "Jane", LastName: "Doe"},
			{ID: 3, FirstName: "Patrick", LastName: "Bateman"},
		}

		fx.personRepo.EXPECT().FindAll(ctx).Return(stored, nil)

		persons, err := fx.service.ListPersons(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, persons)
	})

	t.Run("storage fault", func(t *testing.T) {
		fx := createTestPersonService(t)
		ctx := context.Background()

		fx.personRepo.EXPECT().FindAll(ctx).Return(nil, storageFault("failed to find persons"))

		persons, err := fx.service.ListPersons(ctx)

		require.Error(t, err)
		assert.Nil(t, persons)
		assert.True(t, domainerrors.IsStorageFault(err))
	})
}
