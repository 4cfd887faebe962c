package gormstore

import (
	"context"
	"testing"

	"personapi/internal/domain/entity"
	"personapi/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PersonRepo().Create(ctx, &entity.Person{FirstName: "John", LastName: "Doe"})
	})
	require.NoError(t, err)

	count, err := NewPersonRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PersonRepo().Create(ctx, &entity.Person{FirstName: "John", LastName: "Doe"}); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	count, err := NewPersonRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			_ = repoFactory.PersonRepo().Create(ctx, &entity.Person{FirstName: "John", LastName: "Doe"})
			panic("boom")
		})
	})

	count, err := NewPersonRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
