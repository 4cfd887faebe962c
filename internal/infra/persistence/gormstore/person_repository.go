package gormstore

import (
	"context"

	"personapi/internal/domain/entity"
	"personapi/internal/domain/repository"
	"personapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// personRepository implements the domain.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// Create inserts a new row and writes the storage-assigned ID back onto person.
func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)
	personM.ID = 0

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		return storageFault(err, "failed to create person")
	}

	person.ID = personM.ID

	return nil
}

// FindByID retrieves a single person by ID.
func (repo *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a single person by ID with SELECT ... FOR UPDATE.
// SQLite has no row locks; its single connection already serializes writers.
func (repo *personRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Person, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *personRepository) findByID(db *gorm.DB, id int64) (*entity.Person, error) {
	var personM model.PersonModel

	err := db.Where("id = ?", id).First(&personM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, storageFault(err, "failed to find person by ID")
	}

	return toPersonDomain(&personM), nil
}

// Update overwrites both names of the row identified by person.ID.
func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", person.ID).
		// A map keeps empty strings in the SET clause.
		Updates(map[string]any{
			"first_name": person.FirstName,
			"last_name":  person.LastName,
		})
	if result.Error != nil {
		return storageFault(result.Error, "failed to update person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

// Delete removes the row identified by id.
func (repo *personRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PersonModel{})
	if result.Error != nil {
		return storageFault(result.Error, "failed to delete person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

// Count returns the number of stored rows.
func (repo *personRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.PersonModel{}).Count(&count).Error; err != nil {
		return 0, storageFault(err, "failed to count persons")
	}

	return count, nil
}

// FindAll returns every stored person ordered by ID.
func (repo *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	var personsM []*model.PersonModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&personsM).Error; err != nil {
		return nil, storageFault(err, "failed to find persons")
	}

	persons := make([]*entity.Person, 0, len(personsM))
	for _, personM := range personsM {
		persons = append(persons, toPersonDomain(personM))
	}

	return persons, nil
}

// --- Mapper Functions ---

func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}
}

func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}
}
