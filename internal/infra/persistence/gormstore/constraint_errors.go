package gormstore

import (
	"strings"

	domainerrors "personapi/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// storageFault converts a driver error into a DatabaseExecuteError, naming the violated
// constraint in the details when one can be recognized.
func storageFault(err error, action string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, action+": unique constraint violated")
	case isNotNullConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, action+": missing required person information")
	case isCheckConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, action+": check constraint violated")
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}
