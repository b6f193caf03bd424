package postgres

import (
	"strings"

	domainerrors "audiobrew/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// classifyWriteError turns an insert failure into a DatabaseExecuteError whose
// details name the violated constraint kind.
func classifyWriteError(err error, action string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, action+": duplicate record")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, action+": invalid reference")
	case isCheckConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, action+": invalid value")
	case isNotNullConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, action+": missing required field")
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
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
