package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Stable persistence error messages. Handlers and bulk aggregates report
// these instead of raw driver output, so the strings must not change
// between driver versions.
var (
	ErrDuplicate  = errors.New("unique constraint failed on one of the fields")
	ErrForeignKey = errors.New("foreign key constraint failed")
)

// translate maps gorm's translated driver sentinels onto the stable
// message set. Unknown errors pass through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	default:
		return err
	}
}
