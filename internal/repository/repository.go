package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when an insert or update would violate a
	// unique constraint (email, product code, product name).
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
)

// translate maps gorm errors onto the repository sentinels so callers
// never import gorm.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}
	return err
}
