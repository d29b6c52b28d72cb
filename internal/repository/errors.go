package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Closed error kinds exposed by the storage layer. Services match on
// these and never inspect driver-specific error shapes.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflict")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
