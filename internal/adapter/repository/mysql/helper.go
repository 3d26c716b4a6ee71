package mysql

import (
	"errors"

	"gorm.io/gorm"
)

// translateNotFound maps gorm's record-not-found onto the domain sentinel so
// usecases never see a gorm error type.
func translateNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
