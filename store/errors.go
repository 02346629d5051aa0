package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id or name yields no row.
// Credential mismatches surface as ErrNotFound too, so a caller cannot
// tell which half of a login attempt failed.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected write. It is returned before
// anything touches the database or the disk.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// translate maps gorm's record-not-found onto the package sentinel and
// wraps anything else as a storage failure.
func translate(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
