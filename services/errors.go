package services

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected before any store call. Handlers map
// it to 400 and report the wrapped message inline.
var ErrValidation = errors.New("validation failed")

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// MealOrphanedError reports a meal created whose item write failed
// afterwards. There is no compensating delete; the caller gets the meal
// id so the orphan can be retried or cleaned up.
type MealOrphanedError struct {
	MealID uint
	Err    error
}

func (e *MealOrphanedError) Error() string {
	return fmt.Sprintf("meal %d created but item write failed: %v", e.MealID, e.Err)
}

func (e *MealOrphanedError) Unwrap() error { return e.Err }
