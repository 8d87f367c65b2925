package tabgen

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName indicates a column was declared without a name.
	ErrEmptyName = errors.New("tabgen: column name must be a non-empty string")
	// ErrDuplicateColumn indicates the column name is already taken.
	ErrDuplicateColumn = errors.New("tabgen: column name already in use")
	// ErrInvalidBounds indicates min exceeds max.
	ErrInvalidBounds = errors.New("tabgen: min must not exceed max")
	// ErrNoCategories indicates an empty category set.
	ErrNoCategories = errors.New("tabgen: no categories provided")
	// ErrNullProbability indicates a null probability outside 0-100.
	ErrNullProbability = errors.New("tabgen: null probability not in range 0-100")
	// ErrBadDate indicates an unparseable date string.
	ErrBadDate = errors.New("tabgen: invalid date")

	// ErrNoColumns indicates Generate was called on an empty schema.
	ErrNoColumns = errors.New("tabgen: no columns defined")
	// ErrNegativeRows indicates a negative row count.
	ErrNegativeRows = errors.New("tabgen: row count must be non-negative")
)

// ValidationError reports a rejected column declaration. The builder is
// left exactly as it was before the call. Err wraps one of the sentinel
// errors above, so errors.Is works on the returned value.
type ValidationError struct {
	Column string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validationErr(column string, err error) error {
	return &ValidationError{Column: column, Err: err}
}
