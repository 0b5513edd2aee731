package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("store: activity not found")
	// ErrDuplicateID matches every *DuplicateIDError. It signals an id
	// generation bug upstream, never a user mistake.
	ErrDuplicateID = errors.New("store: duplicate activity id")
	// ErrEmptyID is returned when adding an activity without an id.
	ErrEmptyID = errors.New("store: activity id required")
)

// NotFoundError names the id that was not present.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateIDError names the id that was already taken.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateID, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}
