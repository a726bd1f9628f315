package repository

import "errors"

var (
	// ErrDuplicate indicates a unique constraint was violated at write time,
	// e.g. two registrations racing on the same email.
	ErrDuplicate = errors.New("repository: duplicate record")

	// ErrNotFound indicates a referenced row does not exist, e.g. a booking
	// insert whose service was deleted between check and write.
	ErrNotFound = errors.New("repository: not found")
)
