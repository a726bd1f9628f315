package usecase

import "errors"

// Sentinel errors returned by the use case layer. Handlers map them to HTTP
// status codes; anything else is treated as an internal failure.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrLoyaltyNotFound    = errors.New("loyalty card not found")
)
