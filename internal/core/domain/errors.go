package domain

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrUserExists   = errors.New("username already taken")
	ErrEmailExists  = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")

	ErrJobNotFound      = errors.New("job not found")
	ErrPipelineNotFound = errors.New("pipeline not found")
	ErrCustomerNotFound = errors.New("customer not found")
)
