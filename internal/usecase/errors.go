package usecase

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("resource not found")
	ErrBackendNotConfigured = errors.New("data backend not configured")
	ErrUpstream             = errors.New("data backend unavailable")
)

func IsBackendNotConfigured(err error) bool {
	return errors.Is(err, ErrBackendNotConfigured)
}
