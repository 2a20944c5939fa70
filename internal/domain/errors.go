package domain

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrTargetPersonNotFound = errors.New("target person not found")
	ErrTooManyTargetPeople  = errors.New("too many target people registered")
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchAlreadyExists   = errors.New("match already exists")
	ErrMatchExcluded        = errors.New("pairing is excluded by matching rules")
	ErrMatchNotPending      = errors.New("match is not pending")
	ErrInvalidPairing       = errors.New("users cannot be paired")
	ErrInvalidInput         = errors.New("invalid input")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidToken         = errors.New("invalid token")
)
