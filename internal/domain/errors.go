package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrStudentNotFound = errors.New("student not found")
)

var (
	ErrSlotTaken = errors.New("slot already has an approved booking")
	ErrCooldown  = errors.New("participant already holds a recent approved booking")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
