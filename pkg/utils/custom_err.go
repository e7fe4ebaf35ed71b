package utils

import "errors"

var (
	ErrValidation                = errors.New("validation error")
	ErrNotFound                  = errors.New("resource not found")
	ErrForbidden                 = errors.New("forbidden")
	ErrUnauthenticated           = errors.New("unauthenticated")
	ErrInvalidTransition         = errors.New("invalid status transition")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrInvalidSignature          = errors.New("invalid signature")
	ErrEmptyCart                 = errors.New("cart is empty")
	ErrNoRemainingDays           = errors.New("no remaining days on plan")
	ErrEmailAlreadyExists        = errors.New("email already registered")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrDatabaseError             = errors.New("database error")
)
