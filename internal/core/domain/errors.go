package domain

import "errors"

// Auth and workflow errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountPending     = errors.New("account pending approval")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidAction      = errors.New("invalid action")

	ErrUserExists      = errors.New("user already registered with this email")
	ErrPendingExists   = errors.New("registration already pending for this email")
	ErrUserNotFound    = errors.New("user not found")
	ErrPendingNotFound = errors.New("pending registration not found")
)

// Record errors for the care-management aggregates.
var (
	ErrChildNotFound     = errors.New("child not found")
	ErrDonationNotFound  = errors.New("donation not found")
	ErrDonorNotFound     = errors.New("donor profile not found")
	ErrDonorExists       = errors.New("donor profile already exists for this user")
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrFamilyNotFound    = errors.New("family application not found")
	ErrEventNotFound     = errors.New("schedule event not found")
)
