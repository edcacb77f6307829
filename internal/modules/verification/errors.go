package verification

import "errors"

var (
	ErrRequestNotFound = errors.New("verification request not found")
	ErrUserNotFound    = errors.New("user profile not found")
	ErrNotPending      = errors.New("verification request is not pending")
	// ErrPendingRequestExists means another review is already in flight for
	// this user. Retryable once that request is acted on.
	ErrPendingRequestExists = errors.New("a pending verification request already exists")
	ErrReasonRequired       = errors.New("rejection reason is required")
)
