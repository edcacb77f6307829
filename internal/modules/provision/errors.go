package provision

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUserType   = errors.New("user type must be instructor, company or admin")
	ErrInvalidEmail      = errors.New("email is required")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrAdminHasNoRole    = errors.New("admin accounts have no role profile")
	ErrRoleProfileExists = errors.New("role profile already exists")
	ErrProfileNotFound   = errors.New("profile not found")
)

// Saga step names used in DependentWriteError.
const (
	StepProfile     = "profile"
	StepRoleProfile = "role_profile"
)

// DependentWriteError reports a write that failed after the identity was
// already created. For the profile step the saga has compensated by deleting
// the identity; CompensationErr carries the outcome of that unwind.
type DependentWriteError struct {
	Step            string
	Err             error
	CompensationErr error
}

func (e *DependentWriteError) Error() string {
	if e.CompensationErr != nil {
		return fmt.Sprintf("provision: %s write failed: %v (compensation also failed: %v)", e.Step, e.Err, e.CompensationErr)
	}
	return fmt.Sprintf("provision: %s write failed: %v", e.Step, e.Err)
}

func (e *DependentWriteError) Unwrap() error { return e.Err }
