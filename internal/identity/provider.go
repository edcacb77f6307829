// Package identity wraps account creation, lookup and deletion against the
// external identity service. Credential storage and session issuance live
// entirely on the provider side; this core only holds the opaque identity id.
package identity

import (
	"context"
	"errors"
)

var (
	ErrDuplicateEmail   = errors.New("identity: email already registered")
	ErrIdentityNotFound = errors.New("identity: not found")
)

// Identity is the externally managed authentication record.
type Identity struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// Provider is the adapter contract consumed by the provisioning saga.
// CreateIdentity must create the account with the email pre-confirmed
// (administrator-driven provisioning, no confirmation mail loop).
type Provider interface {
	CreateIdentity(ctx context.Context, email, password string, metadata map[string]string) (*Identity, error)
	GetIdentity(ctx context.Context, id string) (*Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
}
