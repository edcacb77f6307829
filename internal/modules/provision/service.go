package provision

import (
	"context"
	"errors"
	"log"
	"strings"

	"instructhub/internal/domain"
	"instructhub/internal/identity"
	"instructhub/internal/repository"
)

// Service drives account creation as a short saga across the identity
// provider and the profile store. On success exactly one identity, one
// profile and (best-effort) one role profile exist.
type Service struct {
	identities  identity.Provider
	profiles    ProfileRepository
	instructors InstructorProfileRepository
	companies   CompanyProfileRepository
}

func NewService(
	identities identity.Provider,
	profiles ProfileRepository,
	instructors InstructorProfileRepository,
	companies CompanyProfileRepository,
) *Service {
	return &Service{
		identities:  identities,
		profiles:    profiles,
		instructors: instructors,
		companies:   companies,
	}
}

// Provision creates the identity (email pre-confirmed), the base profile and
// the role profile, in that order.
//
// Failure handling per step:
//   - identity: abort, nothing to undo. Duplicate emails surface as
//     identity.ErrDuplicateEmail.
//   - profile: unwind the saga (delete the identity), report a
//     DependentWriteError. An identity without a profile must not survive.
//   - role profile: logged and swallowed; the account is provisioned in a
//     degraded state and EnsureRoleProfile repairs it later.
func (s *Service) Provision(ctx context.Context, email, password, fullName string, userType domain.UserType) (*identity.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if !userType.Valid() {
		return nil, ErrInvalidUserType
	}

	sg := &saga{}

	id, err := s.identities.CreateIdentity(ctx, email, password, map[string]string{
		"full_name": fullName,
		"user_type": string(userType),
	})
	if err != nil {
		return nil, err
	}
	sg.push(func(ctx context.Context) error {
		return s.identities.DeleteIdentity(ctx, id.ID)
	})

	profile := &domain.Profile{
		ID:            id.ID,
		Email:         id.Email,
		FullName:      fullName,
		UserType:      userType,
		EmailVerified: id.EmailConfirmed,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		compErr := sg.unwind(ctx)
		return nil, &DependentWriteError{Step: StepProfile, Err: err, CompensationErr: compErr}
	}

	if err := s.createRoleProfile(ctx, id.ID, userType); err != nil {
		// Intentionally not compensated: better a degraded account than a
		// lost signup. Callers must tolerate a profile without its role row.
		log.Printf("provision: role profile for %s not created, account is degraded: %v", id.ID, err)
	}

	return id, nil
}

func (s *Service) createRoleProfile(ctx context.Context, profileID string, userType domain.UserType) error {
	switch userType {
	case domain.UserTypeInstructor:
		return s.instructors.Create(ctx, &domain.InstructorProfile{ProfileID: profileID})
	case domain.UserTypeCompany:
		return s.companies.Create(ctx, &domain.CompanyProfile{ProfileID: profileID})
	default:
		// admins get no role profile
		return nil
	}
}

// EnsureRoleProfile is the repair flow for degraded accounts: it creates the
// missing role profile for an existing profile. No-op error when the role
// profile is already there.
func (s *Service) EnsureRoleProfile(ctx context.Context, profileID string) error {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	switch profile.UserType {
	case domain.UserTypeInstructor:
		if _, err := s.instructors.GetByProfileID(ctx, profileID); err == nil {
			return ErrRoleProfileExists
		} else if !errors.Is(err, repository.ErrRoleProfileNotFound) {
			return err
		}
		return s.instructors.Create(ctx, &domain.InstructorProfile{ProfileID: profileID})
	case domain.UserTypeCompany:
		if _, err := s.companies.GetByProfileID(ctx, profileID); err == nil {
			return ErrRoleProfileExists
		} else if !errors.Is(err, repository.ErrRoleProfileNotFound) {
			return err
		}
		return s.companies.Create(ctx, &domain.CompanyProfile{ProfileID: profileID})
	default:
		return ErrAdminHasNoRole
	}
}
