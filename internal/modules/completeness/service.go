package completeness

import (
	"context"
	"errors"

	"instructhub/internal/domain"
	"instructhub/internal/repository"
)

var ErrUserNotFound = errors.New("user profile not found")

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

type InstructorProfileRepository interface {
	GetByProfileID(ctx context.Context, profileID string) (*domain.InstructorProfile, error)
}

type CompanyProfileRepository interface {
	GetByProfileID(ctx context.Context, profileID string) (*domain.CompanyProfile, error)
}

type VerificationRepository interface {
	GetLatestByUser(ctx context.Context, userID string) (*domain.VerificationRequest, error)
}

// Service refetches the current rows and scores them.
type Service struct {
	profiles    ProfileRepository
	instructors InstructorProfileRepository
	companies   CompanyProfileRepository
	requests    VerificationRepository
}

func NewService(
	profiles ProfileRepository,
	instructors InstructorProfileRepository,
	companies CompanyProfileRepository,
	requests VerificationRepository,
) *Service {
	return &Service{
		profiles:    profiles,
		instructors: instructors,
		companies:   companies,
		requests:    requests,
	}
}

func (s *Service) ScoreUser(ctx context.Context, userID string) (Score, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return Score{}, ErrUserNotFound
		}
		return Score{}, err
	}

	var inst *domain.InstructorProfile
	var comp *domain.CompanyProfile
	switch profile.UserType {
	case domain.UserTypeInstructor:
		if p, err := s.instructors.GetByProfileID(ctx, userID); err == nil {
			inst = p
		} else if !errors.Is(err, repository.ErrRoleProfileNotFound) {
			return Score{}, err
		}
	case domain.UserTypeCompany:
		if p, err := s.companies.GetByProfileID(ctx, userID); err == nil {
			comp = p
		} else if !errors.Is(err, repository.ErrRoleProfileNotFound) {
			return Score{}, err
		}
	}

	latest, err := s.requests.GetLatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrVerificationRequestNotFound) {
		return Score{}, err
	}

	return ScoreProfile(profile, inst, comp, latest), nil
}
