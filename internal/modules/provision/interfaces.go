package provision

import (
	"context"

	"instructhub/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

type InstructorProfileRepository interface {
	Create(ctx context.Context, p *domain.InstructorProfile) error
	GetByProfileID(ctx context.Context, profileID string) (*domain.InstructorProfile, error)
}

type CompanyProfileRepository interface {
	Create(ctx context.Context, p *domain.CompanyProfile) error
	GetByProfileID(ctx context.Context, profileID string) (*domain.CompanyProfile, error)
}
