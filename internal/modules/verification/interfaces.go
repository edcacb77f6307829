package verification

import (
	"context"
	"time"

	"gorm.io/gorm"

	"instructhub/internal/domain"
)

type VerificationRepository interface {
	Create(ctx context.Context, req *domain.VerificationRequest) error
	GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error)
	Update(ctx context.Context, req *domain.VerificationRequest) error
	GetLatestByUser(ctx context.Context, userID string) (*domain.VerificationRequest, error)
	HasPending(ctx context.Context, userID string) (bool, error)
	DeleteRejectedByUser(ctx context.Context, userID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]domain.VerificationRequest, error)
	ListByStatus(ctx context.Context, status domain.VerificationStatus, offset, limit int) ([]domain.VerificationRequest, int64, error)
	DB() *gorm.DB
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	SetVerified(ctx context.Context, id string, verified bool, at *time.Time) error
}

type InstructorProfileRepository interface {
	GetByProfileID(ctx context.Context, profileID string) (*domain.InstructorProfile, error)
}

type CompanyProfileRepository interface {
	GetByProfileID(ctx context.Context, profileID string) (*domain.CompanyProfile, error)
}
