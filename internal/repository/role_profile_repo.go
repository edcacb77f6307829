package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"instructhub/internal/domain"
)

var ErrRoleProfileNotFound = errors.New("role profile not found")

type InstructorProfileRepository struct {
	db *gorm.DB
}

func NewInstructorProfileRepository(db *gorm.DB) *InstructorProfileRepository {
	return &InstructorProfileRepository{db: db}
}

func (r *InstructorProfileRepository) Create(ctx context.Context, p *domain.InstructorProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *InstructorProfileRepository) GetByProfileID(ctx context.Context, profileID string) (*domain.InstructorProfile, error) {
	var p domain.InstructorProfile
	err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *InstructorProfileRepository) Update(ctx context.Context, p *domain.InstructorProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

type CompanyProfileRepository struct {
	db *gorm.DB
}

func NewCompanyProfileRepository(db *gorm.DB) *CompanyProfileRepository {
	return &CompanyProfileRepository{db: db}
}

func (r *CompanyProfileRepository) Create(ctx context.Context, p *domain.CompanyProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CompanyProfileRepository) GetByProfileID(ctx context.Context, profileID string) (*domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CompanyProfileRepository) Update(ctx context.Context, p *domain.CompanyProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
