package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"instructhub/internal/domain"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) DB() *gorm.DB { return r.db }

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// SetVerified flips the trust flag for a profile. Idempotent: re-running the
// same update after a partial failure converges on the same state.
func (r *ProfileRepository) SetVerified(ctx context.Context, id string, verified bool, at *time.Time) error {
	tx := r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified": verified,
			"verified_at": at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Profile{}).Count(&total).Error
	return total, err
}

func (r *ProfileRepository) CountVerified(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("is_verified = ?", true).
		Count(&total).Error
	return total, err
}
