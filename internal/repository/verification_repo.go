package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"instructhub/internal/domain"
)

var ErrVerificationRequestNotFound = errors.New("verification request not found")

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) DB() *gorm.DB { return r.db }

func (r *VerificationRepository) Create(ctx context.Context, req *domain.VerificationRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *VerificationRepository) GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error) {
	var req domain.VerificationRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVerificationRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *VerificationRepository) Update(ctx context.Context, req *domain.VerificationRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// GetLatestByUser returns the most recently submitted request for a user,
// which is the authoritative one for trust gating.
func (r *VerificationRepository) GetLatestByUser(ctx context.Context, userID string) (*domain.VerificationRequest, error) {
	var req domain.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVerificationRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *VerificationRepository) HasPending(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.VerificationRequest{}).
		Where("user_id = ? AND status = ?", userID, domain.VerificationStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *VerificationRepository) DeleteRejectedByUser(ctx context.Context, userID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.VerificationStatusRejected).
		Delete(&domain.VerificationRequest{})
	return tx.RowsAffected, tx.Error
}

func (r *VerificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.VerificationRequest, error) {
	var reqs []domain.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *VerificationRepository) ListByStatus(ctx context.Context, status domain.VerificationStatus, offset, limit int) ([]domain.VerificationRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.VerificationRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reqs []domain.VerificationRequest
	if err := q.
		Order("submitted_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *VerificationRepository) CountByStatus(ctx context.Context, status domain.VerificationStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.VerificationRequest{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}
