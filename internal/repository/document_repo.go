package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"instructhub/internal/domain"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) DB() *gorm.DB { return r.db }

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	var d domain.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) Update(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// UpdateWherePending applies one batch update to every listed document that
// is still pending. Rows in other states are left untouched.
func (r *DocumentRepository) UpdateWherePending(ctx context.Context, ids []string, updates map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Document{}).
		Where("id IN ? AND status = ?", ids, domain.DocumentStatusPending).
		Updates(updates)
	return tx.RowsAffected, tx.Error
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Document{}).Error
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID string, status domain.DocumentStatus) ([]domain.Document, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var docs []domain.Document
	err := q.Order("uploaded_at DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) ListByStatus(ctx context.Context, status domain.DocumentStatus, offset, limit int) ([]domain.Document, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Document{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []domain.Document
	if err := q.
		Order("uploaded_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&docs).Error; err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

func (r *DocumentRepository) CountByStatus(ctx context.Context, status domain.DocumentStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Document{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}
