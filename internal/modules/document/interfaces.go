package document

import (
	"context"

	"instructhub/internal/domain"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
	UpdateWherePending(ctx context.Context, ids []string, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, status domain.DocumentStatus) ([]domain.Document, error)
	ListByStatus(ctx context.Context, status domain.DocumentStatus, offset, limit int) ([]domain.Document, int64, error)
}
