package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"instructhub/internal/domain"
	"instructhub/internal/repository"
	"instructhub/internal/storage"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MiB

// AllowedMimeTypes defines which evidence file types are accepted:
// PDF, common image formats and Word documents.
var AllowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Service owns document uploads and their review status transitions.
// Objects live in the object store; rows in the relational store. The two
// are kept consistent by compensating at the storage layer.
type Service struct {
	repo  DocumentRepository
	store storage.ObjectStore
}

func NewService(repo DocumentRepository, store storage.ObjectStore) *Service {
	return &Service{repo: repo, store: store}
}

// Upload validates the file, stores the object, then inserts the row with
// status=pending. If the row insert fails the stored object is deleted, so a
// failed upload leaves nothing behind.
func (s *Service) Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader, docType domain.DocumentType, description string) (*domain.Document, error) {
	if !docType.Valid() {
		return nil, ErrInvalidDocumentType
	}
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("document: open upload: %w", err)
	}
	defer file.Close()

	mimeType := sniffMimeType(fileHeader, file)
	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	id := uuid.NewString()
	path := fmt.Sprintf("documents/%s/%s%s", userID, id, filepath.Ext(fileHeader.Filename))

	url, err := s.store.Put(ctx, path, file, fileHeader.Size, mimeType)
	if err != nil {
		return nil, fmt.Errorf("document: store %s: %w", path, err)
	}

	doc := &domain.Document{
		ID:           id,
		UserID:       userID,
		DocumentType: docType,
		FileName:     fileHeader.Filename,
		FileURL:      url,
		StoragePath:  path,
		Size:         fileHeader.Size,
		MimeType:     mimeType,
		Description:  description,
		Status:       domain.DocumentStatusPending,
		UploadedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		// The object must not outlive a failed row insert.
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			log.Printf("document: orphaned object %s could not be removed: %v", path, delErr)
		}
		return nil, fmt.Errorf("document: save record %s: %w", id, err)
	}

	return doc, nil
}

// Review transitions a single pending document to approved or rejected.
// Approving clears any prior rejection reason.
func (s *Service) Review(ctx context.Context, documentID, reviewerID string, status domain.DocumentStatus, reason string) (*domain.Document, error) {
	if status != domain.DocumentStatusApproved && status != domain.DocumentStatusRejected {
		return nil, ErrInvalidStatus
	}
	reason = strings.TrimSpace(reason)
	if status == domain.DocumentStatusRejected && reason == "" {
		return nil, ErrReasonRequired
	}

	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	if doc.Status != domain.DocumentStatusPending {
		return nil, ErrNotPending
	}

	now := time.Now()
	doc.Status = status
	doc.ReviewedAt = &now
	doc.ReviewedBy = &reviewerID
	if status == domain.DocumentStatusApproved {
		doc.RejectionReason = ""
	} else {
		doc.RejectionReason = reason
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// BulkReviewResult is the per-id outcome of a bulk review.
type BulkReviewResult struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// BulkReview applies one transition to every listed document via a single
// store-level batch update. The contract is best-effort: ids that are missing
// or no longer pending are reported per id, never collapsed into one boolean.
func (s *Service) BulkReview(ctx context.Context, documentIDs []string, reviewerID string, status domain.DocumentStatus, reason string) ([]BulkReviewResult, error) {
	if status != domain.DocumentStatusApproved && status != domain.DocumentStatusRejected {
		return nil, ErrInvalidStatus
	}
	reason = strings.TrimSpace(reason)
	if status == domain.DocumentStatusRejected && reason == "" {
		return nil, ErrReasonRequired
	}

	docs, err := s.repo.GetByIDs(ctx, documentIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.DocumentStatus, len(docs))
	for _, d := range docs {
		byID[d.ID] = d.Status
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":           status,
		"reviewed_at":      now,
		"reviewed_by":      reviewerID,
		"rejection_reason": reason, // empty string on approve clears prior reasons
	}
	if _, err := s.repo.UpdateWherePending(ctx, documentIDs, updates); err != nil {
		return nil, err
	}

	results := make([]BulkReviewResult, 0, len(documentIDs))
	for _, id := range documentIDs {
		prior, found := byID[id]
		switch {
		case !found:
			results = append(results, BulkReviewResult{ID: id, Reason: "not found"})
		case prior != domain.DocumentStatusPending:
			results = append(results, BulkReviewResult{ID: id, Reason: "not pending"})
		default:
			results = append(results, BulkReviewResult{ID: id, OK: true})
		}
	}
	return results, nil
}

// Delete removes the stored object and then the row, owner only. When the
// object deletion fails the row stays, so no reference ever dangles without
// a cleanup path.
func (s *Service) Delete(ctx context.Context, documentID, requesterID string) error {
	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	if doc.UserID != requesterID {
		return ErrNotOwner
	}

	if err := s.store.Delete(ctx, doc.StoragePath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("document: delete object %s: %w", doc.StoragePath, err)
	}

	return s.repo.Delete(ctx, documentID)
}

func (s *Service) GetByID(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.repo.GetByID(ctx, documentID)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, ErrDocumentNotFound
	}
	return doc, err
}

func (s *Service) ListByUser(ctx context.Context, userID string, status domain.DocumentStatus) ([]domain.Document, error) {
	return s.repo.ListByUser(ctx, userID, status)
}

func (s *Service) ListByStatus(ctx context.Context, status domain.DocumentStatus, page, limit int) ([]domain.Document, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByStatus(ctx, status, (page-1)*limit, limit)
}

// sniffMimeType prefers the declared content type and falls back to
// detection from the first 512 bytes. The reader is rewound afterwards.
func sniffMimeType(fileHeader *multipart.FileHeader, file multipart.File) string {
	declared := strings.Split(fileHeader.Header.Get("Content-Type"), ";")[0]
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	detected := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}
	return detected
}
