package document

import "instructhub/internal/domain"

type ReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Reason string `json:"reason"`
}

type BulkReviewRequest struct {
	DocumentIDs []string `json:"document_ids" binding:"required,min=1"`
	Status      string   `json:"status" binding:"required,oneof=approved rejected"`
	Reason      string   `json:"reason"`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type ListResponse struct {
	Documents []domain.Document `json:"documents"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}
