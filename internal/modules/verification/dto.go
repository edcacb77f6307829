package verification

import "instructhub/internal/domain"

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type ListResponse struct {
	Requests []domain.VerificationRequest `json:"requests"`
	Total    int64                        `json:"total"`
	Page     int                          `json:"page"`
	Limit    int                          `json:"limit"`
}
