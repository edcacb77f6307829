package domain

import "time"

type DocumentType string

const (
	DocumentTypeCertificate     DocumentType = "certificate"
	DocumentTypePortfolio       DocumentType = "portfolio"
	DocumentTypeBusinessLicense DocumentType = "business_license"
	DocumentTypeIdentityCard    DocumentType = "identity_card"
	DocumentTypeOther           DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeCertificate, DocumentTypePortfolio, DocumentTypeBusinessLicense,
		DocumentTypeIdentityCard, DocumentTypeOther:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// Document is an uploaded evidence file with its own review status,
// independent of (but informing) the verification request lifecycle.
type Document struct {
	ID              string         `gorm:"column:id;primaryKey" json:"id"`
	UserID          string         `gorm:"column:user_id;index" json:"user_id"`
	DocumentType    DocumentType   `gorm:"column:document_type" json:"document_type"`
	FileName        string         `gorm:"column:file_name" json:"file_name"`
	FileURL         string         `gorm:"column:file_url" json:"file_url"`
	StoragePath     string         `gorm:"column:storage_path" json:"-"`
	Size            int64          `gorm:"column:size" json:"size"`
	MimeType        string         `gorm:"column:mime_type" json:"mime_type"`
	Description     string         `gorm:"column:description" json:"description,omitempty"`
	Status          DocumentStatus `gorm:"column:status;index" json:"status"`
	RejectionReason string         `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	UploadedAt      time.Time      `gorm:"column:uploaded_at" json:"uploaded_at"`
	ReviewedAt      *time.Time     `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy      *string        `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
}

func (Document) TableName() string { return "documents" }
