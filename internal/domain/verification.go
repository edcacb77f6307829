package domain

import "time"

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// ProfileSnapshot is the denormalized copy of the profile taken when a
// verification request is submitted. Reviewers see what the user claimed at
// submission time even if the live profile changes afterwards.
type ProfileSnapshot struct {
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	UserType    UserType `json:"user_type"`
	Bio         string   `json:"bio,omitempty"`
	Location    string   `json:"location,omitempty"`
	Expertise   []string `json:"expertise,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Education   string   `json:"education,omitempty"`
	CompanyName string   `json:"company_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Industry    string   `json:"industry,omitempty"`
	Website     string   `json:"website,omitempty"`
}

// VerificationRequest gates the profile's is_verified trust flag.
// A user may accumulate multiple historical rows; the most recently
// submitted one is authoritative.
type VerificationRequest struct {
	ID              string             `gorm:"column:id;primaryKey" json:"id"`
	UserID          string             `gorm:"column:user_id;index" json:"user_id"`
	UserType        UserType           `gorm:"column:user_type" json:"user_type"`
	Status          VerificationStatus `gorm:"column:status;index" json:"status"`
	ProfileSnapshot ProfileSnapshot    `gorm:"column:profile_snapshot;type:json;serializer:json" json:"profile_snapshot"`
	SubmittedAt     time.Time          `gorm:"column:submitted_at" json:"submitted_at"`
	ReviewedAt      *time.Time         `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy      *string            `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	RejectionReason string             `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
}

func (VerificationRequest) TableName() string { return "verification_requests" }
