package domain

import "time"

type UserType string

const (
	UserTypeInstructor UserType = "instructor"
	UserTypeCompany    UserType = "company"
	UserTypeAdmin      UserType = "admin"
)

func (t UserType) Valid() bool {
	return t == UserTypeInstructor || t == UserTypeCompany || t == UserTypeAdmin
}

// Profile is the platform's base user record. Its ID equals the identity id
// issued by the external identity provider, so a Profile exists iff its
// identity was successfully provisioned.
type Profile struct {
	ID            string     `gorm:"column:id;primaryKey" json:"id"`
	Email         string     `gorm:"column:email;uniqueIndex" json:"email" validate:"required,email"`
	FullName      string     `gorm:"column:full_name" json:"full_name"`
	UserType      UserType   `gorm:"column:user_type" json:"user_type"`
	EmailVerified bool       `gorm:"column:email_verified" json:"email_verified"`
	IsVerified    bool       `gorm:"column:is_verified" json:"is_verified"`
	VerifiedAt    *time.Time `gorm:"column:verified_at" json:"verified_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// InstructorProfile is the role-specific attribute set for instructors,
// keyed 1:1 by profile id. Absence does not invalidate the base Profile.
type InstructorProfile struct {
	ProfileID      string    `gorm:"column:profile_id;primaryKey" json:"profile_id"`
	Bio            string    `gorm:"column:bio" json:"bio,omitempty"`
	Location       string    `gorm:"column:location" json:"location,omitempty"`
	Expertise      []string  `gorm:"column:expertise;type:json;serializer:json" json:"expertise,omitempty"`
	HourlyRate     int64     `gorm:"column:hourly_rate" json:"hourly_rate,omitempty"`
	Availability   string    `gorm:"column:availability" json:"availability,omitempty"`
	Experience     string    `gorm:"column:experience" json:"experience,omitempty"`
	Education      string    `gorm:"column:education" json:"education,omitempty"`
	Certifications []string  `gorm:"column:certifications;type:json;serializer:json" json:"certifications,omitempty"`
	Languages      []string  `gorm:"column:languages;type:json;serializer:json" json:"languages,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (InstructorProfile) TableName() string { return "instructor_profiles" }

// CompanyProfile is the role-specific attribute set for hiring companies.
type CompanyProfile struct {
	ProfileID   string    `gorm:"column:profile_id;primaryKey" json:"profile_id"`
	CompanyName string    `gorm:"column:company_name" json:"company_name,omitempty"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	Industry    string    `gorm:"column:industry" json:"industry,omitempty"`
	Website     string    `gorm:"column:website" json:"website,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CompanyProfile) TableName() string { return "company_profiles" }
