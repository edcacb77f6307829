package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LocalProvider keeps identities in the relational store. Used for local
// development and tests where no external identity service is reachable.
type LocalProvider struct {
	db *gorm.DB
}

type identityRow struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Email          string    `gorm:"column:email;uniqueIndex"`
	PasswordHash   string    `gorm:"column:password_hash"`
	EmailConfirmed bool      `gorm:"column:email_confirmed"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (identityRow) TableName() string { return "identities" }

func NewLocalProvider(db *gorm.DB) (*LocalProvider, error) {
	if err := db.AutoMigrate(&identityRow{}); err != nil {
		return nil, err
	}
	return &LocalProvider{db: db}, nil
}

func (p *LocalProvider) CreateIdentity(ctx context.Context, email, password string, metadata map[string]string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := p.db.WithContext(ctx).Model(&identityRow{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	row := identityRow{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordHash:   string(hash),
		EmailConfirmed: true,
	}
	if err := p.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &Identity{ID: row.ID, Email: row.Email, EmailConfirmed: true}, nil
}

func (p *LocalProvider) GetIdentity(ctx context.Context, id string) (*Identity, error) {
	var row identityRow
	err := p.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIdentityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Identity{ID: row.ID, Email: row.Email, EmailConfirmed: row.EmailConfirmed}, nil
}

func (p *LocalProvider) DeleteIdentity(ctx context.Context, id string) error {
	tx := p.db.WithContext(ctx).Where("id = ?", id).Delete(&identityRow{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrIdentityNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
