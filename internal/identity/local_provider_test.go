package identity

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupLocalProvider(t *testing.T) *LocalProvider {
	t.Helper()
	dsn := fmt.Sprintf("file:identity_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	p, err := NewLocalProvider(db)
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	return p
}

func TestLocalProvider_CreateAndGet(t *testing.T) {
	p := setupLocalProvider(t)
	ctx := context.Background()

	created, err := p.CreateIdentity(ctx, "Ada@Example.com ", "strongpass", nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if !created.EmailConfirmed {
		t.Fatal("local identities are created pre-confirmed")
	}

	got, err := p.GetIdentity(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Email != created.Email {
		t.Fatalf("expected %q, got %q", created.Email, got.Email)
	}
}

func TestLocalProvider_DuplicateEmail(t *testing.T) {
	p := setupLocalProvider(t)
	ctx := context.Background()

	if _, err := p.CreateIdentity(ctx, "ada@example.com", "strongpass", nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Case and whitespace differences still collide.
	_, err := p.CreateIdentity(ctx, " ADA@example.com", "otherpass", nil)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLocalProvider_Delete(t *testing.T) {
	p := setupLocalProvider(t)
	ctx := context.Background()

	created, err := p.CreateIdentity(ctx, "ada@example.com", "strongpass", nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := p.DeleteIdentity(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := p.GetIdentity(ctx, created.ID); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
	if err := p.DeleteIdentity(ctx, created.ID); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound on second delete, got %v", err)
	}
}
