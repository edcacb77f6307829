package verification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"instructhub/internal/domain"
	"instructhub/internal/repository"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:verification_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Profile{},
		&domain.InstructorProfile{},
		&domain.CompanyProfile{},
		&domain.VerificationRequest{},
	); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	svc := NewService(
		repository.NewVerificationRepository(db),
		repository.NewProfileRepository(db),
		repository.NewInstructorProfileRepository(db),
		repository.NewCompanyProfileRepository(db),
	)
	return svc, db
}

func seedInstructor(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	profile := &domain.Profile{
		ID:       id,
		Email:    id + "@example.com",
		FullName: "Test Instructor",
		UserType: domain.UserTypeInstructor,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	inst := &domain.InstructorProfile{
		ProfileID: id,
		Bio:       "Teaches Go",
		Location:  "Almaty",
		Expertise: []string{"go", "sql"},
	}
	if err := db.Create(inst).Error; err != nil {
		t.Fatalf("failed to seed instructor profile: %v", err)
	}
}

func loadProfile(t *testing.T, db *gorm.DB, id string) *domain.Profile {
	t.Helper()
	var p domain.Profile
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	return &p
}

func TestSubmit_CreatesPendingWithSnapshot(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	req, err := svc.Submit(ctx, "u1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if req.Status != domain.VerificationStatusPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
	if req.SubmittedAt.IsZero() {
		t.Fatal("expected submitted_at to be stamped")
	}
	if req.ProfileSnapshot.Bio != "Teaches Go" || req.ProfileSnapshot.Location != "Almaty" {
		t.Fatalf("expected role fields in snapshot, got %+v", req.ProfileSnapshot)
	}
	if req.ProfileSnapshot.UserType != domain.UserTypeInstructor {
		t.Fatalf("expected instructor snapshot, got %s", req.ProfileSnapshot.UserType)
	}
}

func TestSubmit_RejectsSecondPending(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	if _, err := svc.Submit(ctx, "u1"); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	_, err := svc.Submit(ctx, "u1")
	if !errors.Is(err, ErrPendingRequestExists) {
		t.Fatalf("expected ErrPendingRequestExists, got %v", err)
	}
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Submit(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestApprove_FlipsTrustFlag(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	req, err := svc.Submit(ctx, "u1")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	approved, err := svc.Approve(ctx, req.ID, "admin-1")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != domain.VerificationStatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}
	if approved.ReviewedAt == nil || approved.ReviewedBy == nil || *approved.ReviewedBy != "admin-1" {
		t.Fatal("expected reviewer stamps")
	}

	profile := loadProfile(t, db, "u1")
	if !profile.IsVerified {
		t.Fatal("expected profile.is_verified = true after approval")
	}
	if profile.VerifiedAt == nil {
		t.Fatal("expected verified_at to be set")
	}
}

func TestApprove_NotPending(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	req, _ := svc.Submit(ctx, "u1")
	if _, err := svc.Approve(ctx, req.ID, "admin-1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	_, err := svc.Approve(ctx, req.ID, "admin-2")
	if !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}
}

func TestApprove_UnknownRequest(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Approve(context.Background(), "missing", "admin-1")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestReject_LeavesTrustFlagAlone(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	req, _ := svc.Submit(ctx, "u1")

	rejected, err := svc.Reject(ctx, req.ID, "admin-1", "blurry documents")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != domain.VerificationStatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if rejected.RejectionReason != "blurry documents" {
		t.Fatalf("expected reason to be recorded, got %q", rejected.RejectionReason)
	}

	profile := loadProfile(t, db, "u1")
	if profile.IsVerified {
		t.Fatal("reject must not touch is_verified")
	}
}

func TestReject_RequiresReason(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	req, _ := svc.Submit(ctx, "u1")

	_, err := svc.Reject(ctx, req.ID, "admin-1", "  ")
	if !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
}

func TestResubmit_RemovesRejectedRows(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	first, _ := svc.Submit(ctx, "u1")
	if _, err := svc.Reject(ctx, first.ID, "admin-1", "incomplete"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	if _, err := svc.Resubmit(ctx, "u1"); err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}

	var rows []domain.VerificationRequest
	if err := db.Where("user_id = ?", "u1").Find(&rows).Error; err != nil {
		t.Fatalf("failed to list rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row after resubmit, got %d", len(rows))
	}
	if rows[0].Status != domain.VerificationStatusPending {
		t.Fatalf("expected the surviving row to be pending, got %s", rows[0].Status)
	}
}

func TestResubmit_WithoutRejectedRowsStillSubmits(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	req, err := svc.Resubmit(ctx, "u1")
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if req.Status != domain.VerificationStatusPending {
		t.Fatalf("expected pending, got %s", req.Status)
	}
}

func TestResubmit_AfterApprovalKeepsTrustFlag(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	first, _ := svc.Submit(ctx, "u1")
	if _, err := svc.Approve(ctx, first.ID, "admin-1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if _, err := svc.Resubmit(ctx, "u1"); err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}

	profile := loadProfile(t, db, "u1")
	if !profile.IsVerified {
		t.Fatal("resubmission must not revoke an earlier approval")
	}

	var rows []domain.VerificationRequest
	if err := db.Where("user_id = ?", "u1").Find(&rows).Error; err != nil {
		t.Fatalf("failed to list rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected approved + pending rows, got %d", len(rows))
	}
}

func TestReconcile_RepairsDriftedFlag(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	req, _ := svc.Submit(ctx, "u1")
	if _, err := svc.Approve(ctx, req.ID, "admin-1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// Simulate drift: the flag was lost but the approved row survives.
	if err := db.Model(&domain.Profile{}).Where("id = ?", "u1").
		Updates(map[string]interface{}{"is_verified": false, "verified_at": nil}).Error; err != nil {
		t.Fatalf("failed to inject drift: %v", err)
	}

	verified, err := svc.Reconcile(ctx, "u1")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if !verified {
		t.Fatal("expected reconcile to report verified")
	}
	if !loadProfile(t, db, "u1").IsVerified {
		t.Fatal("expected flag to be restored from the latest request")
	}

	// Idempotent: a second run converges on the same state.
	if _, err := svc.Reconcile(ctx, "u1"); err != nil {
		t.Fatalf("second reconcile failed: %v", err)
	}
}

func TestReconcile_NoRequestsClearsFlag(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()
	seedInstructor(t, db, "u1")

	if err := db.Model(&domain.Profile{}).Where("id = ?", "u1").
		Update("is_verified", true).Error; err != nil {
		t.Fatalf("failed to inject drift: %v", err)
	}

	verified, err := svc.Reconcile(ctx, "u1")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if verified {
		t.Fatal("expected not verified with no requests on file")
	}
	if loadProfile(t, db, "u1").IsVerified {
		t.Fatal("expected flag to be cleared")
	}
}
