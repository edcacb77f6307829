package verification

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"instructhub/internal/domain"
	"instructhub/internal/repository"
)

// Service owns the VerificationRequest state machine and keeps
// Profile.is_verified in sync with the latest decision.
type Service struct {
	requests    VerificationRepository
	profiles    ProfileRepository
	instructors InstructorProfileRepository
	companies   CompanyProfileRepository
}

func NewService(
	requests VerificationRepository,
	profiles ProfileRepository,
	instructors InstructorProfileRepository,
	companies CompanyProfileRepository,
) *Service {
	return &Service{
		requests:    requests,
		profiles:    profiles,
		instructors: instructors,
		companies:   companies,
	}
}

// Submit inserts a new pending request carrying a snapshot of the profile at
// submission time. Only one pending request may exist per user; a concurrent
// submit that slips past the check surfaces as a conflict the caller retries.
func (s *Service) Submit(ctx context.Context, userID string) (*domain.VerificationRequest, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pending, err := s.requests.HasPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrPendingRequestExists
	}

	req := &domain.VerificationRequest{
		ID:              uuid.NewString(),
		UserID:          userID,
		UserType:        profile.UserType,
		Status:          domain.VerificationStatusPending,
		ProfileSnapshot: s.buildSnapshot(ctx, profile),
		SubmittedAt:     time.Now(),
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Resubmit deletes all of the user's rejected requests and then submits a
// fresh one. Approved and pending rows are left untouched, so a previously
// approved user keeps is_verified until the new request is acted on.
func (s *Service) Resubmit(ctx context.Context, userID string) (*domain.VerificationRequest, error) {
	removed, err := s.requests.DeleteRejectedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		log.Printf("verification: removed %d rejected request(s) for %s on resubmission", removed, userID)
	}
	return s.Submit(ctx, userID)
}

// Approve transitions pending→approved and flips the profile's trust flag.
// Both writes run in one transaction, so a crash cannot leave an approved
// request with an unflagged profile.
func (s *Service) Approve(ctx context.Context, requestID, reviewerID string) (*domain.VerificationRequest, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.Status != domain.VerificationStatusPending {
		return nil, ErrNotPending
	}

	now := time.Now()
	req.Status = domain.VerificationStatusApproved
	req.ReviewedAt = &now
	req.ReviewedBy = &reviewerID
	req.RejectionReason = ""

	err = s.requests.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Profile{}).
			Where("id = ?", req.UserID).
			Updates(map[string]interface{}{
				"is_verified": true,
				"verified_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Reject transitions pending→rejected. The profile's trust flag keeps
// whatever value it had before.
func (s *Service) Reject(ctx context.Context, requestID, reviewerID, reason string) (*domain.VerificationRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.Status != domain.VerificationStatusPending {
		return nil, ErrNotPending
	}

	now := time.Now()
	req.Status = domain.VerificationStatusRejected
	req.ReviewedAt = &now
	req.ReviewedBy = &reviewerID
	req.RejectionReason = strings.TrimSpace(reason)

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Reconcile recomputes is_verified from the user's latest request. Idempotent;
// used to repair drift between the request table and the stored flag.
func (s *Service) Reconcile(ctx context.Context, userID string) (bool, error) {
	latest, err := s.requests.GetLatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrVerificationRequestNotFound) {
		return false, err
	}

	verified := latest != nil && latest.Status == domain.VerificationStatusApproved
	var at *time.Time
	if verified {
		at = latest.ReviewedAt
	}

	if err := s.profiles.SetVerified(ctx, userID, verified, at); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return verified, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.VerificationRequest, error) {
	return s.requests.ListByUser(ctx, userID)
}

func (s *Service) ListByStatus(ctx context.Context, status domain.VerificationStatus, page, limit int) ([]domain.VerificationRequest, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.requests.ListByStatus(ctx, status, (page-1)*limit, limit)
}

func (s *Service) buildSnapshot(ctx context.Context, profile *domain.Profile) domain.ProfileSnapshot {
	snap := domain.ProfileSnapshot{
		Email:    profile.Email,
		FullName: profile.FullName,
		UserType: profile.UserType,
	}

	// Role profile may be absent on a degraded account; the snapshot then
	// carries the base fields only.
	switch profile.UserType {
	case domain.UserTypeInstructor:
		if inst, err := s.instructors.GetByProfileID(ctx, profile.ID); err == nil {
			snap.Bio = inst.Bio
			snap.Location = inst.Location
			snap.Expertise = inst.Expertise
			snap.Experience = inst.Experience
			snap.Education = inst.Education
		}
	case domain.UserTypeCompany:
		if comp, err := s.companies.GetByProfileID(ctx, profile.ID); err == nil {
			snap.CompanyName = comp.CompanyName
			snap.Description = comp.Description
			snap.Industry = comp.Industry
			snap.Website = comp.Website
		}
	}

	return snap
}
