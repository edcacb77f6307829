package admin

import (
	"context"

	"instructhub/internal/domain"
)

type ProfileCounter interface {
	Count(ctx context.Context) (int64, error)
	CountVerified(ctx context.Context) (int64, error)
}

type VerificationCounter interface {
	CountByStatus(ctx context.Context, status domain.VerificationStatus) (int64, error)
}

type DocumentCounter interface {
	CountByStatus(ctx context.Context, status domain.DocumentStatus) (int64, error)
}

type Service struct {
	profiles  ProfileCounter
	requests  VerificationCounter
	documents DocumentCounter
}

func NewService(profiles ProfileCounter, requests VerificationCounter, documents DocumentCounter) *Service {
	return &Service{profiles: profiles, requests: requests, documents: documents}
}

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	totalProfiles, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, err
	}

	verifiedProfiles, err := s.profiles.CountVerified(ctx)
	if err != nil {
		return nil, err
	}

	pendingRequests, err := s.requests.CountByStatus(ctx, domain.VerificationStatusPending)
	if err != nil {
		return nil, err
	}

	pendingDocuments, err := s.documents.CountByStatus(ctx, domain.DocumentStatusPending)
	if err != nil {
		return nil, err
	}

	return &StatisticsResponse{
		TotalProfiles:    int(totalProfiles),
		VerifiedProfiles: int(verifiedProfiles),
		PendingRequests:  int(pendingRequests),
		PendingDocuments: int(pendingDocuments),
	}, nil
}
