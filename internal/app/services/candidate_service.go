package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// CandidateService handles candidate queries for the staff views
type CandidateService struct {
	candidateRepo *repositories.CandidateRepository
	thesisRepo    *repositories.ThesisRepository
	checklistRepo *repositories.ChecklistRepository
	committeeRepo *repositories.CommitteeRepository
	logger        zerolog.Logger
}

// NewCandidateService creates a new candidate service instance
func NewCandidateService(repos *repositories.Repositories, logger zerolog.Logger) *CandidateService {
	return &CandidateService{
		candidateRepo: repos.CandidateRepository,
		thesisRepo:    repos.ThesisRepository,
		checklistRepo: repos.ChecklistRepository,
		committeeRepo: repos.CommitteeRepository,
		logger:        logger,
	}
}

// GetCandidate returns a candidate with its thesis, checklist, and
// committee loaded.
func (s *CandidateService) GetCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.loadWorkflow(ctx, candidate); err != nil {
		return nil, err
	}

	members, err := s.committeeRepo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	candidate.Committee = members

	return candidate, nil
}

// ListCandidates returns candidates in last-name order, restricted to
// one derived status bucket. The "all" bucket returns everyone.
func (s *CandidateService) ListCandidates(ctx context.Context, status models.CandidateStatus) ([]*models.Candidate, error) {
	if !models.ValidCandidateStatus(string(status)) {
		return nil, apperrors.NewBadRequestError("unknown candidate status filter")
	}

	candidates, err := s.candidateRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*models.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if err := s.loadWorkflow(ctx, candidate); err != nil {
			return nil, err
		}
		if status == models.StatusAll || candidate.DerivedStatus() == status {
			filtered = append(filtered, candidate)
		}
	}
	return filtered, nil
}

// loadWorkflow attaches the thesis and checklist so the derived status
// can be computed. Both rows are created with the candidate, so a
// missing one is tolerated only for data predating registration.
func (s *CandidateService) loadWorkflow(ctx context.Context, candidate *models.Candidate) error {
	thesis, err := s.thesisRepo.GetByCandidateID(ctx, candidate.ID)
	if err != nil && !errors.Is(err, apperrors.ErrThesisNotFound) {
		return err
	}
	candidate.Thesis = thesis

	checklist, err := s.checklistRepo.GetByCandidateID(ctx, candidate.ID)
	if err != nil && !errors.Is(err, apperrors.ErrChecklistNotFound) {
		return err
	}
	candidate.Checklist = checklist

	return nil
}
