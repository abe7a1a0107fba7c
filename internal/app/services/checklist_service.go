package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/notifications"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// ChecklistService handles the gradschool paperwork checklist
type ChecklistService struct {
	candidateRepo *repositories.CandidateRepository
	thesisRepo    *repositories.ThesisRepository
	checklistRepo *repositories.ChecklistRepository
	dispatcher    *notifications.Dispatcher
	logger        zerolog.Logger
}

// NewChecklistService creates a new checklist service instance
func NewChecklistService(repos *repositories.Repositories, dispatcher *notifications.Dispatcher, logger zerolog.Logger) *ChecklistService {
	return &ChecklistService{
		candidateRepo: repos.CandidateRepository,
		thesisRepo:    repos.ThesisRepository,
		checklistRepo: repos.ChecklistRepository,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// GetByCandidateID returns a candidate's paperwork checklist.
func (s *ChecklistService) GetByCandidateID(ctx context.Context, candidateID int64) (*models.GradschoolChecklist, error) {
	return s.checklistRepo.GetByCandidateID(ctx, candidateID)
}

// MarkItemReceived records one paperwork item as received and emails
// the candidate a receipt. Recording the same item again overwrites the
// earlier timestamp. When the item completes the checklist and the
// dissertation is already accepted, the candidate also gets the
// completion notice. Timestamps are committed before any email goes
// out, so a delivery failure never loses the receipt.
func (s *ChecklistService) MarkItemReceived(ctx context.Context, candidateID int64, item models.ChecklistItem) (*models.GradschoolChecklist, error) {
	if !models.ValidChecklistItem(string(item)) {
		return nil, apperrors.ErrChecklistUnknownItem
	}

	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	checklist, err := s.checklistRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := checklist.MarkReceived(item, now); err != nil {
		return nil, err
	}
	if err := s.checklistRepo.MarkItem(ctx, checklist.ID, item, now); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("candidateID", candidateID).
		Str("item", string(item)).
		Msg("Paperwork item received")

	candidate.Checklist = checklist
	if err := s.dispatcher.SendPaperworkReceived(candidate, item); err != nil {
		return checklist, err
	}

	if checklist.Complete() {
		thesis, err := s.thesisRepo.GetByCandidateID(ctx, candidateID)
		if err != nil {
			return checklist, err
		}
		if thesis.Status == models.ThesisAccepted {
			candidate.Thesis = thesis
			if err := s.dispatcher.SendComplete(candidate); err != nil {
				return checklist, err
			}
		}
	}

	return checklist, nil
}
