package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/db"
)

// CommitteeService handles a candidate's dissertation committee
type CommitteeService struct {
	pool          *pgxpool.Pool
	candidateRepo *repositories.CandidateRepository
	personRepo    *repositories.PersonRepository
	committeeRepo *repositories.CommitteeRepository
	referenceRepo *repositories.ReferenceRepository
	logger        zerolog.Logger
}

// NewCommitteeService creates a new committee service instance
func NewCommitteeService(pool *pgxpool.Pool, repos *repositories.Repositories, logger zerolog.Logger) *CommitteeService {
	return &CommitteeService{
		pool:          pool,
		candidateRepo: repos.CandidateRepository,
		personRepo:    repos.PersonRepository,
		committeeRepo: repos.CommitteeRepository,
		referenceRepo: repos.ReferenceRepository,
		logger:        logger,
	}
}

// AddMember creates a committee member for the candidate. A new person
// record is created for the member; committee members do not need an
// institutional identifier.
func (s *CommitteeService) AddMember(ctx context.Context, candidateID int64, req *dto.CommitteeMemberRequest) (*models.CommitteeMember, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil {
		if _, err := s.referenceRepo.GetDepartmentByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	person := &models.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	member := &models.CommitteeMember{
		CandidateID:  candidate.ID,
		Role:         models.CommitteeRole(req.Role),
		DepartmentID: req.DepartmentID,
		Affiliation:  req.Affiliation,
	}
	if err := member.Validate(); err != nil {
		return nil, err
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.personRepo.CreateTx(ctx, tx, person); err != nil {
			return err
		}
		member.PersonID = person.ID
		return s.committeeRepo.CreateTx(ctx, tx, member)
	})
	if err != nil {
		return nil, err
	}

	member.Person = person
	s.logger.Info().
		Int64("candidateID", candidateID).
		Int64("memberID", member.ID).
		Str("role", string(member.Role)).
		Msg("Committee member added")
	return member, nil
}

// ListMembers returns the candidate's committee, directors first.
func (s *CommitteeService) ListMembers(ctx context.Context, candidateID int64) ([]*models.CommitteeMember, error) {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}
	return s.committeeRepo.ListByCandidate(ctx, candidateID)
}

// RemoveMember deletes a member from the candidate's committee.
func (s *CommitteeService) RemoveMember(ctx context.Context, candidateID, memberID int64) error {
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return err
	}
	return s.committeeRepo.Delete(ctx, candidateID, memberID)
}
