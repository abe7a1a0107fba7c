package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/db"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// embargoYears is how long past the registration year an embargoed
// dissertation stays restricted.
const embargoYears = 2

// RegistrationService handles candidate registration
type RegistrationService struct {
	pool          *pgxpool.Pool
	personRepo    *repositories.PersonRepository
	candidateRepo *repositories.CandidateRepository
	thesisRepo    *repositories.ThesisRepository
	checklistRepo *repositories.ChecklistRepository
	referenceRepo *repositories.ReferenceRepository
	logger        zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(pool *pgxpool.Pool, repos *repositories.Repositories, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		pool:          pool,
		personRepo:    repos.PersonRepository,
		candidateRepo: repos.CandidateRepository,
		thesisRepo:    repos.ThesisRepository,
		checklistRepo: repos.ChecklistRepository,
		referenceRepo: repos.ReferenceRepository,
		logger:        logger,
	}
}

// RegisterCandidate creates a candidate for the registration form in
// req. The person record is found by netid first, then by ORCID; when
// neither matches, a new person is created. The person's profile fields
// are refreshed from the form either way. The candidate, its
// placeholder thesis, and its empty paperwork checklist are created in
// one transaction.
func (s *RegistrationService) RegisterCandidate(ctx context.Context, req *dto.RegisterCandidateRequest) (*models.Candidate, error) {
	year, err := s.referenceRepo.GetYearByID(ctx, req.YearID)
	if err != nil {
		return nil, err
	}
	if _, err := s.referenceRepo.GetDepartmentByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if _, err := s.referenceRepo.GetDegreeByID(ctx, req.DegreeID); err != nil {
		return nil, err
	}

	person, err := s.findPerson(ctx, req)
	if err != nil {
		return nil, err
	}

	isNewPerson := person == nil
	if isNewPerson {
		person = &models.Person{}
	} else {
		exists, err := s.candidateRepo.ExistsForPerson(ctx, person.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewConflictError("a candidate already exists for this person")
		}
	}
	applyPersonFields(person, req)

	candidate := &models.Candidate{
		YearID:       req.YearID,
		DepartmentID: req.DepartmentID,
		DegreeID:     req.DegreeID,
		Person:       person,
	}
	if req.SetEmbargo {
		endYear, err := embargoEndYear(year.Year)
		if err != nil {
			return nil, err
		}
		candidate.EmbargoEndYear = &endYear
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if isNewPerson {
			if err := s.personRepo.CreateTx(ctx, tx, person); err != nil {
				return err
			}
		} else {
			if err := s.personRepo.UpdateTx(ctx, tx, person); err != nil {
				return err
			}
		}
		candidate.PersonID = person.ID

		if err := s.candidateRepo.CreateTx(ctx, tx, candidate); err != nil {
			return err
		}

		thesis := models.NewThesis(candidate.ID)
		if err := s.thesisRepo.CreateTx(ctx, tx, thesis); err != nil {
			return err
		}
		candidate.Thesis = thesis

		checklist := &models.GradschoolChecklist{CandidateID: candidate.ID}
		if err := s.checklistRepo.CreateTx(ctx, tx, checklist); err != nil {
			return err
		}
		candidate.Checklist = checklist

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("candidateID", candidate.ID).
		Int64("personID", person.ID).
		Msg("Candidate registered")
	return candidate, nil
}

// findPerson locates an existing person for the registration request,
// matching on netid first and falling back to ORCID. Returns nil when
// no record matches.
func (s *RegistrationService) findPerson(ctx context.Context, req *dto.RegisterCandidateRequest) (*models.Person, error) {
	if req.NetID != "" {
		person, err := s.personRepo.GetByNetID(ctx, req.NetID)
		if err == nil {
			return person, nil
		}
		if !errors.Is(err, apperrors.ErrPersonNotFound) {
			return nil, err
		}
	}
	if req.ORCID != "" {
		person, err := s.personRepo.GetByORCID(ctx, req.ORCID)
		if err == nil {
			return person, nil
		}
		if !errors.Is(err, apperrors.ErrPersonNotFound) {
			return nil, err
		}
	}
	return nil, nil
}

func applyPersonFields(person *models.Person, req *dto.RegisterCandidateRequest) {
	if req.NetID != "" {
		netid := req.NetID
		person.NetID = &netid
	}
	if req.ORCID != "" {
		orcid := req.ORCID
		person.ORCID = &orcid
	}
	person.FirstName = req.FirstName
	person.LastName = req.LastName
	person.Middle = req.Middle
	person.Email = req.Email
	person.AddressStreet = req.AddressStreet
	person.AddressCity = req.AddressCity
	person.AddressState = req.AddressState
	person.AddressZip = req.AddressZip
	person.Phone = req.Phone
}

func embargoEndYear(registrationYear string) (int, error) {
	y, err := strconv.Atoi(registrationYear)
	if err != nil {
		return 0, apperrors.NewBadRequestError("registration year is not numeric, cannot set embargo")
	}
	return y + embargoYears, nil
}
