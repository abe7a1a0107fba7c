package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// CandidateRepository handles database operations for candidates
type CandidateRepository struct {
	db *pgxpool.Pool
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{
		db: db,
	}
}

// CreateTx inserts a candidate row inside a caller-owned transaction.
// The owning service creates the person, thesis, and checklist rows in
// the same transaction.
func (r *CandidateRepository) CreateTx(ctx context.Context, q DB, candidate *models.Candidate) error {
	query := `
		INSERT INTO candidates (person_id, year_id, department_id, degree_id, embargo_end_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		candidate.PersonID, candidate.YearID, candidate.DepartmentID, candidate.DegreeID,
		candidate.EmbargoEndYear,
	).Scan(&candidate.ID)
	if err != nil {
		return fmt.Errorf("error creating candidate: %w", err)
	}
	return nil
}

const candidateSelect = `
	SELECT c.id, c.person_id, c.year_id, c.department_id, c.degree_id, c.embargo_end_year,
		p.id, p.netid, p.orcid, p.bannerid, p.first_name, p.last_name, p.middle, p.email,
		p.address_street, p.address_city, p.address_state, p.address_zip, p.phone,
		y.id, y.year,
		d.id, d.name,
		g.id, g.abbreviation, g.name
	FROM candidates c
	JOIN people p ON p.id = c.person_id
	JOIN years y ON y.id = c.year_id
	JOIN departments d ON d.id = c.department_id
	JOIN degrees g ON g.id = c.degree_id`

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	var c models.Candidate
	var p models.Person
	var y models.Year
	var d models.Department
	var g models.Degree

	err := row.Scan(
		&c.ID, &c.PersonID, &c.YearID, &c.DepartmentID, &c.DegreeID, &c.EmbargoEndYear,
		&p.ID, &p.NetID, &p.ORCID, &p.BannerID, &p.FirstName, &p.LastName, &p.Middle, &p.Email,
		&p.AddressStreet, &p.AddressCity, &p.AddressState, &p.AddressZip, &p.Phone,
		&y.ID, &y.Year,
		&d.ID, &d.Name,
		&g.ID, &g.Abbreviation, &g.Name,
	)
	if err != nil {
		return nil, err
	}

	c.Person = &p
	c.Year = &y
	c.Department = &d
	c.Degree = &g
	return &c, nil
}

// GetByID retrieves a candidate with its person and program references.
// The thesis and checklist are loaded by the owning service.
func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	candidate, err := scanCandidate(r.db.QueryRow(ctx, candidateSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("error retrieving candidate: %w", err)
	}
	return candidate, nil
}

// GetAll retrieves every candidate with person and program references,
// ordered by last name.
func (r *CandidateRepository) GetAll(ctx context.Context) ([]*models.Candidate, error) {
	rows, err := r.db.Query(ctx, candidateSelect+` ORDER BY p.last_name, p.first_name`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*models.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

// ExistsForPerson reports whether the person already has a candidate
// row.
func (r *CandidateRepository) ExistsForPerson(ctx context.Context, personID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM candidates WHERE person_id = $1)`, personID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking candidate existence: %w", err)
	}
	return exists, nil
}
