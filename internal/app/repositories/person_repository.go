package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
	"github.com/kaan/etdtrack/internal/pkg/dberrors"
)

// PersonRepository handles database operations for people
type PersonRepository struct {
	db *pgxpool.Pool
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{
		db: db,
	}
}

const personColumns = `id, netid, orcid, bannerid, first_name, last_name, middle, email,
	address_street, address_city, address_state, address_zip, phone`

func scanPerson(row pgx.Row) (*models.Person, error) {
	var p models.Person
	err := row.Scan(
		&p.ID,
		&p.NetID,
		&p.ORCID,
		&p.BannerID,
		&p.FirstName,
		&p.LastName,
		&p.Middle,
		&p.Email,
		&p.AddressStreet,
		&p.AddressCity,
		&p.AddressState,
		&p.AddressZip,
		&p.Phone,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	person, err := scanPerson(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error retrieving person: %w", err)
	}
	return person, nil
}

// GetByNetID retrieves a person by netid. Returns ErrPersonNotFound
// when no row matches.
func (r *PersonRepository) GetByNetID(ctx context.Context, netid string) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE netid = $1`

	person, err := scanPerson(r.db.QueryRow(ctx, query, netid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error retrieving person by netid: %w", err)
	}
	return person, nil
}

// GetByORCID retrieves a person by ORCID. Returns ErrPersonNotFound
// when no row matches.
func (r *PersonRepository) GetByORCID(ctx context.Context, orcid string) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE orcid = $1`

	person, err := scanPerson(r.db.QueryRow(ctx, query, orcid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error retrieving person by orcid: %w", err)
	}
	return person, nil
}

// CreateTx inserts a new person inside a caller-owned transaction.
// Empty-string identifiers are stored as NULL.
func (r *PersonRepository) CreateTx(ctx context.Context, q DB, person *models.Person) error {
	person.NormalizeIdentifiers()

	query := `
		INSERT INTO people (netid, orcid, bannerid, first_name, last_name, middle, email,
			address_street, address_city, address_state, address_zip, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		person.NetID, person.ORCID, person.BannerID,
		person.FirstName, person.LastName, person.Middle, person.Email,
		person.AddressStreet, person.AddressCity, person.AddressState, person.AddressZip, person.Phone,
	).Scan(&person.ID)
	if err != nil {
		if conflict := identifierConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("error creating person: %w", err)
	}

	return nil
}

// UpdateTx updates an existing person's profile fields inside a
// caller-owned transaction.
func (r *PersonRepository) UpdateTx(ctx context.Context, q DB, person *models.Person) error {
	person.NormalizeIdentifiers()

	query := `
		UPDATE people
		SET netid = $1, orcid = $2, bannerid = $3, first_name = $4, last_name = $5,
			middle = $6, email = $7, address_street = $8, address_city = $9,
			address_state = $10, address_zip = $11, phone = $12
		WHERE id = $13
	`

	cmdTag, err := q.Exec(ctx, query,
		person.NetID, person.ORCID, person.BannerID,
		person.FirstName, person.LastName, person.Middle, person.Email,
		person.AddressStreet, person.AddressCity, person.AddressState, person.AddressZip, person.Phone,
		person.ID,
	)
	if err != nil {
		if conflict := identifierConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("error updating person: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPersonNotFound
	}

	return nil
}

// identifierConflict maps a unique violation to the external identifier
// that caused it, so registration can report which one is already
// taken. Returns nil for anything other than a unique violation.
func identifierConflict(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "people_netid_key"):
		return fmt.Errorf("%w: netid", apperrors.ErrIdentifierExists)
	case dberrors.IsDuplicateConstraintError(err, "people_orcid_key"):
		return fmt.Errorf("%w: orcid", apperrors.ErrIdentifierExists)
	case dberrors.IsDuplicateConstraintError(err, "people_bannerid_key"):
		return fmt.Errorf("%w: bannerid", apperrors.ErrIdentifierExists)
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrIdentifierExists
	}
	return nil
}
