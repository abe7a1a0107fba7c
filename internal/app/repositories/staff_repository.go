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

// StaffRepository handles database operations for gradschool staff
// accounts
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

const staffColumns = `id, email, password_hash, first_name, last_name, is_active, created_at`

func scanStaff(row pgx.Row) (*models.StaffUser, error) {
	var s models.StaffUser
	err := row.Scan(
		&s.ID,
		&s.Email,
		&s.PasswordHash,
		&s.FirstName,
		&s.LastName,
		&s.IsActive,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByEmail retrieves a staff account by email.
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE email = $1`

	staff, err := scanStaff(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving staff user: %w", err)
	}
	return staff, nil
}

// GetByID retrieves a staff account by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE id = $1`

	staff, err := scanStaff(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving staff user: %w", err)
	}
	return staff, nil
}

// Create inserts a new staff account.
func (r *StaffRepository) Create(ctx context.Context, staff *models.StaffUser) error {
	query := `
		INSERT INTO staff_users (email, password_hash, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		staff.Email, staff.PasswordHash, staff.FirstName, staff.LastName, staff.IsActive,
	).Scan(&staff.ID, &staff.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("a staff account with this email already exists")
		}
		return fmt.Errorf("error creating staff user: %w", err)
	}
	return nil
}
