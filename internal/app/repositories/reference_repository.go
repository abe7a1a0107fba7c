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

// ReferenceRepository handles the small lookup tables: years,
// departments, degrees, and languages. These are immutable after
// creation except by administrators.
type ReferenceRepository struct {
	db *pgxpool.Pool
}

// NewReferenceRepository creates a new reference repository
func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{
		db: db,
	}
}

// CreateYear creates a new academic year
func (r *ReferenceRepository) CreateYear(ctx context.Context, year *models.Year) error {
	err := r.db.QueryRow(ctx, `INSERT INTO years (year) VALUES ($1) RETURNING id`, year.Year).Scan(&year.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrYearAlreadyExists
		}
		return fmt.Errorf("error creating year: %w", err)
	}
	return nil
}

// GetAllYears retrieves all years ordered by year
func (r *ReferenceRepository) GetAllYears(ctx context.Context) ([]*models.Year, error) {
	rows, err := r.db.Query(ctx, `SELECT id, year FROM years ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.Year
	for rows.Next() {
		var y models.Year
		if err := rows.Scan(&y.ID, &y.Year); err != nil {
			return nil, err
		}
		years = append(years, &y)
	}
	return years, rows.Err()
}

// GetYearByID retrieves a year by ID
func (r *ReferenceRepository) GetYearByID(ctx context.Context, id int64) (*models.Year, error) {
	var y models.Year
	err := r.db.QueryRow(ctx, `SELECT id, year FROM years WHERE id = $1`, id).Scan(&y.ID, &y.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("year not found")
		}
		return nil, fmt.Errorf("error retrieving year: %w", err)
	}
	return &y, nil
}

// CreateDepartment creates a new department
func (r *ReferenceRepository) CreateDepartment(ctx context.Context, department *models.Department) error {
	err := r.db.QueryRow(ctx, `INSERT INTO departments (name) VALUES ($1) RETURNING id`, department.Name).Scan(&department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetAllDepartments retrieves all departments ordered by name
func (r *ReferenceRepository) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, &d)
	}
	return departments, rows.Err()
}

// GetDepartmentByID retrieves a department by ID
func (r *ReferenceRepository) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	var d models.Department
	err := r.db.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("department not found")
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return &d, nil
}

// CreateDegree creates a new degree
func (r *ReferenceRepository) CreateDegree(ctx context.Context, degree *models.Degree) error {
	err := r.db.QueryRow(ctx, `INSERT INTO degrees (abbreviation, name) VALUES ($1, $2) RETURNING id`,
		degree.Abbreviation, degree.Name).Scan(&degree.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDegreeAlreadyExists
		}
		return fmt.Errorf("error creating degree: %w", err)
	}
	return nil
}

// GetAllDegrees retrieves all degrees ordered by name
func (r *ReferenceRepository) GetAllDegrees(ctx context.Context) ([]*models.Degree, error) {
	rows, err := r.db.Query(ctx, `SELECT id, abbreviation, name FROM degrees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var degrees []*models.Degree
	for rows.Next() {
		var d models.Degree
		if err := rows.Scan(&d.ID, &d.Abbreviation, &d.Name); err != nil {
			return nil, err
		}
		degrees = append(degrees, &d)
	}
	return degrees, rows.Err()
}

// GetDegreeByID retrieves a degree by ID
func (r *ReferenceRepository) GetDegreeByID(ctx context.Context, id int64) (*models.Degree, error) {
	var d models.Degree
	err := r.db.QueryRow(ctx, `SELECT id, abbreviation, name FROM degrees WHERE id = $1`, id).
		Scan(&d.ID, &d.Abbreviation, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("degree not found")
		}
		return nil, fmt.Errorf("error retrieving degree: %w", err)
	}
	return &d, nil
}

// CreateLanguage creates a new language
func (r *ReferenceRepository) CreateLanguage(ctx context.Context, language *models.Language) error {
	err := r.db.QueryRow(ctx, `INSERT INTO languages (code, name) VALUES ($1, $2) RETURNING id`,
		language.Code, language.Name).Scan(&language.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrLanguageAlreadyExists
		}
		return fmt.Errorf("error creating language: %w", err)
	}
	return nil
}

// GetAllLanguages retrieves all languages ordered by name
func (r *ReferenceRepository) GetAllLanguages(ctx context.Context) ([]*models.Language, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name FROM languages ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []*models.Language
	for rows.Next() {
		var l models.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, err
		}
		languages = append(languages, &l)
	}
	return languages, rows.Err()
}

// GetLanguageByID retrieves a language by ID
func (r *ReferenceRepository) GetLanguageByID(ctx context.Context, id int64) (*models.Language, error) {
	var l models.Language
	err := r.db.QueryRow(ctx, `SELECT id, code, name FROM languages WHERE id = $1`, id).
		Scan(&l.ID, &l.Code, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("language not found")
		}
		return nil, fmt.Errorf("error retrieving language: %w", err)
	}
	return &l, nil
}
