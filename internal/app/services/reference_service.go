package services

import (
	"context"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/repositories"
)

// ReferenceService handles the reference data the registration form is
// built from: years, departments, degrees, and languages.
type ReferenceService struct {
	referenceRepo *repositories.ReferenceRepository
}

// NewReferenceService creates a new reference service instance
func NewReferenceService(referenceRepo *repositories.ReferenceRepository) *ReferenceService {
	return &ReferenceService{referenceRepo: referenceRepo}
}

// ListYears returns all registration years.
func (s *ReferenceService) ListYears(ctx context.Context) ([]*models.Year, error) {
	return s.referenceRepo.GetAllYears(ctx)
}

// CreateYear adds a registration year.
func (s *ReferenceService) CreateYear(ctx context.Context, req *dto.CreateYearRequest) (*models.Year, error) {
	year := &models.Year{Year: req.Year}
	if err := s.referenceRepo.CreateYear(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

// ListDepartments returns all departments.
func (s *ReferenceService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.referenceRepo.GetAllDepartments(ctx)
}

// CreateDepartment adds a department.
func (s *ReferenceService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{Name: req.Name}
	if err := s.referenceRepo.CreateDepartment(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// ListDegrees returns all degree programs.
func (s *ReferenceService) ListDegrees(ctx context.Context) ([]*models.Degree, error) {
	return s.referenceRepo.GetAllDegrees(ctx)
}

// CreateDegree adds a degree program.
func (s *ReferenceService) CreateDegree(ctx context.Context, req *dto.CreateDegreeRequest) (*models.Degree, error) {
	degree := &models.Degree{Abbreviation: req.Abbreviation, Name: req.Name}
	if err := s.referenceRepo.CreateDegree(ctx, degree); err != nil {
		return nil, err
	}
	return degree, nil
}

// ListLanguages returns all thesis languages.
func (s *ReferenceService) ListLanguages(ctx context.Context) ([]*models.Language, error) {
	return s.referenceRepo.GetAllLanguages(ctx)
}

// CreateLanguage adds a thesis language.
func (s *ReferenceService) CreateLanguage(ctx context.Context, req *dto.CreateLanguageRequest) (*models.Language, error) {
	language := &models.Language{Code: req.Code, Name: req.Name}
	if err := s.referenceRepo.CreateLanguage(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}
