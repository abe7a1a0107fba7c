package seed

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaan/etdtrack/internal/app/models"
	appRepos "github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
	"github.com/kaan/etdtrack/internal/pkg/auth"
)

// CreateDefaultData seeds the reference tables the registration form
// depends on, plus an initial staff account when ETD_ADMIN_EMAIL and
// ETD_ADMIN_PASSWORD are set. Everything is idempotent; existing rows
// are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	referenceRepo := appRepos.NewReferenceRepository(dbPool)
	staffRepo := appRepos.NewStaffRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default reference data...")
	var finalErr error

	// Registration years: current year through two ahead.
	currentYear := time.Now().Year()
	for offset := 0; offset <= 2; offset++ {
		year := &appModels.Year{Year: strconv.Itoa(currentYear + offset)}
		err := referenceRepo.CreateYear(ctx, year)
		if err != nil && !errors.Is(err, apperrors.ErrYearAlreadyExists) {
			lgr.Error().Err(err).Str("year", year.Year).Msg("Error creating default year")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range []string{
		"Computer Science",
		"Physics",
		"Chemistry",
		"Biology",
		"History",
		"English",
	} {
		department := &appModels.Department{Name: name}
		err := referenceRepo.CreateDepartment(ctx, department)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	phd := &appModels.Degree{Abbreviation: "PhD", Name: "Doctor of Philosophy"}
	if err := referenceRepo.CreateDegree(ctx, phd); err != nil && !errors.Is(err, apperrors.ErrDegreeAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default degree")
		finalErr = errors.Join(finalErr, err)
	}

	for _, language := range []*appModels.Language{
		{Code: "en", Name: "English"},
		{Code: "es", Name: "Spanish"},
		{Code: "fr", Name: "French"},
		{Code: "de", Name: "German"},
	} {
		err := referenceRepo.CreateLanguage(ctx, language)
		if err != nil && !errors.Is(err, apperrors.ErrLanguageAlreadyExists) {
			lgr.Error().Err(err).Str("language", language.Code).Msg("Error creating default language")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createAdminAccount(ctx, staffRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

func createAdminAccount(ctx context.Context, staffRepo *appRepos.StaffRepository, lgr zerolog.Logger) error {
	email := os.Getenv("ETD_ADMIN_EMAIL")
	password := os.Getenv("ETD_ADMIN_PASSWORD")
	if email == "" || password == "" {
		lgr.Debug().Msg("ETD_ADMIN_EMAIL/ETD_ADMIN_PASSWORD not set, skipping admin account seed")
		return nil
	}

	if _, err := staffRepo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.StaffUser{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Graduate School",
		LastName:     "Admin",
		IsActive:     true,
	}
	if err := staffRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("email", email).Msg("Admin staff account created")
	return nil
}
