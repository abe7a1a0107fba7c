package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
	"github.com/kaan/etdtrack/internal/pkg/auth"
)

// AuthService handles staff authentication
type AuthService struct {
	staffRepo  *repositories.StaffRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(staffRepo *repositories.StaffRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies a staff member's credentials and issues an access
// token. Wrong email, wrong password, and deactivated accounts all fail
// the same way so the response does not leak which part was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !staff.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(staff.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(staff.ID, staff.Email)
	if err != nil {
		s.logger.Error().Err(err).Int64("staffID", staff.ID).Msg("Failed to generate access token")
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
