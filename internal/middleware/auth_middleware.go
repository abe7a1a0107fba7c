package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextStaffID    = "staffID"
	ContextStaffEmail = "staffEmail"
)

// AuthMiddleware guards the staff-only routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
	staffRepo  *repositories.StaffRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, staffRepo *repositories.StaffRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		staffRepo:  staffRepo,
	}
}

// JWTAuth validates the bearer token and checks the staff account is
// still active before letting the request through.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid authorization header")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		staff, err := m.staffRepo.GetByID(c.Request.Context(), claims.StaffID)
		if err != nil || !staff.IsActive {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Account is not active")
			return
		}

		c.Set(ContextStaffID, staff.ID)
		c.Set(ContextStaffEmail, staff.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
