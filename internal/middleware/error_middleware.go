package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Controllers
// call it for every service error so the mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	// Workflow errors
	case errors.Is(err, apperrors.ErrCandidateCreation):
		respond(c, http.StatusBadRequest, dto.ErrorCodeCandidateCreation, message)
	case errors.Is(err, apperrors.ErrKeywordInvalid):
		respond(c, http.StatusBadRequest, dto.ErrorCodeKeywordInvalid, message)
	case errors.Is(err, apperrors.ErrCommitteeMember):
		respond(c, http.StatusBadRequest, dto.ErrorCodeCommitteeMember, message)
	case errors.Is(err, apperrors.ErrThesisNotReady):
		respond(c, http.StatusBadRequest, dto.ErrorCodeThesisError, message)
	case errors.Is(err, apperrors.ErrThesisInvalidFile):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidFile, message)
	case errors.Is(err, apperrors.ErrChecklistUnknownItem):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)
	case errors.Is(err, apperrors.ErrThesisInvalidTransition),
		errors.Is(err, apperrors.ErrThesisDocumentLocked):
		respond(c, http.StatusConflict, dto.ErrorCodeThesisError, message)

	// Resource errors
	case errors.Is(err, apperrors.ErrPersonNotFound),
		errors.Is(err, apperrors.ErrCandidateNotFound),
		errors.Is(err, apperrors.ErrThesisNotFound),
		errors.Is(err, apperrors.ErrChecklistNotFound),
		errors.Is(err, apperrors.ErrCommitteeMemberNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)
	case errors.Is(err, apperrors.ErrIdentifierExists),
		errors.Is(err, apperrors.ErrYearAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentAlreadyExists),
		errors.Is(err, apperrors.ErrDegreeAlreadyExists),
		errors.Is(err, apperrors.ErrLanguageAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message)

	// Authentication errors
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	// General validation
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	// Mail failures surface after the state change is committed; the
	// operation itself succeeded.
	case errors.Is(err, apperrors.ErrMailDelivery):
		respond(c, http.StatusBadGateway, dto.ErrorCodeMailDelivery, message)

	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError reports a request-binding failure.
func HandleValidationError(c *gin.Context, err error) {
	respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
