package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/services"
	"github.com/kaan/etdtrack/internal/middleware"
)

// CandidateController handles candidate registration and the staff
// candidate views
type CandidateController struct {
	registrationService *services.RegistrationService
	candidateService    *services.CandidateService
}

// NewCandidateController creates a new CandidateController
func NewCandidateController(registrationService *services.RegistrationService, candidateService *services.CandidateService) *CandidateController {
	return &CandidateController{
		registrationService: registrationService,
		candidateService:    candidateService,
	}
}

// Register creates a candidate from the registration form, along with
// the placeholder thesis and empty checklist.
func (c *CandidateController) Register(ctx *gin.Context) {
	var req dto.RegisterCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	candidate, err := c.registrationService.RegisterCandidate(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      candidate,
		Timestamp: time.Now(),
	})
}

// GetCandidate returns one candidate with thesis, checklist, and
// committee loaded.
func (c *CandidateController) GetCandidate(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	candidate, err := c.candidateService.GetCandidate(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      candidate,
		Timestamp: time.Now(),
	})
}

// ListCandidates returns candidates filtered by the derived status
// bucket in the "status" query parameter. No parameter means everyone.
func (c *CandidateController) ListCandidates(ctx *gin.Context) {
	status := models.CandidateStatus(ctx.DefaultQuery("status", string(models.StatusAll)))

	candidates, err := c.candidateService.ListCandidates(ctx.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      candidates,
		Timestamp: time.Now(),
	})
}

// candidateID parses the :id path parameter, responding with a
// validation error itself when the value is not numeric.
func candidateID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Candidate ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
