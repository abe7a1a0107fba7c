package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/services"
	"github.com/kaan/etdtrack/internal/middleware"
)

// CommitteeController handles a candidate's dissertation committee
type CommitteeController struct {
	committeeService *services.CommitteeService
}

// NewCommitteeController creates a new CommitteeController
func NewCommitteeController(committeeService *services.CommitteeService) *CommitteeController {
	return &CommitteeController{
		committeeService: committeeService,
	}
}

// AddMember adds a committee member to the candidate.
func (c *CommitteeController) AddMember(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	var req dto.CommitteeMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member, err := c.committeeService.AddMember(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      member,
		Timestamp: time.Now(),
	})
}

// ListMembers returns the candidate's committee.
func (c *CommitteeController) ListMembers(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	members, err := c.committeeService.ListMembers(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      members,
		Timestamp: time.Now(),
	})
}

// RemoveMember deletes a member from the candidate's committee.
func (c *CommitteeController) RemoveMember(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	memberID, err := strconv.ParseInt(ctx.Param("memberId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Member ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.committeeService.RemoveMember(ctx.Request.Context(), id, memberID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Committee member removed"},
		Timestamp: time.Now(),
	})
}
