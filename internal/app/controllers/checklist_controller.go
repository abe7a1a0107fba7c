package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/services"
	"github.com/kaan/etdtrack/internal/middleware"
)

// ChecklistController handles the gradschool paperwork checklist
type ChecklistController struct {
	checklistService *services.ChecklistService
}

// NewChecklistController creates a new ChecklistController
func NewChecklistController(checklistService *services.ChecklistService) *ChecklistController {
	return &ChecklistController{
		checklistService: checklistService,
	}
}

// GetChecklist returns a candidate's paperwork checklist.
func (c *ChecklistController) GetChecklist(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	checklist, err := c.checklistService.GetByCandidateID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      checklist,
		Timestamp: time.Now(),
	})
}

// MarkItemReceived records one paperwork item as received. The item
// name comes from the :item path parameter.
func (c *ChecklistController) MarkItemReceived(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}
	item := models.ChecklistItem(ctx.Param("item"))

	checklist, err := c.checklistService.MarkItemReceived(ctx.Request.Context(), id, item)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      checklist,
		Timestamp: time.Now(),
	})
}
