package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/services"
	"github.com/kaan/etdtrack/internal/middleware"
)

// ThesisController handles the dissertation document and its review
// workflow
type ThesisController struct {
	thesisService *services.ThesisService
}

// NewThesisController creates a new ThesisController
func NewThesisController(thesisService *services.ThesisService) *ThesisController {
	return &ThesisController{
		thesisService: thesisService,
	}
}

// GetThesis returns the candidate's thesis.
func (c *ThesisController) GetThesis(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	thesis, err := c.thesisService.GetByCandidateID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      thesis,
		Timestamp: time.Now(),
	})
}

// SearchKeywords suggests existing keywords for the metadata form.
func (c *ThesisController) SearchKeywords(ctx *gin.Context) {
	query := ctx.Query("q")

	keywords, err := c.thesisService.SearchKeywords(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      keywords,
		Timestamp: time.Now(),
	})
}

// UploadDocument receives the dissertation PDF as multipart form data
// under the "document" field.
func (c *ThesisController) UploadDocument(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("document")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Multipart field 'document' is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	thesis, err := c.thesisService.UploadDocument(ctx.Request.Context(), id, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      thesis,
		Timestamp: time.Now(),
	})
}

// DownloadDocument streams the stored dissertation PDF.
func (c *ThesisController) DownloadDocument(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	thesis, reader, err := c.thesisService.OpenDocument(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer reader.Close()

	ctx.Header("Content-Disposition", `attachment; filename="`+thesis.FileName+`"`)
	ctx.Header("Content-Type", "application/pdf")
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, reader); err != nil {
		// Headers are already out; nothing left to do but record it.
		_ = ctx.Error(err)
	}
}

// UpdateMetadata replaces the thesis title, abstract, language, and
// keywords.
func (c *ThesisController) UpdateMetadata(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	var req dto.ThesisMetadataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	thesis, err := c.thesisService.UpdateMetadata(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      thesis,
		Timestamp: time.Now(),
	})
}

// Submit sends the thesis to the format review queue.
func (c *ThesisController) Submit(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	thesis, err := c.thesisService.Submit(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      thesis,
		Timestamp: time.Now(),
	})
}

// Accept approves a pending submission.
func (c *ThesisController) Accept(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	thesis, err := c.thesisService.Accept(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      thesis,
		Timestamp: time.Now(),
	})
}

// Reject returns a pending submission with formatting comments.
func (c *ThesisController) Reject(ctx *gin.Context) {
	id, ok := candidateID(ctx)
	if !ok {
		return
	}

	var req dto.RejectThesisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	thesis, err := c.thesisService.Reject(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      thesis,
		Timestamp: time.Now(),
	})
}
