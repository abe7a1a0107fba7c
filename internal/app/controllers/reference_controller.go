package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/app/services"
	"github.com/kaan/etdtrack/internal/middleware"
)

// ReferenceController serves the reference data the registration form
// is built from
type ReferenceController struct {
	referenceService *services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService *services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// ListYears returns all registration years.
func (c *ReferenceController) ListYears(ctx *gin.Context) {
	years, err := c.referenceService.ListYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: years, Timestamp: time.Now()})
}

// CreateYear adds a registration year.
func (c *ReferenceController) CreateYear(ctx *gin.Context) {
	var req dto.CreateYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	year, err := c.referenceService.CreateYear(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: year, Timestamp: time.Now()})
}

// ListDepartments returns all departments.
func (c *ReferenceController) ListDepartments(ctx *gin.Context) {
	departments, err := c.referenceService.ListDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: departments, Timestamp: time.Now()})
}

// CreateDepartment adds a department.
func (c *ReferenceController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department, err := c.referenceService.CreateDepartment(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: department, Timestamp: time.Now()})
}

// ListDegrees returns all degree programs.
func (c *ReferenceController) ListDegrees(ctx *gin.Context) {
	degrees, err := c.referenceService.ListDegrees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: degrees, Timestamp: time.Now()})
}

// CreateDegree adds a degree program.
func (c *ReferenceController) CreateDegree(ctx *gin.Context) {
	var req dto.CreateDegreeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	degree, err := c.referenceService.CreateDegree(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: degree, Timestamp: time.Now()})
}

// ListLanguages returns all thesis languages.
func (c *ReferenceController) ListLanguages(ctx *gin.Context) {
	languages, err := c.referenceService.ListLanguages(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: languages, Timestamp: time.Now()})
}

// CreateLanguage adds a thesis language.
func (c *ReferenceController) CreateLanguage(ctx *gin.Context) {
	var req dto.CreateLanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	language, err := c.referenceService.CreateLanguage(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: language, Timestamp: time.Now()})
}
