package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaan/etdtrack/internal/app/controllers"
	"github.com/kaan/etdtrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	candidateController *controllers.CandidateController,
	thesisController *controllers.ThesisController,
	checklistController *controllers.ChecklistController,
	committeeController *controllers.CommitteeController,
	referenceController *controllers.ReferenceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public reference data (registration form sources) ---
	v1.GET("/years", referenceController.ListYears)
	v1.GET("/departments", referenceController.ListDepartments)
	v1.GET("/degrees", referenceController.ListDegrees)
	v1.GET("/languages", referenceController.ListLanguages)
	v1.GET("/keywords", thesisController.SearchKeywords)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Candidate-facing routes ---
	// Registration and the candidate's own submission workflow are
	// open; candidates authenticate upstream at the SSO proxy.
	candidates := v1.Group("/candidates")
	{
		candidates.POST("", candidateController.Register)

		thesis := candidates.Group("/:id/thesis")
		{
			thesis.GET("", thesisController.GetThesis)
			thesis.POST("/document", thesisController.UploadDocument)
			thesis.PUT("/metadata", thesisController.UpdateMetadata)
			thesis.POST("/submit", thesisController.Submit)
		}

		committee := candidates.Group("/:id/committee")
		{
			committee.GET("", committeeController.ListMembers)
			committee.POST("", committeeController.AddMember)
			committee.DELETE("/:memberId", committeeController.RemoveMember)
		}
	}

	// --- Staff routes ---
	staff := v1.Group("")
	staff.Use(authMiddleware.JWTAuth())
	{
		staff.GET("/candidates", candidateController.ListCandidates)
		staff.GET("/candidates/:id", candidateController.GetCandidate)
		staff.GET("/candidates/:id/thesis/document", thesisController.DownloadDocument)
		staff.POST("/candidates/:id/thesis/accept", thesisController.Accept)
		staff.POST("/candidates/:id/thesis/reject", thesisController.Reject)
		staff.GET("/candidates/:id/checklist", checklistController.GetChecklist)
		staff.POST("/candidates/:id/checklist/:item", checklistController.MarkItemReceived)

		staff.POST("/years", referenceController.CreateYear)
		staff.POST("/departments", referenceController.CreateDepartment)
		staff.POST("/degrees", referenceController.CreateDegree)
		staff.POST("/languages", referenceController.CreateLanguage)
	}
}
