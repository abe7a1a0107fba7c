package services

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/notifications"
	"github.com/kaan/etdtrack/internal/app/repositories"
	"github.com/kaan/etdtrack/internal/pkg/auth"
	"github.com/kaan/etdtrack/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	RegistrationService *RegistrationService
	CandidateService    *CandidateService
	ThesisService       *ThesisService
	ChecklistService    *ChecklistService
	CommitteeService    *CommitteeService
	ReferenceService    *ReferenceService
}

// NewServices initializes all services
func NewServices(
	pool *pgxpool.Pool,
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.Storage,
	dispatcher *notifications.Dispatcher,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.StaffRepository, jwtService, logger),
		RegistrationService: NewRegistrationService(pool, repos, logger),
		CandidateService:    NewCandidateService(repos, logger),
		ThesisService:       NewThesisService(pool, repos, storage, dispatcher, logger),
		ChecklistService:    NewChecklistService(repos, dispatcher, logger),
		CommitteeService:    NewCommitteeService(pool, repos, logger),
		ReferenceService:    NewReferenceService(repos.ReferenceRepository),
	}
}
