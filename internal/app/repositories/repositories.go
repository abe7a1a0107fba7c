package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgxpool.Pool and pgx.Tx the repositories run
// queries against. Methods that must compose into a caller-owned
// transaction take it explicitly.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	PersonRepository    *PersonRepository
	CandidateRepository *CandidateRepository
	ThesisRepository    *ThesisRepository
	ChecklistRepository *ChecklistRepository
	KeywordRepository   *KeywordRepository
	CommitteeRepository *CommitteeRepository
	ReferenceRepository *ReferenceRepository
	StaffRepository     *StaffRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		PersonRepository:    NewPersonRepository(db),
		CandidateRepository: NewCandidateRepository(db),
		ThesisRepository:    NewThesisRepository(db),
		ChecklistRepository: NewChecklistRepository(db),
		KeywordRepository:   NewKeywordRepository(db),
		CommitteeRepository: NewCommitteeRepository(db),
		ReferenceRepository: NewReferenceRepository(db),
		StaffRepository:     NewStaffRepository(db),
	}
}
