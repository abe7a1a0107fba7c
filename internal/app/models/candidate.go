package models

import "github.com/kaan/etdtrack/internal/pkg/apperrors"

// CandidateStatus is a derived classification of a candidate's overall
// progress. It is recomputed from the thesis and checklist on every
// read; there is no stored status column.
type CandidateStatus string

const (
	StatusAll                  CandidateStatus = "all"
	StatusInProgress           CandidateStatus = "in_progress"
	StatusAwaitingGradschool   CandidateStatus = "awaiting_gradschool"
	StatusDissertationRejected CandidateStatus = "dissertation_rejected"
	StatusPaperworkIncomplete  CandidateStatus = "paperwork_incomplete"
	StatusComplete             CandidateStatus = "complete"
)

// ValidCandidateStatus reports whether s names a known status bucket.
func ValidCandidateStatus(s string) bool {
	switch CandidateStatus(s) {
	case StatusAll, StatusInProgress, StatusAwaitingGradschool,
		StatusDissertationRejected, StatusPaperworkIncomplete, StatusComplete:
		return true
	}
	return false
}

// Candidate binds a person to a degree program and owns the thesis and
// gradschool checklist created alongside it.
type Candidate struct {
	ID             int64  `json:"id"`
	PersonID       int64  `json:"person_id"`
	YearID         int64  `json:"year_id"`
	DepartmentID   int64  `json:"department_id"`
	DegreeID       int64  `json:"degree_id"`
	EmbargoEndYear *int   `json:"embargo_end_year,omitempty"`

	Person     *Person              `json:"person,omitempty"`
	Year       *Year                `json:"year,omitempty"`
	Department *Department          `json:"department,omitempty"`
	Degree     *Degree              `json:"degree,omitempty"`
	Thesis     *Thesis              `json:"thesis,omitempty"`
	Checklist  *GradschoolChecklist `json:"gradschool_checklist,omitempty"`
	Committee  []*CommitteeMember   `json:"committee,omitempty"`
}

// Validate enforces the save-time invariant: a candidate's person must
// carry an institutional identifier. Run before every persistence call.
func (c *Candidate) Validate() error {
	if c.Person == nil || !c.Person.HasInstitutionalID() {
		return apperrors.ErrCandidateCreation
	}
	return nil
}

// Status classifies the candidate from its thesis status and checklist
// completeness. The buckets are mutually exclusive at the moment of the
// call.
func (c *Candidate) DerivedStatus() CandidateStatus {
	thesis := c.Thesis
	if thesis == nil {
		return StatusInProgress
	}
	switch thesis.Status {
	case ThesisPending:
		return StatusAwaitingGradschool
	case ThesisRejected:
		return StatusDissertationRejected
	case ThesisAccepted:
		if c.Checklist != nil && c.Checklist.Complete() {
			return StatusComplete
		}
		return StatusPaperworkIncomplete
	default:
		return StatusInProgress
	}
}
