package models

import "github.com/kaan/etdtrack/internal/pkg/apperrors"

// CommitteeRole is the role a committee member plays.
type CommitteeRole string

const (
	RoleReader   CommitteeRole = "reader"
	RoleDirector CommitteeRole = "director"
)

// CommitteeMember is a person serving on a candidate's committee. A
// member belongs to a university department or carries a free-text
// outside affiliation; exactly one of the two must be present.
type CommitteeMember struct {
	ID           int64         `json:"id"`
	CandidateID  int64         `json:"candidate_id"`
	PersonID     int64         `json:"person_id"`
	Role         CommitteeRole `json:"role"`
	DepartmentID *int64        `json:"department_id,omitempty"`
	Affiliation  string        `json:"affiliation,omitempty"`

	Person     *Person     `json:"person,omitempty"`
	Department *Department `json:"department,omitempty"`
}

// Validate enforces the department-xor-affiliation invariant and the
// role domain. Run before every persistence call.
func (m *CommitteeMember) Validate() error {
	if m.Role != RoleReader && m.Role != RoleDirector {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "committee member role must be reader or director")
	}
	hasDepartment := m.DepartmentID != nil
	hasAffiliation := m.Affiliation != ""
	if hasDepartment == hasAffiliation {
		return apperrors.ErrCommitteeMember
	}
	return nil
}
