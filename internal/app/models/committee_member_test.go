package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

func int64Ptr(i int64) *int64 { return &i }

func TestCommitteeMemberDepartmentXorAffiliation(t *testing.T) {
	withDepartment := &CommitteeMember{Role: RoleReader, DepartmentID: int64Ptr(3)}
	assert.NoError(t, withDepartment.Validate())

	withAffiliation := &CommitteeMember{Role: RoleDirector, Affiliation: "Oxford University"}
	assert.NoError(t, withAffiliation.Validate())

	neither := &CommitteeMember{Role: RoleReader}
	assert.ErrorIs(t, neither.Validate(), apperrors.ErrCommitteeMember)

	both := &CommitteeMember{Role: RoleReader, DepartmentID: int64Ptr(3), Affiliation: "Oxford University"}
	assert.ErrorIs(t, both.Validate(), apperrors.ErrCommitteeMember)
}

func TestCommitteeMemberRoleDomain(t *testing.T) {
	member := &CommitteeMember{Role: CommitteeRole("chair"), DepartmentID: int64Ptr(3)}
	assert.ErrorIs(t, member.Validate(), apperrors.ErrValidationFailed)
}
