package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestCandidateValidateRequiresInstitutionalID(t *testing.T) {
	candidate := &Candidate{Person: &Person{FirstName: "Ada", LastName: "Lovelace"}}
	assert.ErrorIs(t, candidate.Validate(), apperrors.ErrCandidateCreation)

	candidate.Person.NetID = strPtr("alovelace")
	assert.NoError(t, candidate.Validate())

	// ORCID alone is also enough.
	orcidOnly := &Candidate{Person: &Person{ORCID: strPtr("0000-0002-1825-0097")}}
	assert.NoError(t, orcidOnly.Validate())
}

func TestCandidateValidateNilPerson(t *testing.T) {
	candidate := &Candidate{}
	assert.ErrorIs(t, candidate.Validate(), apperrors.ErrCandidateCreation)
}

func TestCandidateValidateEmptyIdentifiers(t *testing.T) {
	candidate := &Candidate{Person: &Person{NetID: strPtr(""), ORCID: strPtr("")}}
	assert.ErrorIs(t, candidate.Validate(), apperrors.ErrCandidateCreation)
}

func TestDerivedStatusPartition(t *testing.T) {
	now := time.Now()
	completeChecklist := &GradschoolChecklist{
		DissertationFee:            &now,
		BursarReceipt:              &now,
		GradschoolExitSurvey:       &now,
		EarnedDocsSurvey:           &now,
		PagesSubmittedToGradschool: &now,
	}

	tests := []struct {
		name      string
		thesis    *Thesis
		checklist *GradschoolChecklist
		want      CandidateStatus
	}{
		{"no thesis yet", nil, nil, StatusInProgress},
		{"not submitted", &Thesis{Status: ThesisNotSubmitted}, nil, StatusInProgress},
		{"pending review", &Thesis{Status: ThesisPending}, nil, StatusAwaitingGradschool},
		{"rejected", &Thesis{Status: ThesisRejected}, nil, StatusDissertationRejected},
		{"accepted, paperwork open", &Thesis{Status: ThesisAccepted}, &GradschoolChecklist{}, StatusPaperworkIncomplete},
		{"accepted, no checklist row", &Thesis{Status: ThesisAccepted}, nil, StatusPaperworkIncomplete},
		{"accepted, paperwork done", &Thesis{Status: ThesisAccepted}, completeChecklist, StatusComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := &Candidate{Thesis: tt.thesis, Checklist: tt.checklist}
			assert.Equal(t, tt.want, candidate.DerivedStatus())
		})
	}
}

func TestValidCandidateStatus(t *testing.T) {
	for _, status := range []CandidateStatus{
		StatusAll, StatusInProgress, StatusAwaitingGradschool,
		StatusDissertationRejected, StatusPaperworkIncomplete, StatusComplete,
	} {
		assert.True(t, ValidCandidateStatus(string(status)))
	}
	assert.False(t, ValidCandidateStatus("graduated"))
}

func TestPersonNormalizeIdentifiers(t *testing.T) {
	person := &Person{NetID: strPtr(""), ORCID: strPtr("0000-0002-1825-0097"), BannerID: strPtr("")}
	person.NormalizeIdentifiers()

	assert.Nil(t, person.NetID)
	assert.Nil(t, person.BannerID)
	require.NotNil(t, person.ORCID)
	assert.Equal(t, "0000-0002-1825-0097", *person.ORCID)
}
