package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

func readyThesis(t *testing.T) *Thesis {
	t.Helper()
	keyword, err := NewKeyword("History")
	require.NoError(t, err)

	thesis := NewThesis(1)
	thesis.Title = "A Study of Things"
	thesis.Abstract = "An abstract."
	thesis.Keywords = []*Keyword{keyword}
	require.NoError(t, thesis.AttachDocument("thesis.pdf", "stored/abc.pdf", "deadbeef"))
	return thesis
}

func TestNewThesisStartsNotSubmitted(t *testing.T) {
	thesis := NewThesis(7)
	assert.Equal(t, ThesisNotSubmitted, thesis.Status)
	assert.False(t, thesis.HasDocument())
	assert.False(t, thesis.MetadataComplete())
}

func TestAttachDocumentRequiresPDF(t *testing.T) {
	thesis := NewThesis(1)
	err := thesis.AttachDocument("thesis.docx", "stored/abc.docx", "deadbeef")
	assert.ErrorIs(t, err, apperrors.ErrThesisInvalidFile)
	assert.False(t, thesis.HasDocument())

	// Extension check is case-insensitive.
	assert.NoError(t, thesis.AttachDocument("THESIS.PDF", "stored/abc.pdf", "deadbeef"))
}

func TestSubmitRequiresDocumentAndMetadata(t *testing.T) {
	thesis := NewThesis(1)
	thesis.Title = "Title"
	thesis.Abstract = "Abstract"

	err := thesis.Submit(time.Now())
	assert.ErrorIs(t, err, apperrors.ErrThesisNotReady)
	assert.Equal(t, ThesisNotSubmitted, thesis.Status)
	assert.Nil(t, thesis.DateSubmitted)
}

func TestSubmitRequiresKeyword(t *testing.T) {
	thesis := readyThesis(t)
	thesis.Keywords = nil

	err := thesis.Submit(time.Now())
	assert.ErrorIs(t, err, apperrors.ErrThesisNotReady)
}

func TestSubmitAcceptFlow(t *testing.T) {
	thesis := readyThesis(t)

	submitted := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	require.NoError(t, thesis.Submit(submitted))
	assert.Equal(t, ThesisPending, thesis.Status)
	require.NotNil(t, thesis.DateSubmitted)
	assert.Equal(t, submitted, *thesis.DateSubmitted)

	accepted := submitted.Add(48 * time.Hour)
	require.NoError(t, thesis.Accept(accepted))
	assert.Equal(t, ThesisAccepted, thesis.Status)
	require.NotNil(t, thesis.DateAccepted)
	assert.Equal(t, accepted, *thesis.DateAccepted)
}

func TestAcceptOnlyFromPending(t *testing.T) {
	thesis := readyThesis(t)
	assert.ErrorIs(t, thesis.Accept(time.Now()), apperrors.ErrThesisInvalidTransition)

	require.NoError(t, thesis.Submit(time.Now()))
	require.NoError(t, thesis.Accept(time.Now()))

	// Accepting twice fails and leaves the state alone.
	assert.ErrorIs(t, thesis.Accept(time.Now()), apperrors.ErrThesisInvalidTransition)
	assert.Equal(t, ThesisAccepted, thesis.Status)
}

func TestRejectRecordsReview(t *testing.T) {
	thesis := readyThesis(t)
	require.NoError(t, thesis.Submit(time.Now()))

	review := FormatReview{FontComment: "use 12pt"}
	now := time.Now()
	require.NoError(t, thesis.Reject(review, now))
	assert.Equal(t, ThesisRejected, thesis.Status)
	assert.Equal(t, "use 12pt", thesis.Review.FontComment)
	require.NotNil(t, thesis.DateRejected)
}

func TestRejectOnlyFromPending(t *testing.T) {
	thesis := readyThesis(t)
	err := thesis.Reject(FormatReview{}, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrThesisInvalidTransition)
	assert.Equal(t, ThesisNotSubmitted, thesis.Status)
}

func TestReplaceDocumentAfterRejectionResets(t *testing.T) {
	thesis := readyThesis(t)
	require.NoError(t, thesis.Submit(time.Now()))
	require.NoError(t, thesis.Reject(FormatReview{MarginsComment: "1 inch"}, time.Now()))

	require.NoError(t, thesis.AttachDocument("revised.pdf", "stored/def.pdf", "cafebabe"))
	assert.Equal(t, ThesisNotSubmitted, thesis.Status)
	assert.Nil(t, thesis.DateRejected)
	assert.Equal(t, "revised.pdf", thesis.FileName)
	assert.Equal(t, "cafebabe", thesis.Checksum)
}

func TestReplaceDocumentAfterAcceptanceRefused(t *testing.T) {
	thesis := readyThesis(t)
	require.NoError(t, thesis.Submit(time.Now()))
	require.NoError(t, thesis.Accept(time.Now()))

	err := thesis.AttachDocument("revised.pdf", "stored/def.pdf", "cafebabe")
	assert.ErrorIs(t, err, apperrors.ErrThesisDocumentLocked)
	assert.Equal(t, "thesis.pdf", thesis.FileName)
}

func TestIssuesMessageOrdering(t *testing.T) {
	review := FormatReview{
		GeneralComments: "fix formatting",
		FontComment:     "use 12pt",
	}
	message := review.IssuesMessage()

	assert.Contains(t, message, "General Comments:\nfix formatting")
	assert.Contains(t, message, "These elements of your dissertation are not properly formatted:")
	assert.Contains(t, message, "Font: use 12pt")

	// General comments come before the itemized list.
	assert.Less(t,
		strings.Index(message, "fix formatting"),
		strings.Index(message, "Font: use 12pt"))
}

func TestIssuesMessageSkipsEmptyFields(t *testing.T) {
	review := FormatReview{SpacingComment: "double-space body text"}
	message := review.IssuesMessage()

	assert.Contains(t, message, "Spacing: double-space body text")
	assert.NotContains(t, message, "General Comments:")
	assert.NotContains(t, message, "Title page:")
	assert.NotContains(t, message, "Margins:")
}

func TestIssuesMessageDocumentOrder(t *testing.T) {
	review := FormatReview{
		TitlePageComment:  "wrong year",
		DatingComment:     "month and year only",
		PaginationComment: "roman numerals in front matter",
	}
	message := review.IssuesMessage()

	assert.Less(t, strings.Index(message, "Title page:"), strings.Index(message, "Pagination:"))
	assert.Less(t, strings.Index(message, "Pagination:"), strings.Index(message, "Dating:"))
}
