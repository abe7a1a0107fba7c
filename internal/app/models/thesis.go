package models

import (
	"strings"
	"time"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// ThesisStatus is the workflow state of a thesis.
type ThesisStatus string

const (
	ThesisNotSubmitted ThesisStatus = "not_submitted"
	ThesisPending      ThesisStatus = "pending"
	ThesisAccepted     ThesisStatus = "accepted"
	ThesisRejected     ThesisStatus = "rejected"
)

// FormatReview holds the reviewer's formatting comments recorded on
// rejection. Only non-empty fields appear in the rejection email.
type FormatReview struct {
	GeneralComments      string `json:"general_comments,omitempty"`
	TitlePageComment     string `json:"title_page_comment,omitempty"`
	SignaturePageComment string `json:"signature_page_comment,omitempty"`
	FontComment          string `json:"font_comment,omitempty"`
	SpacingComment       string `json:"spacing_comment,omitempty"`
	MarginsComment       string `json:"margins_comment,omitempty"`
	PaginationComment    string `json:"pagination_comment,omitempty"`
	FormatComment        string `json:"format_comment,omitempty"`
	GraphsComment        string `json:"graphs_comment,omitempty"`
	DatingComment        string `json:"dating_comment,omitempty"`
}

// IssuesMessage assembles the itemized issues text for the rejection
// email: general comments first, then the element comments in document
// order, skipping empty fields.
func (r FormatReview) IssuesMessage() string {
	var b strings.Builder
	if r.GeneralComments != "" {
		b.WriteString("General Comments:\n" + r.GeneralComments + "\n\n")
	}
	b.WriteString("These elements of your dissertation are not properly formatted:\n\n")

	items := []struct {
		label   string
		comment string
	}{
		{"Title page", r.TitlePageComment},
		{"Signature page", r.SignaturePageComment},
		{"Font", r.FontComment},
		{"Spacing", r.SpacingComment},
		{"Margins", r.MarginsComment},
		{"Pagination", r.PaginationComment},
		{"Format", r.FormatComment},
		{"Graphs", r.GraphsComment},
		{"Dating", r.DatingComment},
	}
	for _, item := range items {
		if item.comment != "" {
			b.WriteString(item.label + ": " + item.comment + "\n\n")
		}
	}
	return b.String()
}

// Thesis is the dissertation artifact plus its metadata and workflow
// state. A thesis with no document is a valid placeholder; one is
// created automatically alongside every candidate.
type Thesis struct {
	ID          int64        `json:"id"`
	CandidateID int64        `json:"candidate_id"`
	Title       string       `json:"title"`
	Abstract    string       `json:"abstract"`
	LanguageID  *int64       `json:"language_id,omitempty"`
	Keywords    []*Keyword   `json:"keywords,omitempty"`
	Status      ThesisStatus `json:"status"`

	// Document fields; empty until a file is attached.
	FileName     string `json:"file_name,omitempty"`
	DocumentPath string `json:"-"`
	Checksum     string `json:"checksum,omitempty"`

	DateSubmitted *time.Time `json:"date_submitted,omitempty"`
	DateAccepted  *time.Time `json:"date_accepted,omitempty"`
	DateRejected  *time.Time `json:"date_rejected,omitempty"`

	Review FormatReview `json:"review"`

	Language *Language `json:"language,omitempty"`
}

// NewThesis returns the placeholder thesis created with a candidate.
func NewThesis(candidateID int64) *Thesis {
	return &Thesis{
		CandidateID: candidateID,
		Status:      ThesisNotSubmitted,
	}
}

// HasDocument reports whether a file has been attached.
func (t *Thesis) HasDocument() bool {
	return t.DocumentPath != ""
}

// MetadataComplete reports whether title, abstract, and at least one
// keyword are set.
func (t *Thesis) MetadataComplete() bool {
	return strings.TrimSpace(t.Title) != "" &&
		strings.TrimSpace(t.Abstract) != "" &&
		len(t.Keywords) > 0
}

// IsPDFFileName reports whether name carries the only accepted
// document extension.
func IsPDFFileName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// AttachDocument records a newly stored document on the thesis,
// replacing any previous one. The checksum is computed by the caller
// from the uploaded bytes, once per document version.
//
// Replacing the document on a rejected thesis resets the status to
// not_submitted so the candidate can resubmit; the rejection timestamp
// is cleared. Replacing an accepted thesis's document is refused.
func (t *Thesis) AttachDocument(fileName, storagePath, checksum string) error {
	if !IsPDFFileName(fileName) {
		return apperrors.ErrThesisInvalidFile
	}
	if t.Status == ThesisAccepted {
		return apperrors.ErrThesisDocumentLocked
	}

	t.FileName = fileName
	t.DocumentPath = storagePath
	t.Checksum = checksum

	if t.Status == ThesisRejected {
		t.Status = ThesisNotSubmitted
		t.DateRejected = nil
	}
	return nil
}

// Submit moves the thesis to pending. It requires a document and
// complete metadata; otherwise it fails with ErrThesisNotReady and
// leaves the thesis unchanged.
func (t *Thesis) Submit(now time.Time) error {
	if !t.HasDocument() || !t.MetadataComplete() {
		return apperrors.ErrThesisNotReady
	}
	t.Status = ThesisPending
	t.DateSubmitted = &now
	return nil
}

// Accept moves a pending thesis to accepted. Any other starting state
// fails with ErrThesisInvalidTransition and leaves the thesis
// unchanged.
func (t *Thesis) Accept(now time.Time) error {
	if t.Status != ThesisPending {
		return apperrors.ErrThesisInvalidTransition
	}
	t.Status = ThesisAccepted
	t.DateAccepted = &now
	return nil
}

// Reject moves a pending thesis to rejected, recording the reviewer's
// formatting comments. Any other starting state fails with
// ErrThesisInvalidTransition and leaves the thesis unchanged.
func (t *Thesis) Reject(review FormatReview, now time.Time) error {
	if t.Status != ThesisPending {
		return apperrors.ErrThesisInvalidTransition
	}
	t.Status = ThesisRejected
	t.DateRejected = &now
	t.Review = review
	return nil
}
