package models

import (
	"time"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// ChecklistItem names one of the five completion-paperwork items.
type ChecklistItem string

const (
	ItemDissertationFee    ChecklistItem = "dissertation_fee"
	ItemBursarReceipt      ChecklistItem = "bursar_receipt"
	ItemExitSurvey         ChecklistItem = "gradschool_exit_survey"
	ItemEarnedDocsSurvey   ChecklistItem = "earned_docs_survey"
	ItemPagesSubmitted     ChecklistItem = "pages_submitted_to_gradschool"
)

// ChecklistItems lists every paperwork item.
var ChecklistItems = []ChecklistItem{
	ItemDissertationFee,
	ItemBursarReceipt,
	ItemExitSurvey,
	ItemEarnedDocsSurvey,
	ItemPagesSubmitted,
}

// GradschoolChecklist tracks receipt of the five completion-paperwork
// items. Items are independent; there is no ordering between them.
type GradschoolChecklist struct {
	ID                         int64      `json:"id"`
	CandidateID                int64      `json:"candidate_id"`
	DissertationFee            *time.Time `json:"dissertation_fee,omitempty"`
	BursarReceipt              *time.Time `json:"bursar_receipt,omitempty"`
	GradschoolExitSurvey       *time.Time `json:"gradschool_exit_survey,omitempty"`
	EarnedDocsSurvey           *time.Time `json:"earned_docs_survey,omitempty"`
	PagesSubmittedToGradschool *time.Time `json:"pages_submitted_to_gradschool,omitempty"`
}

// MarkReceived records that item was received at now. Re-marking an
// already received item overwrites its timestamp.
func (c *GradschoolChecklist) MarkReceived(item ChecklistItem, now time.Time) error {
	switch item {
	case ItemDissertationFee:
		c.DissertationFee = &now
	case ItemBursarReceipt:
		c.BursarReceipt = &now
	case ItemExitSurvey:
		c.GradschoolExitSurvey = &now
	case ItemEarnedDocsSurvey:
		c.EarnedDocsSurvey = &now
	case ItemPagesSubmitted:
		c.PagesSubmittedToGradschool = &now
	default:
		return apperrors.ErrChecklistUnknownItem
	}
	return nil
}

// ReceivedAt returns the receipt timestamp for item, or nil.
func (c *GradschoolChecklist) ReceivedAt(item ChecklistItem) *time.Time {
	switch item {
	case ItemDissertationFee:
		return c.DissertationFee
	case ItemBursarReceipt:
		return c.BursarReceipt
	case ItemExitSurvey:
		return c.GradschoolExitSurvey
	case ItemEarnedDocsSurvey:
		return c.EarnedDocsSurvey
	case ItemPagesSubmitted:
		return c.PagesSubmittedToGradschool
	}
	return nil
}

// Complete reports whether all five items have been received.
func (c *GradschoolChecklist) Complete() bool {
	return c.DissertationFee != nil &&
		c.BursarReceipt != nil &&
		c.GradschoolExitSurvey != nil &&
		c.EarnedDocsSurvey != nil &&
		c.PagesSubmittedToGradschool != nil
}

// Status renders the checklist state for display. Derived only; the
// timestamps are the authoritative state.
func (c *GradschoolChecklist) Status() string {
	if c.Complete() {
		return "Complete"
	}
	return "Incomplete"
}

// ValidChecklistItem reports whether s names a known paperwork item.
func ValidChecklistItem(s string) bool {
	for _, item := range ChecklistItems {
		if string(item) == s {
			return true
		}
	}
	return false
}
