package notifications

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
	"github.com/kaan/etdtrack/internal/pkg/mailer"
)

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testCandidate() *models.Candidate {
	return &models.Candidate{
		ID: 1,
		Person: &models.Person{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.edu",
		},
		Thesis: &models.Thesis{Title: "Analytical Engines"},
	}
}

func testDispatcher(mail mailer.Mailer) *Dispatcher {
	return NewDispatcher(mail, Config{ContactAddress: "gradschool@example.edu"}, zerolog.Nop())
}

func TestSendAccept(t *testing.T) {
	mail := &fakeMailer{}
	d := testDispatcher(mail)

	require.NoError(t, d.SendAccept(testCandidate()))
	require.Len(t, mail.sent, 1)

	msg := mail.sent[0]
	assert.Equal(t, "ada@example.edu", msg.To)
	assert.Equal(t, "Dissertation Submission Approved", msg.Subject)
	assert.Contains(t, msg.Body, "Dear Ada Lovelace,")
	assert.Contains(t, msg.Body, `"Analytical Engines"`)
	assert.NotContains(t, msg.Body, "{")
}

func TestSendRejectIncludesIssues(t *testing.T) {
	mail := &fakeMailer{}
	d := testDispatcher(mail)

	candidate := testCandidate()
	candidate.Thesis.Review = models.FormatReview{
		GeneralComments: "fix formatting",
		FontComment:     "use 12pt",
	}

	require.NoError(t, d.SendReject(candidate))
	require.Len(t, mail.sent, 1)

	msg := mail.sent[0]
	assert.Equal(t, "Dissertation Submission Rejected", msg.Subject)
	assert.Contains(t, msg.Body, "General Comments:\nfix formatting")
	assert.Contains(t, msg.Body, "Font: use 12pt")
	assert.Contains(t, msg.Body, "gradschool@example.edu")
}

func TestSendPaperworkReceived(t *testing.T) {
	mail := &fakeMailer{}
	d := testDispatcher(mail)
	d.now = func() time.Time {
		return time.Date(2016, 3, 4, 18, 56, 0, 0, time.UTC)
	}

	require.NoError(t, d.SendPaperworkReceived(testCandidate(), models.ItemDissertationFee))
	require.Len(t, mail.sent, 1)

	msg := mail.sent[0]
	assert.Equal(t, "Dissertation Fee", msg.Subject)
	assert.Contains(t, msg.Body, "Cashier's Office receipt was received by the Graduate School on 03/04/2016 at 18:56.")
}

func TestSendPaperworkSubjects(t *testing.T) {
	subjects := map[models.ChecklistItem]string{
		models.ItemDissertationFee:  "Dissertation Fee",
		models.ItemBursarReceipt:    "Bursar's Letter",
		models.ItemExitSurvey:       "Graduate Exit Survey",
		models.ItemEarnedDocsSurvey: "Survey of Earned Doctorates",
		models.ItemPagesSubmitted:   "Signature Pages",
	}

	mail := &fakeMailer{}
	d := testDispatcher(mail)
	for item, subject := range subjects {
		require.NoError(t, d.SendPaperworkReceived(testCandidate(), item))
		assert.Equal(t, subject, mail.sent[len(mail.sent)-1].Subject)
	}
}

func TestSendPaperworkUnknownItem(t *testing.T) {
	mail := &fakeMailer{}
	d := testDispatcher(mail)

	err := d.SendPaperworkReceived(testCandidate(), models.ChecklistItem("library_card"))
	assert.ErrorIs(t, err, apperrors.ErrChecklistUnknownItem)
	assert.Empty(t, mail.sent)
}

func TestSendComplete(t *testing.T) {
	mail := &fakeMailer{}
	d := testDispatcher(mail)

	require.NoError(t, d.SendComplete(testCandidate()))
	require.Len(t, mail.sent, 1)

	msg := mail.sent[0]
	assert.Equal(t, "Submission Process Complete", msg.Subject)
	assert.Contains(t, msg.Body, "Congratulations!")
	assert.Contains(t, msg.Body, "Analytical Engines")
}

func TestDeliveryFailurePropagates(t *testing.T) {
	mail := &fakeMailer{err: errors.New("relay unreachable")}
	d := testDispatcher(mail)

	err := d.SendAccept(testCandidate())
	assert.ErrorIs(t, err, apperrors.ErrMailDelivery)
}
