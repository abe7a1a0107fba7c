// Package notifications builds and sends the workflow emails that react
// to thesis and checklist transitions. Delivery failures propagate to
// the caller; there is no fail-silent mode.
package notifications

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
	"github.com/kaan/etdtrack/internal/pkg/mailer"
)

// timestampLayout renders receipt times the way the paperwork emails
// display them, e.g. "03/04/2016 at 18:56".
const timestampLayout = "01/02/2006 at 15:04"

// Config holds the fixed addresses the templates reference.
type Config struct {
	// ContactAddress is the grad school contact line shown in message
	// bodies, e.g. "gradschool@example.edu or 555-0100".
	ContactAddress string
}

// Dispatcher builds templated messages for workflow events and hands
// them to the outbound mail capability.
type Dispatcher struct {
	mail   mailer.Mailer
	config Config
	logger zerolog.Logger
	now    func() time.Time
}

// NewDispatcher creates a Dispatcher sending through mail.
func NewDispatcher(mail mailer.Mailer, config Config, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		mail:   mail,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// SendAccept notifies the candidate that the submission was approved.
func (d *Dispatcher) SendAccept(candidate *models.Candidate) error {
	body := fill(acceptTemplate, map[string]string{
		"first_name": candidate.Person.FirstName,
		"last_name":  candidate.Person.LastName,
		"title":      candidate.Thesis.Title,
	})
	return d.send(candidate, acceptSubject, body)
}

// SendReject notifies the candidate of a rejection, carrying the
// itemized formatting issues assembled from the thesis review.
func (d *Dispatcher) SendReject(candidate *models.Candidate) error {
	body := fill(rejectTemplate, map[string]string{
		"first_name": candidate.Person.FirstName,
		"last_name":  candidate.Person.LastName,
		"title":      candidate.Thesis.Title,
		"issues":     candidate.Thesis.Review.IssuesMessage(),
		"contact":    d.config.ContactAddress,
	})
	return d.send(candidate, rejectSubject, body)
}

// SendPaperworkReceived notifies the candidate that one checklist item
// was received.
func (d *Dispatcher) SendPaperworkReceived(candidate *models.Candidate, item models.ChecklistItem) error {
	info, ok := paperworkInfo[item]
	if !ok {
		return apperrors.ErrChecklistUnknownItem
	}
	body := fill(paperworkTemplate, map[string]string{
		"first_name": candidate.Person.FirstName,
		"last_name":  candidate.Person.LastName,
		"snippet":    info.snippet,
		"now":        d.now().Format(timestampLayout),
	})
	return d.send(candidate, info.subject, body)
}

// SendComplete notifies the candidate that the thesis and all paperwork
// have been received.
func (d *Dispatcher) SendComplete(candidate *models.Candidate) error {
	body := fill(completeTemplate, map[string]string{
		"first_name": candidate.Person.FirstName,
		"last_name":  candidate.Person.LastName,
		"title":      candidate.Thesis.Title,
		"contact":    d.config.ContactAddress,
	})
	return d.send(candidate, completeSubject, body)
}

func (d *Dispatcher) send(candidate *models.Candidate, subject, body string) error {
	msg := mailer.Message{
		To:      candidate.Person.Email,
		Subject: subject,
		Body:    body,
	}
	if err := d.mail.Send(msg); err != nil {
		d.logger.Error().Err(err).Str("to", msg.To).Str("subject", subject).Msg("Notification delivery failed")
		return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, err)
	}
	d.logger.Info().Str("to", msg.To).Str("subject", subject).Msg("Notification sent")
	return nil
}

func fill(template string, params map[string]string) string {
	out := template
	for key, value := range params {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}
