package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// ChecklistRepository handles database operations for gradschool
// checklists
type ChecklistRepository struct {
	db *pgxpool.Pool
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(db *pgxpool.Pool) *ChecklistRepository {
	return &ChecklistRepository{
		db: db,
	}
}

// itemColumns maps checklist items to their columns. Item names come
// from the ChecklistItem constants, never from raw user input, so the
// column interpolation below stays closed.
var itemColumns = map[models.ChecklistItem]string{
	models.ItemDissertationFee:  "dissertation_fee",
	models.ItemBursarReceipt:    "bursar_receipt",
	models.ItemExitSurvey:       "gradschool_exit_survey",
	models.ItemEarnedDocsSurvey: "earned_docs_survey",
	models.ItemPagesSubmitted:   "pages_submitted_to_gradschool",
}

// CreateTx inserts the empty checklist for a new candidate inside a
// caller-owned transaction.
func (r *ChecklistRepository) CreateTx(ctx context.Context, q DB, checklist *models.GradschoolChecklist) error {
	err := q.QueryRow(ctx,
		`INSERT INTO gradschool_checklists (candidate_id) VALUES ($1) RETURNING id`,
		checklist.CandidateID).Scan(&checklist.ID)
	if err != nil {
		return fmt.Errorf("error creating checklist: %w", err)
	}
	return nil
}

// GetByCandidateID retrieves a candidate's checklist.
func (r *ChecklistRepository) GetByCandidateID(ctx context.Context, candidateID int64) (*models.GradschoolChecklist, error) {
	var c models.GradschoolChecklist
	err := r.db.QueryRow(ctx, `
		SELECT id, candidate_id, dissertation_fee, bursar_receipt, gradschool_exit_survey,
			earned_docs_survey, pages_submitted_to_gradschool
		FROM gradschool_checklists
		WHERE candidate_id = $1`, candidateID).Scan(
		&c.ID,
		&c.CandidateID,
		&c.DissertationFee,
		&c.BursarReceipt,
		&c.GradschoolExitSurvey,
		&c.EarnedDocsSurvey,
		&c.PagesSubmittedToGradschool,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChecklistNotFound
		}
		return nil, fmt.Errorf("error retrieving checklist: %w", err)
	}
	return &c, nil
}

// MarkItem records the receipt timestamp for one paperwork item.
// Re-marking overwrites the previous timestamp.
func (r *ChecklistRepository) MarkItem(ctx context.Context, checklistID int64, item models.ChecklistItem, receivedAt time.Time) error {
	column, ok := itemColumns[item]
	if !ok {
		return apperrors.ErrChecklistUnknownItem
	}

	query := fmt.Sprintf(`UPDATE gradschool_checklists SET %s = $1 WHERE id = $2`, column)
	cmdTag, err := r.db.Exec(ctx, query, receivedAt, checklistID)
	if err != nil {
		return fmt.Errorf("error marking checklist item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChecklistNotFound
	}
	return nil
}
