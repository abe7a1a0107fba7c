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

// ThesisRepository handles database operations for theses
type ThesisRepository struct {
	db *pgxpool.Pool
}

// NewThesisRepository creates a new thesis repository
func NewThesisRepository(db *pgxpool.Pool) *ThesisRepository {
	return &ThesisRepository{
		db: db,
	}
}

const thesisColumns = `id, candidate_id, title, abstract, language_id, status,
	file_name, document_path, checksum, date_submitted, date_accepted, date_rejected,
	general_comments, title_page_comment, signature_page_comment, font_comment,
	spacing_comment, margins_comment, pagination_comment, format_comment,
	graphs_comment, dating_comment`

func scanThesis(row pgx.Row) (*models.Thesis, error) {
	var t models.Thesis
	err := row.Scan(
		&t.ID,
		&t.CandidateID,
		&t.Title,
		&t.Abstract,
		&t.LanguageID,
		&t.Status,
		&t.FileName,
		&t.DocumentPath,
		&t.Checksum,
		&t.DateSubmitted,
		&t.DateAccepted,
		&t.DateRejected,
		&t.Review.GeneralComments,
		&t.Review.TitlePageComment,
		&t.Review.SignaturePageComment,
		&t.Review.FontComment,
		&t.Review.SpacingComment,
		&t.Review.MarginsComment,
		&t.Review.PaginationComment,
		&t.Review.FormatComment,
		&t.Review.GraphsComment,
		&t.Review.DatingComment,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTx inserts the placeholder thesis for a new candidate inside a
// caller-owned transaction.
func (r *ThesisRepository) CreateTx(ctx context.Context, q DB, thesis *models.Thesis) error {
	query := `
		INSERT INTO theses (candidate_id, status)
		VALUES ($1, $2)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, thesis.CandidateID, thesis.Status).Scan(&thesis.ID)
	if err != nil {
		return fmt.Errorf("error creating thesis: %w", err)
	}
	return nil
}

// GetByCandidateID retrieves a candidate's thesis with its keywords.
func (r *ThesisRepository) GetByCandidateID(ctx context.Context, candidateID int64) (*models.Thesis, error) {
	query := `SELECT ` + thesisColumns + ` FROM theses WHERE candidate_id = $1`

	thesis, err := scanThesis(r.db.QueryRow(ctx, query, candidateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrThesisNotFound
		}
		return nil, fmt.Errorf("error retrieving thesis: %w", err)
	}

	if err := r.loadKeywords(ctx, thesis); err != nil {
		return nil, err
	}
	return thesis, nil
}

func (r *ThesisRepository) loadKeywords(ctx context.Context, thesis *models.Thesis) error {
	rows, err := r.db.Query(ctx, `
		SELECT k.id, k.text, k.search_text
		FROM keywords k
		JOIN thesis_keywords tk ON tk.keyword_id = k.id
		WHERE tk.thesis_id = $1
		ORDER BY k.text`, thesis.ID)
	if err != nil {
		return fmt.Errorf("error retrieving thesis keywords: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k models.Keyword
		if err := rows.Scan(&k.ID, &k.Text, &k.SearchText); err != nil {
			return err
		}
		thesis.Keywords = append(thesis.Keywords, &k)
	}
	return rows.Err()
}

// UpdateMetadataTx updates title, abstract, and language, and replaces
// the keyword links, inside a caller-owned transaction.
func (r *ThesisRepository) UpdateMetadataTx(ctx context.Context, q DB, thesis *models.Thesis) error {
	cmdTag, err := q.Exec(ctx, `
		UPDATE theses SET title = $1, abstract = $2, language_id = $3 WHERE id = $4`,
		thesis.Title, thesis.Abstract, thesis.LanguageID, thesis.ID)
	if err != nil {
		return fmt.Errorf("error updating thesis metadata: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThesisNotFound
	}

	if _, err := q.Exec(ctx, `DELETE FROM thesis_keywords WHERE thesis_id = $1`, thesis.ID); err != nil {
		return fmt.Errorf("error clearing thesis keywords: %w", err)
	}
	for _, keyword := range thesis.Keywords {
		if _, err := q.Exec(ctx,
			`INSERT INTO thesis_keywords (thesis_id, keyword_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			thesis.ID, keyword.ID); err != nil {
			return fmt.Errorf("error linking thesis keyword: %w", err)
		}
	}

	return nil
}

// UpdateDocumentTx records a new document version: file name, storage
// path, checksum, and the status/date effects of the replacement.
func (r *ThesisRepository) UpdateDocumentTx(ctx context.Context, q DB, thesis *models.Thesis) error {
	cmdTag, err := q.Exec(ctx, `
		UPDATE theses
		SET file_name = $1, document_path = $2, checksum = $3, status = $4, date_rejected = $5
		WHERE id = $6`,
		thesis.FileName, thesis.DocumentPath, thesis.Checksum, thesis.Status, thesis.DateRejected, thesis.ID)
	if err != nil {
		return fmt.Errorf("error updating thesis document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThesisNotFound
	}
	return nil
}

// MarkSubmitted persists a submit transition. The status guard keeps a
// concurrent reviewer decision from being overwritten.
func (r *ThesisRepository) MarkSubmitted(ctx context.Context, thesisID int64, submittedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE theses SET status = $1, date_submitted = $2
		WHERE id = $3 AND status IN ($4, $5)`,
		models.ThesisPending, submittedAt, thesisID, models.ThesisNotSubmitted, models.ThesisRejected)
	if err != nil {
		return fmt.Errorf("error submitting thesis: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThesisInvalidTransition
	}
	return nil
}

// MarkAccepted persists an accept transition. The WHERE status =
// 'pending' guard makes two racing reviewers resolve to exactly one
// winner.
func (r *ThesisRepository) MarkAccepted(ctx context.Context, thesisID int64, acceptedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE theses SET status = $1, date_accepted = $2
		WHERE id = $3 AND status = $4`,
		models.ThesisAccepted, acceptedAt, thesisID, models.ThesisPending)
	if err != nil {
		return fmt.Errorf("error accepting thesis: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThesisInvalidTransition
	}
	return nil
}

// MarkRejected persists a reject transition along with the reviewer's
// formatting comments, under the same pending-only guard as accept.
func (r *ThesisRepository) MarkRejected(ctx context.Context, thesisID int64, review models.FormatReview, rejectedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE theses
		SET status = $1, date_rejected = $2,
			general_comments = $3, title_page_comment = $4, signature_page_comment = $5,
			font_comment = $6, spacing_comment = $7, margins_comment = $8,
			pagination_comment = $9, format_comment = $10, graphs_comment = $11,
			dating_comment = $12
		WHERE id = $13 AND status = $14`,
		models.ThesisRejected, rejectedAt,
		review.GeneralComments, review.TitlePageComment, review.SignaturePageComment,
		review.FontComment, review.SpacingComment, review.MarginsComment,
		review.PaginationComment, review.FormatComment, review.GraphsComment,
		review.DatingComment,
		thesisID, models.ThesisPending)
	if err != nil {
		return fmt.Errorf("error rejecting thesis: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThesisInvalidTransition
	}
	return nil
}
