package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/etdtrack/internal/app/models"
)

// KeywordRepository handles database operations for keywords
type KeywordRepository struct {
	db *pgxpool.Pool
}

// NewKeywordRepository creates a new keyword repository
func NewKeywordRepository(db *pgxpool.Pool) *KeywordRepository {
	return &KeywordRepository{
		db: db,
	}
}

// GetOrCreateTx finds a keyword by its canonical text or inserts it,
// inside a caller-owned transaction. Uniqueness is on the canonical
// form, so two spellings that normalize alike share a row.
func (r *KeywordRepository) GetOrCreateTx(ctx context.Context, q DB, keyword *models.Keyword) error {
	err := q.QueryRow(ctx, `SELECT id FROM keywords WHERE text = $1`, keyword.Text).Scan(&keyword.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error looking up keyword: %w", err)
	}

	// The ON CONFLICT clause covers a concurrent insert of the same
	// canonical text.
	err = q.QueryRow(ctx, `
		INSERT INTO keywords (text, search_text) VALUES ($1, $2)
		ON CONFLICT (text) DO UPDATE SET search_text = EXCLUDED.search_text
		RETURNING id`,
		keyword.Text, keyword.SearchText).Scan(&keyword.ID)
	if err != nil {
		return fmt.Errorf("error creating keyword: %w", err)
	}
	return nil
}

// likeEscaper neutralizes LIKE wildcards in user queries so "100%"
// matches the literal string rather than every keyword.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search finds keywords whose search form contains the case-folded,
// diacritic-stripped query.
func (r *KeywordRepository) Search(ctx context.Context, searchText string) ([]*models.Keyword, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, text, search_text FROM keywords
		WHERE search_text LIKE '%' || $1 || '%'
		ORDER BY text`, likeEscaper.Replace(searchText))
	if err != nil {
		return nil, fmt.Errorf("error searching keywords: %w", err)
	}
	defer rows.Close()

	var result []*models.Keyword
	for rows.Next() {
		var k models.Keyword
		if err := rows.Scan(&k.ID, &k.Text, &k.SearchText); err != nil {
			return nil, err
		}
		result = append(result, &k)
	}
	return result, rows.Err()
}
