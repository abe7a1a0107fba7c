package models

import "github.com/kaan/etdtrack/internal/pkg/keywords"

// Keyword is a subject keyword attached to a thesis. Text is stored in
// canonical NFD form and is unique; SearchText is the case-folded,
// diacritic-stripped form used for matching.
type Keyword struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	SearchText string `json:"search_text"`
}

// NewKeyword canonicalizes text and builds a Keyword from it. Fails
// with apperrors.ErrKeywordInvalid for empty input or input whose
// canonical form exceeds the length limit.
func NewKeyword(text string) (*Keyword, error) {
	canonical, searchText, err := keywords.Normalize(text)
	if err != nil {
		return nil, err
	}
	return &Keyword{Text: canonical, SearchText: searchText}, nil
}
