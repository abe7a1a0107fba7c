// Package keywords canonicalizes free-text keyword strings so that
// equivalent spellings deduplicate and accented text is findable in
// plain-ASCII searches.
package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

// MaxLength is the maximum number of code points allowed in the
// canonical (NFD) form of a keyword.
const MaxLength = 190

// searchTransformer strips nonspacing marks from NFD text, leaving the
// base letters behind.
var searchTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize returns the canonical form (Unicode NFD) of text and the
// derived search form (NFD with combining marks removed, lower-cased).
// It fails with apperrors.ErrKeywordInvalid when text is empty or when
// the canonical form exceeds MaxLength code points.
//
// Normalize is idempotent: feeding a canonical form back in returns it
// unchanged, and search forms are stable under repeated application.
func Normalize(text string) (canonical, searchText string, err error) {
	if text == "" {
		return "", "", apperrors.ErrKeywordInvalid
	}

	canonical = norm.NFD.String(text)
	if utf8.RuneCountInString(canonical) > MaxLength {
		return "", "", apperrors.ErrKeywordInvalid
	}

	stripped, _, err := transform.String(searchTransformer, text)
	if err != nil {
		return "", "", apperrors.NewCustomError(apperrors.ErrKeywordInvalid, "keyword could not be transformed")
	}
	searchText = strings.ToLower(stripped)

	return canonical, searchText, nil
}
