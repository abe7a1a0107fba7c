package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

func TestNormalizeASCII(t *testing.T) {
	canonical, searchText, err := Normalize("Quantum Computing")
	require.NoError(t, err)
	assert.Equal(t, "Quantum Computing", canonical)
	assert.Equal(t, "quantum computing", searchText)
}

func TestNormalizeDiacritics(t *testing.T) {
	// The canonical form keeps the accents (decomposed); the search
	// form strips them and lowercases.
	canonical, searchText, err := Normalize("Éducation")
	require.NoError(t, err)
	assert.Equal(t, "Éducation", canonical)
	assert.Equal(t, "education", searchText)
}

func TestNormalizeIdempotent(t *testing.T) {
	first, _, err := Normalize("Über-Stämme")
	require.NoError(t, err)
	second, _, err := Normalize(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeEmpty(t *testing.T) {
	_, _, err := Normalize("")
	assert.ErrorIs(t, err, apperrors.ErrKeywordInvalid)
}

func TestNormalizeLengthLimit(t *testing.T) {
	_, _, err := Normalize(strings.Repeat("a", MaxLength))
	assert.NoError(t, err)

	_, _, err = Normalize(strings.Repeat("a", MaxLength+1))
	assert.ErrorIs(t, err, apperrors.ErrKeywordInvalid)
}

func TestNormalizeLengthCountsCodePoints(t *testing.T) {
	// Multi-byte runes still count as one code point each.
	_, _, err := Normalize(strings.Repeat("ø", MaxLength))
	assert.NoError(t, err)
}
