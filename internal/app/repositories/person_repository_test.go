package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIdentifierConflictNamesTheColumn(t *testing.T) {
	cases := []struct {
		constraint string
		want       string
	}{
		{"people_netid_key", "netid"},
		{"people_orcid_key", "orcid"},
		{"people_bannerid_key", "bannerid"},
	}
	for _, tc := range cases {
		err := identifierConflict(uniqueViolation(tc.constraint))
		require.ErrorIs(t, err, apperrors.ErrIdentifierExists, "constraint %s", tc.constraint)
		assert.Contains(t, err.Error(), tc.want)
	}
}

func TestIdentifierConflictUnknownConstraint(t *testing.T) {
	err := identifierConflict(uniqueViolation("people_some_future_key"))
	assert.ErrorIs(t, err, apperrors.ErrIdentifierExists)
}

func TestIdentifierConflictIgnoresOtherErrors(t *testing.T) {
	// Foreign key violation, not a duplicate identifier.
	assert.NoError(t, identifierConflict(&pgconn.PgError{Code: "23503"}))
	assert.NoError(t, identifierConflict(errors.New("connection reset")))
	assert.NoError(t, identifierConflict(nil))
}
