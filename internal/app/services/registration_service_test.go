package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/app/models/dto"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

func TestEmbargoEndYear(t *testing.T) {
	end, err := embargoEndYear("2016")
	require.NoError(t, err)
	assert.Equal(t, 2018, end)

	end, err = embargoEndYear("2026")
	require.NoError(t, err)
	assert.Equal(t, 2028, end)
}

func TestEmbargoEndYearNonNumericYear(t *testing.T) {
	_, err := embargoEndYear("Spring 2016")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = embargoEndYear("")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestApplyPersonFieldsKeepsAbsentIdentifiers(t *testing.T) {
	netid := "jcarberry"
	person := &models.Person{NetID: &netid}

	// A re-registration form without identifiers must not clear the
	// ones already on record.
	applyPersonFields(person, &dto.RegisterCandidateRequest{
		FirstName: "Josiah",
		LastName:  "Carberry",
		Email:     "jcarberry@example.edu",
	})

	require.NotNil(t, person.NetID)
	assert.Equal(t, "jcarberry", *person.NetID)
	assert.Nil(t, person.ORCID)
	assert.Equal(t, "Josiah", person.FirstName)
}

func TestApplyPersonFieldsSetsIdentifiers(t *testing.T) {
	person := &models.Person{}

	applyPersonFields(person, &dto.RegisterCandidateRequest{
		NetID:     "jcarberry",
		ORCID:     "0000-0002-1825-0097",
		FirstName: "Josiah",
		LastName:  "Carberry",
		Email:     "jcarberry@example.edu",
	})

	require.NotNil(t, person.NetID)
	assert.Equal(t, "jcarberry", *person.NetID)
	require.NotNil(t, person.ORCID)
	assert.Equal(t, "0000-0002-1825-0097", *person.ORCID)
}
