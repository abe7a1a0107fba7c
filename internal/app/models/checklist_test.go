package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/etdtrack/internal/pkg/apperrors"
)

func TestChecklistStartsIncomplete(t *testing.T) {
	checklist := &GradschoolChecklist{}
	assert.False(t, checklist.Complete())
	assert.Equal(t, "Incomplete", checklist.Status())
	for _, item := range ChecklistItems {
		assert.Nil(t, checklist.ReceivedAt(item))
	}
}

func TestMarkReceivedEachItem(t *testing.T) {
	checklist := &GradschoolChecklist{}
	now := time.Now()

	for i, item := range ChecklistItems {
		require.NoError(t, checklist.MarkReceived(item, now))
		received := checklist.ReceivedAt(item)
		require.NotNil(t, received)
		assert.Equal(t, now, *received)

		// Complete only once the last item lands.
		if i < len(ChecklistItems)-1 {
			assert.False(t, checklist.Complete())
		}
	}
	assert.True(t, checklist.Complete())
	assert.Equal(t, "Complete", checklist.Status())
}

func TestMarkReceivedOverwrites(t *testing.T) {
	checklist := &GradschoolChecklist{}
	first := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	second := first.Add(72 * time.Hour)

	require.NoError(t, checklist.MarkReceived(ItemBursarReceipt, first))
	require.NoError(t, checklist.MarkReceived(ItemBursarReceipt, second))

	received := checklist.ReceivedAt(ItemBursarReceipt)
	require.NotNil(t, received)
	assert.Equal(t, second, *received)
}

func TestMarkReceivedUnknownItem(t *testing.T) {
	checklist := &GradschoolChecklist{}
	err := checklist.MarkReceived(ChecklistItem("library_card"), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrChecklistUnknownItem)
}

func TestValidChecklistItem(t *testing.T) {
	for _, item := range ChecklistItems {
		assert.True(t, ValidChecklistItem(string(item)))
	}
	assert.False(t, ValidChecklistItem("library_card"))
	assert.False(t, ValidChecklistItem(""))
}
