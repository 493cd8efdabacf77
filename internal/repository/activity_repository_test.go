package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
)

func TestActivityRepository_FindActive(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	day := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	late := seedActivity(t, db, "Foro de egresados", day.Add(16*time.Hour), true)
	early := seedActivity(t, db, "Conferencia magistral", day.Add(9*time.Hour), true)
	seedActivity(t, db, "Taller cancelado", day.Add(12*time.Hour), false)

	activities, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	// Ordered by start time, inactive rows filtered out
	assert.Equal(t, early.ID, activities[0].ID)
	assert.Equal(t, late.ID, activities[1].ID)

	// The inactive flag survives the insert instead of being swallowed by
	// a column default
	var cancelled domain.Activity
	require.NoError(t, db.First(&cancelled, "titulo = ?", "Taller cancelado").Error)
	assert.False(t, cancelled.Activa)
}

func TestActivityRepository_FindActiveByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	start := time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)
	active := seedActivity(t, db, "Conferencia magistral", start, true)
	inactive := seedActivity(t, db, "Taller cancelado", start, false)

	found, err := repo.FindActiveByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "Conferencia magistral", found.Titulo)

	// An inactive activity is invisible to attendance confirmation
	_, err = repo.FindActiveByID(ctx, inactive.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
