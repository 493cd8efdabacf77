package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jornada-registro-api/internal/domain"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// Foreign key constraints are skipped during migration for SQLite
// compatibility; the unique indexes the repositories rely on are created.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Participant{},
		&domain.Activity{},
		&domain.Attendance{},
		&domain.Team{},
		&domain.TeamMember{},
	))

	return db
}

func seedParticipant(t *testing.T, db *gorm.DB, email string) *domain.Participant {
	t.Helper()

	p := &domain.Participant{
		ApellidoPaterno: "García",
		ApellidoMaterno: "López",
		PrimerNombre:    "Juan",
		Email:           email,
		Telefono:        "5512345678",
		Categoria:       domain.CategoryStudent,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedActivity(t *testing.T, db *gorm.DB, title string, start time.Time, active bool) *domain.Activity {
	t.Helper()

	a := &domain.Activity{
		Titulo:      title,
		FechaInicio: start,
		FechaFin:    start.Add(time.Hour),
		Activa:      active,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}
