package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
)

// TeamRepository defines the interface for contest team data access
type TeamRepository interface {
	CreateWithMembers(ctx context.Context, team *domain.Team, members []*domain.TeamMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	FindAllActive(ctx context.Context) ([]domain.Team, error)
	FindActiveByParticipant(ctx context.Context, participantID uuid.UUID) (*domain.Team, error)
	ExistsActiveByName(ctx context.Context, name string) (bool, error)
	IsParticipantInActiveTeam(ctx context.Context, participantID uuid.UUID) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}

// teamRepositoryImpl is the GORM implementation of TeamRepository
type teamRepositoryImpl struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepositoryImpl{db: db}
}

// CreateWithMembers creates the team and its full roster in one transaction.
// The captain's membership row is part of the roster. Active-team membership
// is re-checked inside the transaction, so a roster that lost a race to a
// concurrent creation fails without leaving any row behind.
func (r *teamRepositoryImpl) CreateWithMembers(ctx context.Context, team *domain.Team, members []*domain.TeamMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uuid.UUID, 0, len(members))
		for _, member := range members {
			ids = append(ids, member.ParticipanteID)
		}
		var taken int64
		if err := tx.Model(&domain.TeamMember{}).
			Joins("JOIN equipos ON equipos.id = miembros_equipo.equipo_id").
			Where("miembros_equipo.participante_id IN ? AND equipos.activo = ?", ids, true).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return gorm.ErrDuplicatedKey
		}

		if err := tx.Create(team).Error; err != nil {
			return err
		}
		for _, member := range members {
			member.EquipoID = team.ID
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds a team by its ID with members and their participants preloaded
func (r *teamRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	if err := r.db.WithContext(ctx).
		Preload("Miembros.Participante").
		First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindAllActive returns all active teams with their rosters, newest first
func (r *teamRepositoryImpl) FindAllActive(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	if err := r.db.WithContext(ctx).
		Preload("Miembros.Participante").
		Where("activo = ?", true).
		Order("creado DESC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// FindActiveByParticipant returns the active team a participant belongs to
func (r *teamRepositoryImpl) FindActiveByParticipant(ctx context.Context, participantID uuid.UUID) (*domain.Team, error) {
	var member domain.TeamMember
	if err := r.db.WithContext(ctx).
		Joins("JOIN equipos ON equipos.id = miembros_equipo.equipo_id").
		Where("miembros_equipo.participante_id = ? AND equipos.activo = ?", participantID, true).
		First(&member).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, member.EquipoID)
}

// ExistsActiveByName reports whether an active team already uses the name
func (r *teamRepositoryImpl) ExistsActiveByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Where("nombre_equipo = ? AND activo = ?", name, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsParticipantInActiveTeam reports whether the participant already belongs
// to an active team
func (r *teamRepositoryImpl) IsParticipantInActiveTeam(ctx context.Context, participantID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.TeamMember{}).
		Joins("JOIN equipos ON equipos.id = miembros_equipo.equipo_id").
		Where("miembros_equipo.participante_id = ? AND equipos.activo = ?", participantID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountActive returns the number of active teams
func (r *teamRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Where("activo = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
