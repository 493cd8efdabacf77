package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindByEmail(ctx context.Context, email string) (*domain.Participant, error)
	FindByEmails(ctx context.Context, emails []string) ([]*domain.Participant, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByBracelet(ctx context.Context, bracelet string) (bool, error)
	UpdateBracelet(ctx context.Context, id uuid.UUID, bracelet string) error
	Count(ctx context.Context) (int64, error)
}

// participantRepositoryImpl is the GORM implementation of ParticipantRepository
type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

// Create creates a new participant
func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a participant by its ID
func (r *participantRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindByEmail finds a participant by normalized email
func (r *participantRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindByEmails finds all participants whose email is in the given list
func (r *participantRepositoryImpl) FindByEmails(ctx context.Context, emails []string) ([]*domain.Participant, error) {
	if len(emails) == 0 {
		return []*domain.Participant{}, nil
	}

	var participants []*domain.Participant
	if err := r.db.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// ExistsByEmail reports whether a participant with the given email exists
func (r *participantRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByBracelet reports whether the bracelet code is already assigned
func (r *participantRepositoryImpl) ExistsByBracelet(ctx context.Context, bracelet string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("brazalete = ?", bracelet).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateBracelet assigns a bracelet code to a participant
func (r *participantRepositoryImpl) UpdateBracelet(ctx context.Context, id uuid.UUID, bracelet string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("id = ?", id).
		Update("brazalete", bracelet)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of registered participants
func (r *participantRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
