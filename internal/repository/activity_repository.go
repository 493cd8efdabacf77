package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
)

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	FindActive(ctx context.Context) ([]domain.Activity, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	Count(ctx context.Context) (int64, error)
}

// activityRepositoryImpl is the GORM implementation of ActivityRepository
type activityRepositoryImpl struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Create creates a new activity
func (r *activityRepositoryImpl) Create(ctx context.Context, activity *domain.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return err
	}
	return nil
}

// FindActive returns the published schedule ordered by start time
func (r *activityRepositoryImpl) FindActive(ctx context.Context) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.db.WithContext(ctx).
		Where("activa = ?", true).
		Order("fecha_inicio ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// FindActiveByID finds an active activity by its ID. Inactive activities are
// treated as not found so they cannot collect attendance.
func (r *activityRepositoryImpl) FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	var activity domain.Activity
	if err := r.db.WithContext(ctx).
		Where("id = ? AND activa = ?", id, true).
		First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// Count returns the total number of activities
func (r *activityRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Activity{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
