package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
)

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *domain.Attendance) error
	ExistsByParticipantAndActivity(ctx context.Context, participantID, activityID uuid.UUID) (bool, error)
	FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.Attendance, error)
	CountByParticipant(ctx context.Context, participantID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// attendanceRepositoryImpl is the GORM implementation of AttendanceRepository
type attendanceRepositoryImpl struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new instance of AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create creates a new attendance record
func (r *attendanceRepositoryImpl) Create(ctx context.Context, attendance *domain.Attendance) error {
	if err := r.db.WithContext(ctx).Create(attendance).Error; err != nil {
		return err
	}
	return nil
}

// ExistsByParticipantAndActivity reports whether the participant already
// confirmed attendance for the activity
func (r *attendanceRepositoryImpl) ExistsByParticipantAndActivity(ctx context.Context, participantID, activityID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("participante_id = ? AND conferencia_id = ?", participantID, activityID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByParticipant returns all attendances of a participant with their
// activities preloaded, oldest first
func (r *attendanceRepositoryImpl) FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.Attendance, error) {
	var attendances []domain.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Conferencia").
		Where("participante_id = ?", participantID).
		Order("creado ASC").
		Find(&attendances).Error; err != nil {
		return nil, err
	}
	return attendances, nil
}

// CountByParticipant returns how many attendances a participant has
func (r *attendanceRepositoryImpl) CountByParticipant(ctx context.Context, participantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("participante_id = ?", participantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the total number of attendance records
func (r *attendanceRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
