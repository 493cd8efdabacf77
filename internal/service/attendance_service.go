package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/metrics"
	"jornada-registro-api/internal/repository"
	"jornada-registro-api/internal/response"
)

// AttendanceService defines the interface for attendance business logic
type AttendanceService interface {
	Confirm(ctx context.Context, req *dto.ConfirmAttendanceRequest) (*dto.AttendanceResponse, error)
	ListByEmail(ctx context.Context, email string) ([]*dto.AttendanceDetail, error)
}

// attendanceServiceImpl is the implementation of AttendanceService
type attendanceServiceImpl struct {
	attendanceRepo  repository.AttendanceRepository
	participantRepo repository.ParticipantRepository
	activityRepo    repository.ActivityRepository
	now             func() time.Time
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewAttendanceService creates a new instance of AttendanceService
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, participantRepo repository.ParticipantRepository, activityRepo repository.ActivityRepository, m *metrics.Metrics, logger *zap.Logger) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
		now:             time.Now,
		metrics:         m,
		logger:          logger,
	}
}

// Confirm records attendance at an activity. The guards run in a fixed
// order: participant exists, activity exists and is active, the time window
// is open, and no previous attendance exists for the pair.
func (s *attendanceServiceImpl) Confirm(ctx context.Context, req *dto.ConfirmAttendanceRequest) (*dto.AttendanceResponse, error) {
	req.Normalize()

	participant, err := s.participantRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No se encontró ningún registro con este correo electrónico")
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al registrar la asistencia", err.Error())
	}

	activity, err := s.activityRepo.FindActiveByID(ctx, req.ConferenciaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Conferencia no encontrada")
		}
		s.logger.Error("Failed to find activity", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al registrar la asistencia", err.Error())
	}

	if !activity.WindowOpen(s.now()) {
		return nil, response.NewForbiddenError("La inscripción para esta conferencia no está disponible en este momento.")
	}

	exists, err := s.attendanceRepo.ExistsByParticipantAndActivity(ctx, participant.ID, activity.ID)
	if err != nil {
		s.logger.Error("Failed to check existing attendance", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al registrar la asistencia", err.Error())
	}
	if exists {
		return nil, response.NewConflictError("Ya se registró asistencia para esta conferencia")
	}

	attendance := &domain.Attendance{
		ParticipanteID: participant.ID,
		ConferenciaID:  activity.ID,
		Modo:           domain.ModeSelf,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		// Two devices confirming at once race past the pre-check; the unique
		// index turns the loser into the same conflict
		if isDuplicateKeyError(err) {
			return nil, response.NewConflictError("Ya se registró asistencia para esta conferencia")
		}
		s.logger.Error("Failed to create attendance", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al registrar la asistencia", err.Error())
	}

	s.logger.Info("Attendance confirmed",
		zap.String("participant_id", participant.ID.String()),
		zap.String("activity_id", activity.ID.String()),
	)
	if s.metrics != nil {
		s.metrics.IncrementAttendanceConfirmed()
	}

	return dto.NewAttendanceResponse(attendance), nil
}

// ListByEmail returns a participant's attendance history with activity
// details. A registered participant with no attendances gets an empty list;
// not-found is reserved for unknown emails.
func (s *attendanceServiceImpl) ListByEmail(ctx context.Context, email string) ([]*dto.AttendanceDetail, error) {
	participant, err := s.participantRepo.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No se encontró ningún registro con este correo electrónico")
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al consultar las asistencias", err.Error())
	}

	attendances, err := s.attendanceRepo.FindByParticipant(ctx, participant.ID)
	if err != nil {
		s.logger.Error("Failed to load attendances", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al consultar las asistencias", err.Error())
	}

	return dto.NewAttendanceDetails(attendances), nil
}
