package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"jornada-registro-api/internal/client"
	"jornada-registro-api/internal/domain"
	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/metrics"
	"jornada-registro-api/internal/repository"
	"jornada-registro-api/internal/response"
)

// ParticipantService defines the interface for participant business logic
type ParticipantService interface {
	Register(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.ParticipantResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.ParticipantResponse, error)
	CheckEmailUnique(ctx context.Context, email string) (*dto.UniqueCheckResponse, error)
	CheckBraceletUnique(ctx context.Context, bracelet string) (*dto.UniqueCheckResponse, error)
	AssignBracelet(ctx context.Context, req *dto.AssignBraceletRequest) (*dto.ParticipantResponse, error)
}

// participantServiceImpl is the implementation of ParticipantService
type participantServiceImpl struct {
	participantRepo repository.ParticipantRepository
	emailClient     client.EmailClient
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewParticipantService creates a new instance of ParticipantService
func NewParticipantService(participantRepo repository.ParticipantRepository, emailClient client.EmailClient, m *metrics.Metrics, logger *zap.Logger) ParticipantService {
	return &participantServiceImpl{
		participantRepo: participantRepo,
		emailClient:     emailClient,
		metrics:         m,
		logger:          logger,
	}
}

// isDuplicateKeyError detects unique-constraint violations across Postgres
// and the SQLite used by tests
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

// Register creates a new participant. Email and bracelet uniqueness are
// checked first for friendly errors; the unique indexes remain the final
// arbiter under concurrent registrations.
func (s *participantServiceImpl) Register(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.ParticipantResponse, error) {
	req.Normalize()

	category := domain.Category(req.Categoria)
	if !category.Valid() {
		return nil, response.NewFieldValidationError("Datos inválidos", map[string]string{
			"categoria": "Categoría inválida",
		})
	}
	if category == domain.CategoryStudent {
		if req.Programa == nil || *req.Programa == "" {
			return nil, response.NewFieldValidationError("Datos inválidos", map[string]string{
				"programa": "Obligatorio para estudiantes",
			})
		}
	}
	if req.Programa != nil && *req.Programa != "" && !domain.ValidProgram(*req.Programa) {
		return nil, response.NewFieldValidationError("Datos inválidos", map[string]string{
			"programa": "Programa educativo inválido",
		})
	}

	exists, err := s.participantRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al registrar al participante", err.Error())
	}
	if exists {
		return nil, response.NewConflictError("Ya existe un registro con este correo electrónico")
	}

	if req.Brazalete != nil {
		taken, err := s.participantRepo.ExistsByBracelet(ctx, *req.Brazalete)
		if err != nil {
			s.logger.Error("Failed to check bracelet uniqueness", zap.Error(err))
			return nil, response.NewAppError(response.ErrCodeInternal, "Error al registrar al participante", err.Error())
		}
		if taken {
			return nil, response.NewConflictError("El número de brazalete ya está asignado")
		}
	}

	participant := &domain.Participant{
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		PrimerNombre:    req.PrimerNombre,
		SegundoNombre:   req.SegundoNombre,
		Email:           req.Email,
		Telefono:        req.Telefono,
		Categoria:       category,
		Programa:        req.Programa,
		Brazalete:       req.Brazalete,
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		// A concurrent registration may have won the race; report it as the
		// same conflict the pre-check would have produced
		if isDuplicateKeyError(err) {
			return nil, response.NewConflictError("Ya existe un registro con este correo electrónico")
		}
		s.logger.Error("Failed to create participant", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al registrar al participante", err.Error())
	}

	s.logger.Info("Participant registered",
		zap.String("participant_id", participant.ID.String()),
		zap.String("categoria", string(participant.Categoria)),
	)
	if s.metrics != nil {
		s.metrics.IncrementRegistration()
	}

	// Best effort; the client already degrades gracefully
	go func(p domain.Participant) {
		_ = s.emailClient.SendRegistrationConfirmation(context.Background(), &p)
	}(*participant)

	return dto.NewParticipantResponse(participant), nil
}

// GetByEmail returns a participant by normalized email
func (s *participantServiceImpl) GetByEmail(ctx context.Context, email string) (*dto.ParticipantResponse, error) {
	participant, err := s.participantRepo.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No se encontró ningún registro con este correo electrónico")
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al buscar al participante", err.Error())
	}
	return dto.NewParticipantResponse(participant), nil
}

// CheckEmailUnique is the live-typing probe behind the registration form.
// The probe only drives a form hint, so a store failure reports the email as
// available; the registration's own check stays strict.
func (s *participantServiceImpl) CheckEmailUnique(ctx context.Context, email string) (*dto.UniqueCheckResponse, error) {
	exists, err := s.participantRepo.ExistsByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		s.logger.Warn("Email probe failed, assuming available", zap.Error(err))
		return &dto.UniqueCheckResponse{Unique: true}, nil
	}
	return &dto.UniqueCheckResponse{Unique: !exists}, nil
}

// CheckBraceletUnique is the live-typing probe behind bracelet assignment,
// with the same fail-open contract as the email probe
func (s *participantServiceImpl) CheckBraceletUnique(ctx context.Context, bracelet string) (*dto.UniqueCheckResponse, error) {
	exists, err := s.participantRepo.ExistsByBracelet(ctx, strings.TrimSpace(bracelet))
	if err != nil {
		s.logger.Warn("Bracelet probe failed, assuming available", zap.Error(err))
		return &dto.UniqueCheckResponse{Unique: true}, nil
	}
	return &dto.UniqueCheckResponse{Unique: !exists}, nil
}

// AssignBracelet assigns a bracelet to a participant. Re-assigning the same
// bracelet to the same participant is idempotent; any other collision is a
// conflict.
func (s *participantServiceImpl) AssignBracelet(ctx context.Context, req *dto.AssignBraceletRequest) (*dto.ParticipantResponse, error) {
	email := dto.NormalizeEmail(req.Email)
	bracelet := strings.TrimSpace(req.Brazalete)

	participant, err := s.participantRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No se encontró ningún registro con este correo electrónico")
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al asignar el brazalete", err.Error())
	}

	if participant.Brazalete != nil {
		if *participant.Brazalete == bracelet {
			return dto.NewParticipantResponse(participant), nil
		}
		return nil, response.NewConflictError("El participante ya tiene un brazalete asignado")
	}

	taken, err := s.participantRepo.ExistsByBracelet(ctx, bracelet)
	if err != nil {
		s.logger.Error("Failed to check bracelet uniqueness", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al asignar el brazalete", err.Error())
	}
	if taken {
		return nil, response.NewConflictError("El número de brazalete ya está asignado")
	}

	if err := s.participantRepo.UpdateBracelet(ctx, participant.ID, bracelet); err != nil {
		if isDuplicateKeyError(err) {
			return nil, response.NewConflictError("El número de brazalete ya está asignado")
		}
		s.logger.Error("Failed to assign bracelet", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al asignar el brazalete", err.Error())
	}

	participant.Brazalete = &bracelet
	return dto.NewParticipantResponse(participant), nil
}
