package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jornada-registro-api/internal/client"
	"jornada-registro-api/internal/config"
	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/metrics"
	"jornada-registro-api/internal/repository"
	"jornada-registro-api/internal/response"
)

// RenderedCertificate is a certificate PDF ready to be served
type RenderedCertificate struct {
	Filename string
	PDF      []byte
}

// CertificateService defines the interface for certificate business logic
type CertificateService interface {
	Check(ctx context.Context, email string) (*dto.CertificateCheckResponse, error)
	Render(ctx context.Context, email string) (*RenderedCertificate, error)
}

// certificateServiceImpl is the implementation of CertificateService
type certificateServiceImpl struct {
	participantRepo repository.ParticipantRepository
	attendanceRepo  repository.AttendanceRepository
	renderer        client.PDFRenderer
	storage         client.StorageClient
	cfg             config.CertificateConfig
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewCertificateService creates a new instance of CertificateService
func NewCertificateService(participantRepo repository.ParticipantRepository, attendanceRepo repository.AttendanceRepository, renderer client.PDFRenderer, storage client.StorageClient, cfg config.CertificateConfig, m *metrics.Metrics, logger *zap.Logger) CertificateService {
	return &certificateServiceImpl{
		participantRepo: participantRepo,
		attendanceRepo:  attendanceRepo,
		renderer:        renderer,
		storage:         storage,
		cfg:             cfg,
		metrics:         m,
		logger:          logger,
	}
}

// Check reports certificate eligibility: the participant must exist and
// have at least one confirmed attendance
func (s *certificateServiceImpl) Check(ctx context.Context, email string) (*dto.CertificateCheckResponse, error) {
	participant, err := s.participantRepo.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No se encontró ningún registro con este correo electrónico")
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al verificar la constancia", err.Error())
	}

	attendances, err := s.attendanceRepo.FindByParticipant(ctx, participant.ID)
	if err != nil {
		s.logger.Error("Failed to load attendances", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al verificar la constancia", err.Error())
	}

	return &dto.CertificateCheckResponse{
		Participante:           dto.NewParticipantResponse(participant),
		Asistencias:            dto.NewAttendanceDetails(attendances),
		PuedeObtenerConstancia: len(attendances) > 0,
	}, nil
}

// Render produces the certificate PDF for an eligible participant and
// archives a copy in object storage, best effort
func (s *certificateServiceImpl) Render(ctx context.Context, email string) (*RenderedCertificate, error) {
	participant, err := s.participantRepo.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No se encontró ningún registro con este correo electrónico")
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al generar la constancia", err.Error())
	}

	count, err := s.attendanceRepo.CountByParticipant(ctx, participant.ID)
	if err != nil {
		s.logger.Error("Failed to count attendances", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al generar la constancia", err.Error())
	}
	if count == 0 {
		return nil, response.NewValidationError("No tienes asistencias registradas")
	}

	pdf, err := s.renderer.RenderCertificate(client.CertificateData{
		Participant: participant,
		EventTitle:  s.cfg.TituloEvento,
		Issuer:      s.cfg.Emisor,
		IssuedAt:    time.Now(),
	})
	if err != nil {
		s.logger.Error("Failed to render certificate", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al generar la constancia", err.Error())
	}

	s.logger.Info("Certificate generated",
		zap.String("participant_id", participant.ID.String()),
	)
	if s.metrics != nil {
		s.metrics.IncrementCertificateGenerated()
	}

	// Archive a copy without blocking the download
	go func(participantID uuid.UUID, data []byte) {
		key := s.storage.GenerateCertificateKey(participantID)
		if key == "" {
			return
		}
		if _, err := s.storage.ArchiveCertificate(context.Background(), key, bytes.NewReader(data)); err != nil {
			s.logger.Warn("Failed to archive certificate",
				zap.String("participant_id", participantID.String()),
				zap.Error(err),
			)
		}
	}(participant.ID, pdf)

	return &RenderedCertificate{
		Filename: fmt.Sprintf("constancia-%s-%s.pdf", participant.PrimerNombre, participant.ApellidoPaterno),
		PDF:      pdf,
	}, nil
}
