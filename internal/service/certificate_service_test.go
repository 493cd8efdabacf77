package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jornada-registro-api/internal/client"
	"jornada-registro-api/internal/config"
	"jornada-registro-api/internal/domain"
	"jornada-registro-api/internal/response"
)

func newCertificateService(participantRepo *MockParticipantRepository, attendanceRepo *MockAttendanceRepository, renderer client.PDFRenderer, storage client.StorageClient) CertificateService {
	if renderer == nil {
		renderer = &client.MockPDFRenderer{}
	}
	if storage == nil {
		storage = &MockStorageClient{}
	}
	return NewCertificateService(
		participantRepo,
		attendanceRepo,
		renderer,
		storage,
		config.CertificateConfig{
			TituloEvento: "Jornada de Ingeniería Industrial",
			Emisor:       "Facultad de Ingeniería",
		},
		nil,
		zap.NewNop(),
	)
}

func certificateParticipant() func(*MockParticipantRepository) {
	return func(m *MockParticipantRepository) {
		m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Participant, error) {
			return &domain.Participant{
				BaseModel:       domain.BaseModel{ID: uuid.New()},
				Email:           email,
				PrimerNombre:    "Juan",
				ApellidoPaterno: "García",
				ApellidoMaterno: "López",
				Categoria:       domain.CategoryStudent,
			}, nil
		}
	}
}

func TestCertificateService_Check(t *testing.T) {
	tests := []struct {
		name            string
		participantMock func(*MockParticipantRepository)
		attendanceMock  func(*MockAttendanceRepository)
		wantEligible    bool
		wantErrCode     string
	}{
		{
			name:            "eligible with one attendance",
			participantMock: certificateParticipant(),
			attendanceMock: func(m *MockAttendanceRepository) {
				m.FindByParticipantFunc = func(ctx context.Context, pID uuid.UUID) ([]domain.Attendance, error) {
					return []domain.Attendance{
						{
							ParticipanteID: pID,
							Creado:         time.Now(),
							Conferencia:    domain.Activity{Titulo: "Conferencia magistral"},
						},
					}, nil
				}
			},
			wantEligible: true,
		},
		{
			name:            "not eligible without attendances",
			participantMock: certificateParticipant(),
			attendanceMock:  func(m *MockAttendanceRepository) {},
			wantEligible:    false,
		},
		{
			name: "unknown participant is not found",
			participantMock: func(m *MockParticipantRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Participant, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			attendanceMock: func(m *MockAttendanceRepository) {},
			wantErrCode:    response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantRepo := &MockParticipantRepository{}
			attendanceRepo := &MockAttendanceRepository{}
			tt.participantMock(participantRepo)
			tt.attendanceMock(attendanceRepo)
			svc := newCertificateService(participantRepo, attendanceRepo, nil, nil)

			result, err := svc.Check(context.Background(), "juan@example.com")

			if tt.wantErrCode != "" {
				var appErr *response.AppError
				if !errors.As(err, &appErr) || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected %s, got %v", tt.wantErrCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.PuedeObtenerConstancia != tt.wantEligible {
				t.Errorf("expected eligible=%v, got %v", tt.wantEligible, result.PuedeObtenerConstancia)
			}
			if result.Participante == nil {
				t.Error("expected participant details in the response")
			}
		})
	}
}

func TestCertificateService_Render(t *testing.T) {
	t.Run("renders and names the file after the participant", func(t *testing.T) {
		participantRepo := &MockParticipantRepository{}
		certificateParticipant()(participantRepo)
		attendanceRepo := &MockAttendanceRepository{
			CountByParticipantFunc: func(ctx context.Context, pID uuid.UUID) (int64, error) {
				return 3, nil
			},
		}

		var got client.CertificateData
		renderer := &client.MockPDFRenderer{
			RenderCertificateFunc: func(data client.CertificateData) ([]byte, error) {
				got = data
				return []byte("%PDF-1.4 mock"), nil
			},
		}

		svc := newCertificateService(participantRepo, attendanceRepo, renderer, nil)

		result, err := svc.Render(context.Background(), "juan@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Filename != "constancia-Juan-García.pdf" {
			t.Errorf("unexpected filename: %s", result.Filename)
		}
		if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
			t.Errorf("expected PDF bytes, got %q", result.PDF)
		}
		if got.EventTitle != "Jornada de Ingeniería Industrial" || got.Issuer != "Facultad de Ingeniería" {
			t.Errorf("unexpected certificate data: %+v", got)
		}
	})

	t.Run("without attendances rendering is refused", func(t *testing.T) {
		participantRepo := &MockParticipantRepository{}
		certificateParticipant()(participantRepo)
		svc := newCertificateService(participantRepo, &MockAttendanceRepository{}, nil, nil)

		_, err := svc.Render(context.Background(), "juan@example.com")
		var appErr *response.AppError
		if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeValidation {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})

	t.Run("unknown participant is not found", func(t *testing.T) {
		participantRepo := &MockParticipantRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.Participant, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := newCertificateService(participantRepo, &MockAttendanceRepository{}, nil, nil)

		_, err := svc.Render(context.Background(), "nadie@example.com")
		var appErr *response.AppError
		if !errors.As(err, &appErr) || appErr.Code != response.ErrCodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("archives a copy in the background", func(t *testing.T) {
		participantRepo := &MockParticipantRepository{}
		certificateParticipant()(participantRepo)
		attendanceRepo := &MockAttendanceRepository{
			CountByParticipantFunc: func(ctx context.Context, pID uuid.UUID) (int64, error) {
				return 1, nil
			},
		}

		archived := make(chan string, 1)
		storage := &MockStorageClient{
			GenerateCertificateKeyFunc: func(participantID uuid.UUID) string {
				return "certificados/2025/10/" + participantID.String() + ".pdf"
			},
			ArchiveCertificateFunc: func(ctx context.Context, key string, pdf io.Reader) (string, error) {
				archived <- key
				return key, nil
			},
		}

		svc := newCertificateService(participantRepo, attendanceRepo, nil, storage)
		if _, err := svc.Render(context.Background(), "juan@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case key := <-archived:
			if key == "" {
				t.Error("expected a storage key")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("certificate was never archived")
		}
	})
}
