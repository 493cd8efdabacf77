package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockParticipantService is a mock implementation of service.ParticipantService
type MockParticipantService struct {
	RegisterFunc            func(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.ParticipantResponse, error)
	GetByEmailFunc          func(ctx context.Context, email string) (*dto.ParticipantResponse, error)
	CheckEmailUniqueFunc    func(ctx context.Context, email string) (*dto.UniqueCheckResponse, error)
	CheckBraceletUniqueFunc func(ctx context.Context, bracelet string) (*dto.UniqueCheckResponse, error)
	AssignBraceletFunc      func(ctx context.Context, req *dto.AssignBraceletRequest) (*dto.ParticipantResponse, error)
}

func (m *MockParticipantService) Register(ctx context.Context, req *dto.RegisterParticipantRequest) (*dto.ParticipantResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &dto.ParticipantResponse{}, nil
}

func (m *MockParticipantService) GetByEmail(ctx context.Context, email string) (*dto.ParticipantResponse, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return &dto.ParticipantResponse{}, nil
}

func (m *MockParticipantService) CheckEmailUnique(ctx context.Context, email string) (*dto.UniqueCheckResponse, error) {
	if m.CheckEmailUniqueFunc != nil {
		return m.CheckEmailUniqueFunc(ctx, email)
	}
	return &dto.UniqueCheckResponse{Unique: true}, nil
}

func (m *MockParticipantService) CheckBraceletUnique(ctx context.Context, bracelet string) (*dto.UniqueCheckResponse, error) {
	if m.CheckBraceletUniqueFunc != nil {
		return m.CheckBraceletUniqueFunc(ctx, bracelet)
	}
	return &dto.UniqueCheckResponse{Unique: true}, nil
}

func (m *MockParticipantService) AssignBracelet(ctx context.Context, req *dto.AssignBraceletRequest) (*dto.ParticipantResponse, error) {
	if m.AssignBraceletFunc != nil {
		return m.AssignBraceletFunc(ctx, req)
	}
	return &dto.ParticipantResponse{}, nil
}

// MockActivityService is a mock implementation of service.ActivityService
type MockActivityService struct {
	GetActiveFunc func(ctx context.Context) ([]*dto.ActivityResponse, error)
}

func (m *MockActivityService) GetActive(ctx context.Context) ([]*dto.ActivityResponse, error) {
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx)
	}
	return []*dto.ActivityResponse{}, nil
}

// MockAttendanceService is a mock implementation of service.AttendanceService
type MockAttendanceService struct {
	ConfirmFunc     func(ctx context.Context, req *dto.ConfirmAttendanceRequest) (*dto.AttendanceResponse, error)
	ListByEmailFunc func(ctx context.Context, email string) ([]*dto.AttendanceDetail, error)
}

func (m *MockAttendanceService) Confirm(ctx context.Context, req *dto.ConfirmAttendanceRequest) (*dto.AttendanceResponse, error) {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, req)
	}
	return &dto.AttendanceResponse{}, nil
}

func (m *MockAttendanceService) ListByEmail(ctx context.Context, email string) ([]*dto.AttendanceDetail, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email)
	}
	return []*dto.AttendanceDetail{}, nil
}

// MockTeamService is a mock implementation of service.TeamService
type MockTeamService struct {
	CreateFunc                func(ctx context.Context, req *dto.CreateTeamRequest) (*dto.CreateTeamResponse, error)
	GetAllFunc                func(ctx context.Context) ([]*dto.TeamResponse, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error)
	GetByParticipantEmailFunc func(ctx context.Context, email string) (*dto.TeamLookupResponse, error)
	CheckNameFunc             func(ctx context.Context, name string) (*dto.TeamNameCheckResponse, error)
	CheckParticipantFunc      func(ctx context.Context, email string) (*dto.TeamParticipantCheckResponse, error)
}

func (m *MockTeamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.CreateTeamResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &dto.CreateTeamResponse{}, nil
}

func (m *MockTeamService) GetAll(ctx context.Context) ([]*dto.TeamResponse, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []*dto.TeamResponse{}, nil
}

func (m *MockTeamService) GetByID(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &dto.TeamResponse{}, nil
}

func (m *MockTeamService) GetByParticipantEmail(ctx context.Context, email string) (*dto.TeamLookupResponse, error) {
	if m.GetByParticipantEmailFunc != nil {
		return m.GetByParticipantEmailFunc(ctx, email)
	}
	return &dto.TeamLookupResponse{}, nil
}

func (m *MockTeamService) CheckName(ctx context.Context, name string) (*dto.TeamNameCheckResponse, error) {
	if m.CheckNameFunc != nil {
		return m.CheckNameFunc(ctx, name)
	}
	return &dto.TeamNameCheckResponse{Available: true}, nil
}

func (m *MockTeamService) CheckParticipant(ctx context.Context, email string) (*dto.TeamParticipantCheckResponse, error) {
	if m.CheckParticipantFunc != nil {
		return m.CheckParticipantFunc(ctx, email)
	}
	return &dto.TeamParticipantCheckResponse{Valid: true}, nil
}

// MockCertificateService is a mock implementation of service.CertificateService
type MockCertificateService struct {
	CheckFunc  func(ctx context.Context, email string) (*dto.CertificateCheckResponse, error)
	RenderFunc func(ctx context.Context, email string) (*service.RenderedCertificate, error)
}

func (m *MockCertificateService) Check(ctx context.Context, email string) (*dto.CertificateCheckResponse, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, email)
	}
	return &dto.CertificateCheckResponse{}, nil
}

func (m *MockCertificateService) Render(ctx context.Context, email string) (*service.RenderedCertificate, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, email)
	}
	return &service.RenderedCertificate{Filename: "constancia.pdf", PDF: []byte("%PDF-1.4")}, nil
}

// Interface compliance checks
var (
	_ service.ParticipantService = (*MockParticipantService)(nil)
	_ service.ActivityService    = (*MockActivityService)(nil)
	_ service.AttendanceService  = (*MockAttendanceService)(nil)
	_ service.TeamService        = (*MockTeamService)(nil)
	_ service.CertificateService = (*MockCertificateService)(nil)
)
