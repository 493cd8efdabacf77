package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"jornada-registro-api/internal/domain"
)

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc           func(ctx context.Context, participant *domain.Participant) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*domain.Participant, error)
	FindByEmailsFunc     func(ctx context.Context, emails []string) ([]*domain.Participant, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ExistsByBraceletFunc func(ctx context.Context, bracelet string) (bool, error)
	UpdateBraceletFunc   func(ctx context.Context, id uuid.UUID, bracelet string) error
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParticipantRepository) FindByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockParticipantRepository) FindByEmails(ctx context.Context, emails []string) ([]*domain.Participant, error) {
	if m.FindByEmailsFunc != nil {
		return m.FindByEmailsFunc(ctx, emails)
	}
	return nil, nil
}

func (m *MockParticipantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockParticipantRepository) ExistsByBracelet(ctx context.Context, bracelet string) (bool, error) {
	if m.ExistsByBraceletFunc != nil {
		return m.ExistsByBraceletFunc(ctx, bracelet)
	}
	return false, nil
}

func (m *MockParticipantRepository) UpdateBracelet(ctx context.Context, id uuid.UUID, bracelet string) error {
	if m.UpdateBraceletFunc != nil {
		return m.UpdateBraceletFunc(ctx, id, bracelet)
	}
	return nil
}

func (m *MockParticipantRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	CreateFunc         func(ctx context.Context, activity *domain.Activity) error
	FindActiveFunc     func(ctx context.Context) ([]domain.Activity, error)
	FindActiveByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityRepository) FindActive(ctx context.Context) ([]domain.Activity, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockActivityRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if m.FindActiveByIDFunc != nil {
		return m.FindActiveByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockActivityRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockAttendanceRepository is a mock implementation of AttendanceRepository
type MockAttendanceRepository struct {
	CreateFunc                         func(ctx context.Context, attendance *domain.Attendance) error
	ExistsByParticipantAndActivityFunc func(ctx context.Context, participantID, activityID uuid.UUID) (bool, error)
	FindByParticipantFunc              func(ctx context.Context, participantID uuid.UUID) ([]domain.Attendance, error)
	CountByParticipantFunc             func(ctx context.Context, participantID uuid.UUID) (int64, error)
	CountFunc                          func(ctx context.Context) (int64, error)
}

func (m *MockAttendanceRepository) Create(ctx context.Context, attendance *domain.Attendance) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attendance)
	}
	return nil
}

func (m *MockAttendanceRepository) ExistsByParticipantAndActivity(ctx context.Context, participantID, activityID uuid.UUID) (bool, error) {
	if m.ExistsByParticipantAndActivityFunc != nil {
		return m.ExistsByParticipantAndActivityFunc(ctx, participantID, activityID)
	}
	return false, nil
}

func (m *MockAttendanceRepository) FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.Attendance, error) {
	if m.FindByParticipantFunc != nil {
		return m.FindByParticipantFunc(ctx, participantID)
	}
	return nil, nil
}

func (m *MockAttendanceRepository) CountByParticipant(ctx context.Context, participantID uuid.UUID) (int64, error) {
	if m.CountByParticipantFunc != nil {
		return m.CountByParticipantFunc(ctx, participantID)
	}
	return 0, nil
}

func (m *MockAttendanceRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	CreateWithMembersFunc         func(ctx context.Context, team *domain.Team, members []*domain.TeamMember) error
	FindByIDFunc                  func(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	FindAllActiveFunc             func(ctx context.Context) ([]domain.Team, error)
	FindActiveByParticipantFunc   func(ctx context.Context, participantID uuid.UUID) (*domain.Team, error)
	ExistsActiveByNameFunc        func(ctx context.Context, name string) (bool, error)
	IsParticipantInActiveTeamFunc func(ctx context.Context, participantID uuid.UUID) (bool, error)
	CountActiveFunc               func(ctx context.Context) (int64, error)
}

func (m *MockTeamRepository) CreateWithMembers(ctx context.Context, team *domain.Team, members []*domain.TeamMember) error {
	if m.CreateWithMembersFunc != nil {
		return m.CreateWithMembersFunc(ctx, team, members)
	}
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindAllActive(ctx context.Context) ([]domain.Team, error) {
	if m.FindAllActiveFunc != nil {
		return m.FindAllActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindActiveByParticipant(ctx context.Context, participantID uuid.UUID) (*domain.Team, error) {
	if m.FindActiveByParticipantFunc != nil {
		return m.FindActiveByParticipantFunc(ctx, participantID)
	}
	return nil, nil
}

func (m *MockTeamRepository) ExistsActiveByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsActiveByNameFunc != nil {
		return m.ExistsActiveByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *MockTeamRepository) IsParticipantInActiveTeam(ctx context.Context, participantID uuid.UUID) (bool, error) {
	if m.IsParticipantInActiveTeamFunc != nil {
		return m.IsParticipantInActiveTeamFunc(ctx, participantID)
	}
	return false, nil
}

func (m *MockTeamRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

// MockEmailClient is a mock implementation of client.EmailClient
type MockEmailClient struct {
	SendRegistrationConfirmationFunc func(ctx context.Context, participant *domain.Participant) error
}

func (m *MockEmailClient) SendRegistrationConfirmation(ctx context.Context, participant *domain.Participant) error {
	if m.SendRegistrationConfirmationFunc != nil {
		return m.SendRegistrationConfirmationFunc(ctx, participant)
	}
	return nil
}

// MockActivityCache is a mock implementation of cache.ActivityCache
type MockActivityCache struct {
	GetActiveFunc        func(ctx context.Context) ([]domain.Activity, bool)
	SetActiveFunc        func(ctx context.Context, activities []domain.Activity)
	InvalidateActiveFunc func(ctx context.Context)
}

func (m *MockActivityCache) GetActive(ctx context.Context) ([]domain.Activity, bool) {
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx)
	}
	return nil, false
}

func (m *MockActivityCache) SetActive(ctx context.Context, activities []domain.Activity) {
	if m.SetActiveFunc != nil {
		m.SetActiveFunc(ctx, activities)
	}
}

func (m *MockActivityCache) InvalidateActive(ctx context.Context) {
	if m.InvalidateActiveFunc != nil {
		m.InvalidateActiveFunc(ctx)
	}
}

// MockStorageClient is a mock implementation of client.StorageClient
type MockStorageClient struct {
	GenerateCertificateKeyFunc func(participantID uuid.UUID) string
	ArchiveCertificateFunc     func(ctx context.Context, key string, pdf io.Reader) (string, error)
	GetFileURLFunc             func(key string) string
}

func (m *MockStorageClient) GenerateCertificateKey(participantID uuid.UUID) string {
	if m.GenerateCertificateKeyFunc != nil {
		return m.GenerateCertificateKeyFunc(participantID)
	}
	return ""
}

func (m *MockStorageClient) ArchiveCertificate(ctx context.Context, key string, pdf io.Reader) (string, error) {
	if m.ArchiveCertificateFunc != nil {
		return m.ArchiveCertificateFunc(ctx, key, pdf)
	}
	return "", nil
}

func (m *MockStorageClient) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return ""
}
