package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/metrics"
	"jornada-registro-api/internal/repository"
	"jornada-registro-api/internal/response"
)

// TeamService defines the interface for contest team business logic
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.CreateTeamResponse, error)
	GetAll(ctx context.Context) ([]*dto.TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error)
	GetByParticipantEmail(ctx context.Context, email string) (*dto.TeamLookupResponse, error)
	CheckName(ctx context.Context, name string) (*dto.TeamNameCheckResponse, error)
	CheckParticipant(ctx context.Context, email string) (*dto.TeamParticipantCheckResponse, error)
}

// teamServiceImpl is the implementation of TeamService
type teamServiceImpl struct {
	teamRepo        repository.TeamRepository
	participantRepo repository.ParticipantRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewTeamService creates a new instance of TeamService
func NewTeamService(teamRepo repository.TeamRepository, participantRepo repository.ParticipantRepository, m *metrics.Metrics, logger *zap.Logger) TeamService {
	return &teamServiceImpl{
		teamRepo:        teamRepo,
		participantRepo: participantRepo,
		metrics:         m,
		logger:          logger,
	}
}

// Create registers a contest team: captain plus five members, all six rows
// inserted in one transaction. Validation aggregates every member problem
// into a single response instead of failing on the first one.
func (s *teamServiceImpl) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.CreateTeamResponse, error) {
	req.Normalize()

	if req.NombreEquipo == "" {
		return nil, response.NewFieldValidationError("Datos inválidos", map[string]string{
			"nombreEquipo": "Nombre del equipo obligatorio",
		})
	}

	emails := req.AllEmails()
	seen := make(map[string]bool, len(emails))
	for _, email := range emails {
		if seen[email] {
			return nil, response.NewValidationError("Hay correos duplicados en el equipo")
		}
		seen[email] = true
	}

	taken, err := s.teamRepo.ExistsActiveByName(ctx, req.NombreEquipo)
	if err != nil {
		s.logger.Error("Failed to check team name", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al crear el equipo", err.Error())
	}
	if taken {
		return nil, response.NewConflictError("Ya existe un equipo con ese nombre")
	}

	participants, err := s.participantRepo.FindByEmails(ctx, emails)
	if err != nil {
		s.logger.Error("Failed to load team participants", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al crear el equipo", err.Error())
	}
	byEmail := make(map[string]*domain.Participant, len(participants))
	for _, p := range participants {
		byEmail[p.Email] = p
	}

	var details []string
	for _, email := range emails {
		participant, ok := byEmail[email]
		if !ok {
			details = append(details, fmt.Sprintf("%s: no está registrado en la Jornada", email))
			continue
		}
		if participant.Categoria != domain.CategoryStudent {
			details = append(details, fmt.Sprintf("%s: Solo estudiantes pueden participar en equipos", email))
			continue
		}
		onTeam, err := s.teamRepo.IsParticipantInActiveTeam(ctx, participant.ID)
		if err != nil {
			s.logger.Error("Failed to check team membership", zap.Error(err))
			return nil, response.NewAppError(response.ErrCodeInternal, "Error al crear el equipo", err.Error())
		}
		if onTeam {
			details = append(details, fmt.Sprintf("%s: ya pertenece a un equipo", email))
		}
	}
	if len(details) > 0 {
		return nil, &response.AppError{
			Code:    response.ErrCodeValidation,
			Message: "Algunos integrantes no son válidos",
			Items:   details,
		}
	}

	captain := byEmail[req.EmailCapitan]
	team := &domain.Team{
		NombreEquipo: req.NombreEquipo,
		CapitanID:    captain.ID,
		Activo:       true,
	}
	members := make([]*domain.TeamMember, 0, len(emails))
	for _, email := range emails {
		members = append(members, &domain.TeamMember{
			ParticipanteID: byEmail[email].ID,
			EsCapitan:      email == req.EmailCapitan,
		})
	}

	if err := s.teamRepo.CreateWithMembers(ctx, team, members); err != nil {
		// A concurrent creation grabbing a member rolls the whole team back
		if isDuplicateKeyError(err) {
			return nil, response.NewConflictError("Alguno de los integrantes ya pertenece a un equipo")
		}
		s.logger.Error("Failed to create team", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al crear el equipo", err.Error())
	}

	s.logger.Info("Team created",
		zap.String("team_id", team.ID.String()),
		zap.String("nombre", team.NombreEquipo),
	)
	if s.metrics != nil {
		s.metrics.IncrementTeamCreated()
	}

	return &dto.CreateTeamResponse{
		ID:            team.ID,
		NombreEquipo:  team.NombreEquipo,
		CapitanEmail:  req.EmailCapitan,
		TotalMiembros: len(members),
		Creado:        team.Creado,
	}, nil
}

// GetAll returns every active team with its roster
func (s *teamServiceImpl) GetAll(ctx context.Context) ([]*dto.TeamResponse, error) {
	teams, err := s.teamRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load teams", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al consultar los equipos", err.Error())
	}

	out := make([]*dto.TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, dto.NewTeamResponse(&teams[i]))
	}
	return out, nil
}

// GetByID returns one team with its roster
func (s *teamServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Equipo no encontrado")
		}
		s.logger.Error("Failed to load team", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al consultar el equipo", err.Error())
	}
	return dto.NewTeamResponse(team), nil
}

// GetByParticipantEmail returns the team a participant belongs to. A
// registered participant without a team gets a successful lookup with a
// null team so the form can branch on it.
func (s *teamServiceImpl) GetByParticipantEmail(ctx context.Context, email string) (*dto.TeamLookupResponse, error) {
	participant, err := s.participantRepo.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("No se encontró ningún registro con este correo electrónico")
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al consultar el equipo", err.Error())
	}

	team, err := s.teamRepo.FindActiveByParticipant(ctx, participant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			msg := "El participante no pertenece a ningún equipo"
			return &dto.TeamLookupResponse{Equipo: nil, Message: &msg}, nil
		}
		s.logger.Error("Failed to load participant team", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al consultar el equipo", err.Error())
	}

	return &dto.TeamLookupResponse{Equipo: dto.NewTeamResponse(team)}, nil
}

// CheckName is the live-typing probe for team name availability. The probe
// only drives a form hint, so a store failure reports the name as available
// and leaves the verdict to the creation path.
func (s *teamServiceImpl) CheckName(ctx context.Context, name string) (*dto.TeamNameCheckResponse, error) {
	taken, err := s.teamRepo.ExistsActiveByName(ctx, name)
	if err != nil {
		s.logger.Warn("Team name probe failed, assuming available", zap.Error(err))
		return &dto.TeamNameCheckResponse{Available: true}, nil
	}
	return &dto.TeamNameCheckResponse{Available: !taken}, nil
}

// CheckParticipant reports whether an email can be added to a team, with
// the participant's details when it can
func (s *teamServiceImpl) CheckParticipant(ctx context.Context, email string) (*dto.TeamParticipantCheckResponse, error) {
	participant, err := s.participantRepo.FindByEmail(ctx, dto.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			msg := "No está registrado en la Jornada"
			return &dto.TeamParticipantCheckResponse{Valid: false, Error: &msg}, nil
		}
		s.logger.Error("Failed to find participant by email", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al verificar al participante", err.Error())
	}

	if participant.Categoria != domain.CategoryStudent {
		msg := "Solo estudiantes pueden participar en equipos"
		return &dto.TeamParticipantCheckResponse{Valid: false, Error: &msg, Participante: dto.NewParticipantResponse(participant)}, nil
	}

	onTeam, err := s.teamRepo.IsParticipantInActiveTeam(ctx, participant.ID)
	if err != nil {
		s.logger.Error("Failed to check team membership", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al verificar al participante", err.Error())
	}
	if onTeam {
		msg := "Ya pertenece a un equipo"
		return &dto.TeamParticipantCheckResponse{Valid: false, Error: &msg, Participante: dto.NewParticipantResponse(participant)}, nil
	}

	return &dto.TeamParticipantCheckResponse{Valid: true, Participante: dto.NewParticipantResponse(participant)}, nil
}
