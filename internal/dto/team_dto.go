package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jornada-registro-api/internal/domain"
)

// CreateTeamRequest proposes a contest team: a captain plus exactly five
// additional members. The member count is re-validated server-side so a
// tampered client cannot bypass it.
type CreateTeamRequest struct {
	NombreEquipo   string   `json:"nombreEquipo" binding:"required,max=255" example:"Los Ingenieros"`
	EmailCapitan   string   `json:"emailCapitan" binding:"required,email" example:"capitan@example.com"`
	EmailsMiembros []string `json:"emailsMiembros" binding:"required,len=5,dive,required,email"`
}

// Normalize trims the team name and canonicalizes every email
func (r *CreateTeamRequest) Normalize() {
	r.NombreEquipo = strings.TrimSpace(r.NombreEquipo)
	r.EmailCapitan = NormalizeEmail(r.EmailCapitan)
	for i := range r.EmailsMiembros {
		r.EmailsMiembros[i] = NormalizeEmail(r.EmailsMiembros[i])
	}
}

// AllEmails returns the captain followed by the member emails
func (r *CreateTeamRequest) AllEmails() []string {
	all := make([]string, 0, len(r.EmailsMiembros)+1)
	all = append(all, r.EmailCapitan)
	all = append(all, r.EmailsMiembros...)
	return all
}

// TeamMemberResponse is one member inside a team response
type TeamMemberResponse struct {
	Email          string  `json:"email"`
	NombreCompleto string  `json:"nombreCompleto"`
	Programa       *string `json:"programa,omitempty"`
	EsCapitan      bool    `json:"esCapitan"`
}

// TeamResponse is a team with its members, captain first
type TeamResponse struct {
	ID            uuid.UUID             `json:"id"`
	NombreEquipo  string                `json:"nombreEquipo"`
	Creado        time.Time             `json:"creado"`
	TotalMiembros int                   `json:"totalMiembros"`
	Miembros      []*TeamMemberResponse `json:"miembros"`
}

// CreateTeamResponse summarizes a freshly created team
type CreateTeamResponse struct {
	ID            uuid.UUID `json:"id"`
	NombreEquipo  string    `json:"nombreEquipo"`
	CapitanEmail  string    `json:"capitanEmail"`
	TotalMiembros int       `json:"totalMiembros"`
	Creado        time.Time `json:"creado"`
}

// TeamNameCheckResponse is the live team-name availability probe result
type TeamNameCheckResponse struct {
	Available bool `json:"available"`
}

// TeamParticipantCheckResponse reports whether a participant may join a team
type TeamParticipantCheckResponse struct {
	Valid        bool                 `json:"valid"`
	Error        *string              `json:"error"`
	Participante *ParticipantResponse `json:"participante"`
}

// TeamLookupResponse wraps the team-by-participant lookup, which succeeds
// with a null team when the participant is not on one
type TeamLookupResponse struct {
	Equipo  *TeamResponse `json:"equipo"`
	Message *string       `json:"message,omitempty"`
}

// NewTeamResponse maps a domain team (with preloaded members and their
// participants) to its API shape, captain first
func NewTeamResponse(t *domain.Team) *TeamResponse {
	members := make([]*TeamMemberResponse, 0, len(t.Miembros))
	for _, m := range t.Miembros {
		members = append(members, &TeamMemberResponse{
			Email:          m.Participante.Email,
			NombreCompleto: m.Participante.FullName(),
			Programa:       m.Participante.Programa,
			EsCapitan:      m.EsCapitan,
		})
	}
	for i, m := range members {
		if m.EsCapitan && i != 0 {
			members[0], members[i] = members[i], members[0]
			break
		}
	}
	return &TeamResponse{
		ID:            t.ID,
		NombreEquipo:  t.NombreEquipo,
		Creado:        t.Creado,
		TotalMiembros: len(members),
		Miembros:      members,
	}
}
