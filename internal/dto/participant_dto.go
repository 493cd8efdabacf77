package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jornada-registro-api/internal/domain"
)

// RegisterParticipantRequest is the registration form payload.
// Enum membership for categoria/programa is checked in the service so the
// same enumeration drives registration, team validation and display.
type RegisterParticipantRequest struct {
	ApellidoPaterno string  `json:"apellidoPaterno" binding:"required" example:"García"`
	ApellidoMaterno string  `json:"apellidoMaterno" binding:"required" example:"López"`
	PrimerNombre    string  `json:"primerNombre" binding:"required" example:"Juan"`
	SegundoNombre   *string `json:"segundoNombre,omitempty" example:"Carlos"`
	Email           string  `json:"email" binding:"required,email" example:"juan@example.com"`
	Telefono        string  `json:"telefono" binding:"required,len=10,numeric" example:"5512345678"`
	Categoria       string  `json:"categoria" binding:"required" example:"Estudiante"`
	Programa        *string `json:"programa,omitempty" example:"Ingeniería Industrial"`
	Brazalete       *string `json:"brazalete,omitempty" binding:"omitempty,alphanum,max=20" example:"A1234"`
}

// Normalize canonicalizes the natural keys before any uniqueness check, so
// the probe, the pre-insert check and the insert all see the same value
func (r *RegisterParticipantRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	if r.Brazalete != nil {
		b := strings.TrimSpace(*r.Brazalete)
		if b == "" {
			r.Brazalete = nil
		} else {
			r.Brazalete = &b
		}
	}
}

// AssignBraceletRequest assigns (idempotently) a bracelet to a participant
type AssignBraceletRequest struct {
	Email     string `json:"email" binding:"required,email" example:"juan@example.com"`
	Brazalete string `json:"brazalete" binding:"required,alphanum,max=20" example:"A1234"`
}

// ParticipantResponse is the participant representation returned by the API
type ParticipantResponse struct {
	ID              uuid.UUID `json:"id"`
	ApellidoPaterno string    `json:"apellidoPaterno"`
	ApellidoMaterno string    `json:"apellidoMaterno"`
	PrimerNombre    string    `json:"primerNombre"`
	SegundoNombre   *string   `json:"segundoNombre,omitempty"`
	Email           string    `json:"email"`
	Telefono        string    `json:"telefono"`
	Categoria       string    `json:"categoria"`
	Programa        *string   `json:"programa,omitempty"`
	Brazalete       *string   `json:"brazalete,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// UniqueCheckResponse is the live-typing uniqueness probe result
type UniqueCheckResponse struct {
	Unique bool `json:"unique"`
}

// NewParticipantResponse maps a domain participant to its API shape
func NewParticipantResponse(p *domain.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:              p.ID,
		ApellidoPaterno: p.ApellidoPaterno,
		ApellidoMaterno: p.ApellidoMaterno,
		PrimerNombre:    p.PrimerNombre,
		SegundoNombre:   p.SegundoNombre,
		Email:           p.Email,
		Telefono:        p.Telefono,
		Categoria:       string(p.Categoria),
		Programa:        p.Programa,
		Brazalete:       p.Brazalete,
		CreatedAt:       p.CreatedAt,
	}
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
