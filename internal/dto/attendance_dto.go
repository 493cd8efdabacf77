package dto

import (
	"time"

	"github.com/google/uuid"

	"jornada-registro-api/internal/domain"
)

// ConfirmAttendanceRequest confirms attendance at one activity
type ConfirmAttendanceRequest struct {
	Email         string    `json:"email" binding:"required,email" example:"juan@example.com"`
	ConferenciaID uuid.UUID `json:"conferenciaId" binding:"required" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
}

// Normalize canonicalizes the email before lookup
func (r *ConfirmAttendanceRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// AttendanceResponse is a confirmed attendance record
type AttendanceResponse struct {
	ConferenciaID  uuid.UUID `json:"conferenciaId"`
	ParticipanteID uuid.UUID `json:"participanteId"`
	Creado         time.Time `json:"creado"`
	Modo           string    `json:"modo"`
}

// NewAttendanceResponse maps a domain attendance to its API shape
func NewAttendanceResponse(a *domain.Attendance) *AttendanceResponse {
	return &AttendanceResponse{
		ConferenciaID:  a.ConferenciaID,
		ParticipanteID: a.ParticipanteID,
		Creado:         a.Creado,
		Modo:           string(a.Modo),
	}
}

// AttendanceDetail joins an attendance with its activity for listings and
// certificate rendering
type AttendanceDetail struct {
	Titulo          string    `json:"titulo"`
	Ponente         *string   `json:"ponente,omitempty"`
	FechaInicio     time.Time `json:"fechaInicio"`
	Lugar           *string   `json:"lugar,omitempty"`
	FechaAsistencia time.Time `json:"fechaAsistencia"`
}

// NewAttendanceDetails maps attendances (with preloaded activities) ordered
// by activity start time
func NewAttendanceDetails(records []domain.Attendance) []*AttendanceDetail {
	out := make([]*AttendanceDetail, 0, len(records))
	for _, r := range records {
		out = append(out, &AttendanceDetail{
			Titulo:          r.Conferencia.Titulo,
			Ponente:         r.Conferencia.Ponente,
			FechaInicio:     r.Conferencia.FechaInicio,
			Lugar:           r.Conferencia.Lugar,
			FechaAsistencia: r.Creado,
		})
	}
	return out
}
