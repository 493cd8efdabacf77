package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jornada-registro-api/internal/domain"
)

// ActivityResponse is a scheduled activity as shown to attendees
type ActivityResponse struct {
	ID          uuid.UUID      `json:"id"`
	Titulo      string         `json:"titulo"`
	Ponente     *string        `json:"ponente,omitempty"`
	FechaInicio time.Time      `json:"fechaInicio"`
	FechaFin    time.Time      `json:"fechaFin"`
	Lugar       *string        `json:"lugar,omitempty"`
	Cupo        *int           `json:"cupo,omitempty"`
	Extra       datatypes.JSON `json:"extra,omitempty"`
}

// NewActivityResponse maps a domain activity to its API shape
func NewActivityResponse(a *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:          a.ID,
		Titulo:      a.Titulo,
		Ponente:     a.Ponente,
		FechaInicio: a.FechaInicio,
		FechaFin:    a.FechaFin,
		Lugar:       a.Lugar,
		Cupo:        a.Cupo,
		Extra:       a.Extra,
	}
}

// NewActivityResponses maps a slice of domain activities
func NewActivityResponses(activities []*domain.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, NewActivityResponse(a))
	}
	return out
}
