package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is a scheduled conference, workshop or forum. The schedule is
// seeded outside the application and treated as read-only reference data;
// only active rows are ever listed.
type Activity struct {
	BaseModel
	Titulo      string         `gorm:"type:varchar(255);not null" json:"titulo"`
	Ponente     *string        `gorm:"type:varchar(255)" json:"ponente,omitempty"`
	FechaInicio time.Time      `gorm:"type:timestamp;not null;index:idx_conferencias_fecha_inicio" json:"fechaInicio"`
	FechaFin    time.Time      `gorm:"type:timestamp;not null" json:"fechaFin"`
	Lugar       *string        `gorm:"type:varchar(255)" json:"lugar,omitempty"`
	Cupo        *int           `gorm:"type:int" json:"cupo,omitempty"`
	Activa      bool           `gorm:"not null;index:idx_conferencias_activa" json:"activa"`
	Extra       datatypes.JSON `gorm:"type:jsonb" json:"extra,omitempty"`
}

// TableName specifies the table name for Activity
func (Activity) TableName() string {
	return "conferencias"
}

// WindowOpen reports whether attendance confirmation is allowed at t.
// Both endpoints are inclusive.
func (a *Activity) WindowOpen(t time.Time) bool {
	return !t.Before(a.FechaInicio) && !t.After(a.FechaFin)
}
