package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceMode records how an attendance was confirmed
type AttendanceMode string

const (
	ModeSelf  AttendanceMode = "self"
	ModeStaff AttendanceMode = "staff"
	ModeQR    AttendanceMode = "qr"
)

// Attendance is one confirmed attendance of a participant at an activity.
// The composite unique index keeps at most one row per pair; rows are
// created once and never updated or deleted.
type Attendance struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ParticipanteID uuid.UUID      `gorm:"type:uuid;not null;index:idx_asistencias_participante;uniqueIndex:uq_asistencias_participante_conferencia" json:"participanteId"`
	ConferenciaID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_asistencias_participante_conferencia" json:"conferenciaId"`
	Creado         time.Time      `gorm:"type:timestamp;not null" json:"creado"`
	Modo           AttendanceMode `gorm:"type:varchar(10);not null;default:'self'" json:"modo"`
	Participante   Participant    `gorm:"foreignKey:ParticipanteID;constraint:OnDelete:CASCADE" json:"-"`
	Conferencia    Activity       `gorm:"foreignKey:ConferenciaID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Attendance
func (Attendance) TableName() string {
	return "asistencias"
}

// BeforeCreate assigns the row UUID and the server-side timestamp
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Creado.IsZero() {
		a.Creado = time.Now().UTC()
	}
	return nil
}
