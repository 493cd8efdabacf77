package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSize is the exact number of members a contest team must have
// (one captain plus five additional members)
const TeamSize = 6

// Team is a contest team. Name uniqueness is scoped to active teams, so a
// deactivated team frees its name. The only mutation after creation is
// deactivation.
type Team struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	NombreEquipo string       `gorm:"type:varchar(255);not null;index:idx_equipos_nombre" json:"nombreEquipo"`
	CapitanID    uuid.UUID    `gorm:"type:uuid;not null" json:"capitanId"`
	Activo       bool         `gorm:"not null;index:idx_equipos_activo" json:"activo"`
	Creado       time.Time    `gorm:"type:timestamp;not null" json:"creado"`
	Miembros     []TeamMember `gorm:"foreignKey:EquipoID;constraint:OnDelete:CASCADE" json:"miembros,omitempty"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "equipos"
}

// BeforeCreate assigns the row UUID and creation timestamp
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Creado.IsZero() {
		t.Creado = time.Now().UTC()
	}
	return nil
}

// TeamMember links a participant to a team. The captain's row is inserted
// explicitly inside the creation transaction together with the other five,
// so the whole membership invariant lives in one place.
type TeamMember struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	EquipoID       uuid.UUID   `gorm:"type:uuid;not null;index:idx_miembros_equipo;uniqueIndex:uq_miembros_equipo_participante" json:"equipoId"`
	ParticipanteID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_miembros_equipo_participante" json:"participanteId"`
	EsCapitan      bool        `gorm:"not null;default:false" json:"esCapitan"`
	Participante   Participant `gorm:"foreignKey:ParticipanteID;constraint:OnDelete:CASCADE" json:"participante,omitempty"`
}

// TableName specifies the table name for TeamMember
func (TeamMember) TableName() string {
	return "miembros_equipo"
}

// BeforeCreate assigns the row UUID
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
