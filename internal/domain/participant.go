package domain

// Category classifies a registered participant
type Category string

const (
	CategoryStudent  Category = "Estudiante"
	CategorySpeaker  Category = "Ponente"
	CategoryExternal Category = "Asistente externo"
)

// Valid reports whether the category is one of the registration options
func (c Category) Valid() bool {
	switch c {
	case CategoryStudent, CategorySpeaker, CategoryExternal:
		return true
	}
	return false
}

// Programs offered at the faculty. The registration form, team validation
// and display logic all consume this single list.
var Programs = []string{
	"Ingeniería Industrial",
	"Ingeniería Ambiental",
	"Ingeniería en Datos e Inteligencia Organizacional",
	"Ingeniería en Logística y Cadena de Suministro",
	"Ingeniería en Inteligencia Artificial",
	"Ingeniería en Industrias Alimentarias",
}

// ValidProgram reports whether p is one of the offered programs
func ValidProgram(p string) bool {
	for _, known := range Programs {
		if p == known {
			return true
		}
	}
	return false
}

// Participant is a registered attendee of the Jornada. Email is the natural
// key; the bracelet number is assigned at the venue and unique when present.
// Rows are never deleted; the only mutation after registration is the
// idempotent bracelet assignment.
type Participant struct {
	BaseModel
	ApellidoPaterno string   `gorm:"type:varchar(100);not null" json:"apellidoPaterno"`
	ApellidoMaterno string   `gorm:"type:varchar(100);not null" json:"apellidoMaterno"`
	PrimerNombre    string   `gorm:"type:varchar(100);not null" json:"primerNombre"`
	SegundoNombre   *string  `gorm:"type:varchar(100)" json:"segundoNombre,omitempty"`
	Email           string   `gorm:"type:varchar(255);not null;uniqueIndex:uq_participantes_email" json:"email"`
	Telefono        string   `gorm:"type:char(10);not null" json:"telefono"`
	Categoria       Category `gorm:"type:varchar(50);not null;index:idx_participantes_categoria" json:"categoria"`
	Programa        *string  `gorm:"type:varchar(100)" json:"programa,omitempty"`
	Brazalete       *string  `gorm:"type:varchar(20);uniqueIndex:uq_participantes_brazalete" json:"brazalete,omitempty"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participantes"
}

// FullName returns the display name used on certificates
func (p *Participant) FullName() string {
	name := p.PrimerNombre
	if p.SegundoNombre != nil && *p.SegundoNombre != "" {
		name += " " + *p.SegundoNombre
	}
	return name + " " + p.ApellidoPaterno + " " + p.ApellidoMaterno
}
