package dto

// CertificateCheckResponse reports certificate eligibility for a participant.
// Eligibility requires at least one confirmed attendance.
type CertificateCheckResponse struct {
	Participante           *ParticipantResponse `json:"participante"`
	Asistencias            []*AttendanceDetail  `json:"asistencias"`
	PuedeObtenerConstancia bool                 `json:"puedeObtenerConstancia"`
}
