package metrics

// IncrementRegistration increments the participant registration counter
func (m *Metrics) IncrementRegistration() {
	m.safeExecute("IncrementRegistration", func() {
		m.RegistrationsTotal.Inc()
	})
}

// IncrementAttendanceConfirmed increments the attendance confirmation counter
func (m *Metrics) IncrementAttendanceConfirmed() {
	m.safeExecute("IncrementAttendanceConfirmed", func() {
		m.AttendancesConfirmedTotal.Inc()
	})
}

// IncrementTeamCreated increments the team creation counter
func (m *Metrics) IncrementTeamCreated() {
	m.safeExecute("IncrementTeamCreated", func() {
		m.TeamsCreatedTotal.Inc()
	})
}

// IncrementCertificateGenerated increments the certificate generation counter
func (m *Metrics) IncrementCertificateGenerated() {
	m.safeExecute("IncrementCertificateGenerated", func() {
		m.CertificatesGeneratedTotal.Inc()
	})
}

// SetParticipantsTotal sets total participants gauge
func (m *Metrics) SetParticipantsTotal(count int64) {
	m.safeExecute("SetParticipantsTotal", func() {
		m.ParticipantsTotal.Set(float64(count))
	})
}

// SetTeamsTotal sets total teams gauge
func (m *Metrics) SetTeamsTotal(count int64) {
	m.safeExecute("SetTeamsTotal", func() {
		m.TeamsTotal.Set(float64(count))
	})
}
