package analyses

// Type es parte del catálogo (p.ej. "Hemograma").
type Type struct {
	ID           int64
	Name         string
	Description  string
	Instructions string
}

// Analysis es un análisis pedido en una cita.
type Analysis struct {
	ID             int64
	AppointmentID  int64
	AnalysisTypeID int64

	// Type viene del join en lecturas.
	Type Type
}
