package vaccines

// Vaccine es parte del catálogo.
type Vaccine struct {
	ID           int64
	Name         string
	Manufacturer string
	Type         string
}

// Vaccination registra que a una mascota se le aplicó una vacuna durante una
// cita.
type Vaccination struct {
	ID            int64
	VaccineID     int64
	PetID         int64
	AppointmentID int64

	// Vaccine viene del join en lecturas.
	Vaccine Vaccine
}
