package medicines

import "time"

// Medicine: PeriodHours es cada cuántas horas se administra.
type Medicine struct {
	ID          int64
	Name        string
	PeriodHours int
}

// Take es una administración puntual de un medicamento a una mascota.
type Take struct {
	ID         int64
	MedicineID int64
	PetID      int64
	TakenAt    time.Time // UTC

	Medicine Medicine
}

// NextDue es cuándo toca la siguiente toma. Cero si el medicamento no tiene
// período.
func (t Take) NextDue() time.Time {
	if t.Medicine.PeriodHours <= 0 {
		return time.Time{}
	}
	return t.TakenAt.Add(time.Duration(t.Medicine.PeriodHours) * time.Hour)
}
