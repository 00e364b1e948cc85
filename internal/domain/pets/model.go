package pets

import "vet-clinic/internal/domain/breeds"

// Pet pertenece a un único dueño (OwnerID) y a una raza del catálogo.
type Pet struct {
	ID      int64
	OwnerID int64
	BreedID int64

	Name string
	Age  int

	// Recommendations las completa la clínica; nil = sin recomendaciones.
	Recommendations *string

	// Breed viene del join en lecturas; en escrituras se ignora.
	Breed breeds.Breed
}
