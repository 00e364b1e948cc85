package breeds

// Breed es parte del catálogo; borrarla borra sus mascotas.
type Breed struct {
	ID   int64
	Name string
}
