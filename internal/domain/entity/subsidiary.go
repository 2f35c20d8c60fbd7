package entity

// Subsidiary representa una unidad de negocio del holding; es la frontera de visibilidad de datos.
type Subsidiary struct {
	ID          int
	Name        string
	Description string
	Color       string   // color de marca (hex)
	Products    []string // líneas de producto principales
}
