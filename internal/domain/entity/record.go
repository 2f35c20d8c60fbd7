package entity

// BusinessRecord es cualquier registro de negocio que pertenece a una subsidiaria
// y aparece en una vista de lista con búsqueda de texto.
type BusinessRecord interface {
	// OwningSubsidiary devuelve el subsidiaryId del registro.
	OwningSubsidiary() int
	// SearchFields devuelve los campos visibles sobre los que opera la búsqueda.
	SearchFields() []string
}
