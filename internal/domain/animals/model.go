package animals

// Animal es un animal registrado. LocomotionModeID referencia un modo de
// desplazamiento por id y no se valida al escribir.
type Animal struct {
	ID int

	Name         string
	Species      string
	Domesticable bool

	LocomotionModeID int
}

// Input es el payload de alta/actualización (sin ID).
type Input struct {
	Name             string
	Species          string
	Domesticable     bool
	LocomotionModeID int
}
