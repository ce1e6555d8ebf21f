package locomotion

// Categorías conocidas de desplazamiento.
// Son orientativas: el repositorio acepta cualquier texto.
const (
	CategoryTerrestrial = "Terrestre"
	CategoryAerial      = "Aéreo"
	CategoryAquatic     = "Acuático"
)

// Mode representa un modo de desplazamiento (tipo + velocidad en km/h).
type Mode struct {
	ID       int
	Category string
	Speed    float64
}

// Input es el payload de alta/actualización (sin ID, lo asigna el repositorio).
type Input struct {
	Category string
	Speed    float64
}
