package domain

// EstadoHabitacion representa el estado de ocupación de una habitación física.
type EstadoHabitacion string

const (
	HabitacionLibre         EstadoHabitacion = "Libre"
	HabitacionOcupada       EstadoHabitacion = "Ocupada"
	HabitacionLimpieza      EstadoHabitacion = "Limpieza"
	HabitacionMantenimiento EstadoHabitacion = "Mantenimiento"
	HabitacionReservada     EstadoHabitacion = "Reservada"
)

// Review representa una valoración de huésped sobre una habitación.
type Review struct {
	Autor  string `json:"autor"`
	Rating int    `json:"rating"`
	Texto  string `json:"texto"`
}

// Habitacion representa una habitación física del hotel. Numero es una
// etiqueta opaca: no se garantiza que sea numérica. Precio es el importe por
// noche ya parseado; el almacén externo lo guarda decorado ("47 €").
type Habitacion struct {
	ID             string           `json:"id"`
	Numero         string           `json:"numero"`
	Titulo         string           `json:"titulo"`
	Tipo           string           `json:"tipo"`
	Planta         string           `json:"planta"`
	Precio         float64          `json:"precio"`
	PrecioAnterior float64          `json:"precioAnterior,omitempty"`
	Estado         EstadoHabitacion `json:"estado"`
	Extras         []string         `json:"extras,omitempty"`
	Imagenes       []string         `json:"imagenes,omitempty"`
	Nota           string           `json:"nota,omitempty"`
	Reviews        []Review         `json:"reviews,omitempty"`
}

// HabitacionRepository define las operaciones contra el catálogo de
// habitaciones del almacén externo.
type HabitacionRepository interface {
	// GetAll obtiene el catálogo completo
	GetAll() ([]Habitacion, error)
	// GetByID obtiene una habitación por su ID
	GetByID(id string) (*Habitacion, error)
	// Create da de alta una habitación nueva
	Create(h *Habitacion) error
	// Replace sustituye la habitación completa (edición con arrays de fotos y extras)
	Replace(id string, h *Habitacion) error
	// UpdateEstado cambia solo el estado de ocupación
	UpdateEstado(id string, estado EstadoHabitacion) error
	// UpdatePrecio cambia el precio por noche guardando el anterior
	UpdatePrecio(id string, precio, anterior float64) error
	// Delete elimina la habitación del catálogo
	Delete(id string) error
}
