package domain

import (
	"time"
)

type EstadoReserva string

const (
	ReservaPendiente        EstadoReserva = "Pendiente"
	ReservaConfirmada       EstadoReserva = "Confirmada"
	ReservaDenegada         EstadoReserva = "Denegada"
	ReservaCanceladaCliente EstadoReserva = "Cancelada por cliente"
	ReservaCanceladaHotel   EstadoReserva = "Cancelada"
	// ReservaCompletada es un estado derivado en lectura, nunca se persiste.
	ReservaCompletada EstadoReserva = "Completada"
)

// EsCancelacion indica si el estado descarta la reserva a efectos de
// disponibilidad (cancelada o denegada).
func (e EstadoReserva) EsCancelacion() bool {
	return e == ReservaCanceladaCliente || e == ReservaCanceladaHotel || e == ReservaDenegada
}

// CategoriaWeb representa un paquete tipo+cantidad+precio elegido por el
// cliente a través del canal de reservas web.
type CategoriaWeb struct {
	Tipo     string  `json:"tipo"`
	Cantidad int     `json:"cantidad"`
	Precio   float64 `json:"precio"`
}

// TipoPasajero distingue adultos de niños en el listado de ocupantes.
type TipoPasajero string

const (
	PasajeroAdulto TipoPasajero = "adulto"
	PasajeroNinho  TipoPasajero = "ninho"
)

// Pasajero representa un ocupante con nombre de una reserva.
type Pasajero struct {
	Nombre    string       `json:"nombre"`
	Apellidos string       `json:"apellidos"`
	DNI       string       `json:"dni,omitempty"`
	Telefono  string       `json:"telefono,omitempty"`
	Email     string       `json:"email,omitempty"`
	Alergias  string       `json:"alergias,omitempty"`
	Tipo      TipoPasajero `json:"tipo"`
	Titular   bool         `json:"titular"`
}

// Reserva representa una reserva normalizada. El listado de habitaciones
// asignadas es una lista ordenada; la forma "101, 102" del almacén externo
// solo existe en la capa de gateway.
type Reserva struct {
	ID                   string         `json:"id"`
	Numero               string         `json:"numero"`
	Titular              string         `json:"titular"`
	FechaEntrada         time.Time      `json:"fechaEntrada"`
	FechaSalida          time.Time      `json:"fechaSalida"`
	Adultos              int            `json:"adultos"`
	Ninhos               int            `json:"ninhos"`
	NumeroHabitaciones   int            `json:"numeroHabitaciones"`
	HabitacionesManual   []string       `json:"habitacionesManual"`
	CategoriasWeb        []CategoriaWeb `json:"categoriasWeb,omitempty"`
	Pension              string         `json:"pension"`
	PrecioTotal          float64        `json:"precioTotal"`
	Mascota              bool           `json:"mascota"`
	Alergias             bool           `json:"alergias"`
	NotasAlergias        string         `json:"notasAlergias,omitempty"`
	Pasajeros            []Pasajero     `json:"pasajeros,omitempty"`
	Estado               EstadoReserva  `json:"estado"`
	FechaEntradaInvalida bool           `json:"-"`
	FechaSalidaInvalida  bool           `json:"-"`
}

// HabitacionesAsignadas devuelve la lista plana de números de habitación
// asignados manualmente, omitiendo huecos sin rellenar.
func (r *Reserva) HabitacionesAsignadas() []string {
	out := make([]string, 0, len(r.HabitacionesManual))
	for _, h := range r.HabitacionesManual {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// ListaHabitacion devuelve la lista plana de asignación en el orden que
// guarda el almacén: primero las categorías web (su tipo, repetido por
// cantidad), después los huecos manuales con número asignado.
func (r *Reserva) ListaHabitacion() []string {
	out := make([]string, 0, len(r.HabitacionesManual)+len(r.CategoriasWeb))
	for _, c := range r.CategoriasWeb {
		for i := 0; i < c.Cantidad; i++ {
			out = append(out, c.Tipo)
		}
	}
	out = append(out, r.HabitacionesAsignadas()...)
	return out
}

// TieneAlergias indica si la reserva debe aparecer en la vista de alergias
// del restaurante: flag explícito, notas, o cualquier pasajero con alergias.
func (r *Reserva) TieneAlergias() bool {
	if r.Alergias || r.NotasAlergias != "" {
		return true
	}
	for _, p := range r.Pasajeros {
		if p.Alergias != "" {
			return true
		}
	}
	return false
}

// DisplayStatus calcula el estado visible de la reserva: una confirmada cuya
// fecha de salida ya pasó se muestra como Completada. Nunca se persiste.
func DisplayStatus(r *Reserva, hoy time.Time) EstadoReserva {
	if r.Estado == ReservaConfirmada && !r.FechaSalidaInvalida {
		dia := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
		if r.FechaSalida.Before(dia) {
			return ReservaCompletada
		}
	}
	return r.Estado
}

// ReservaRepository define las operaciones disponibles contra el almacén
// externo de reservas.
type ReservaRepository interface {
	// GetAll obtiene todas las reservas normalizadas
	GetAll() ([]Reserva, error)
	// GetByID obtiene una reserva por su ID
	GetByID(id string) (*Reserva, error)
	// Create crea una nueva reserva y rellena su ID y numero
	Create(reserva *Reserva) error
	// Replace sustituye la reserva completa (edición desde el modal)
	Replace(id string, reserva *Reserva) error
	// UpdateEstado actualiza solo el estado (botones confirmar/denegar)
	UpdateEstado(id string, estado EstadoReserva) error
	// Delete elimina la reserva
	Delete(id string) error
}
