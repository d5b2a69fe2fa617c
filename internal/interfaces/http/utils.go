package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

const formatoFecha = "2006-01-02"

// parseFecha interpreta una fecha YYYY-MM-DD del cuerpo de la petición.
func parseFecha(s string) (time.Time, error) {
	return time.Parse(formatoFecha, s)
}

// CategoriaWebRequest es una categoría web dentro de un borrador de reserva.
type CategoriaWebRequest struct {
	Tipo     string  `json:"tipo"`
	Cantidad int     `json:"cantidad"`
	Precio   float64 `json:"precio"`
}

// PasajeroRequest es un pasajero dentro de un borrador de reserva.
type PasajeroRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos,omitempty"`
	DNI       string `json:"dni"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Alergias  string `json:"alergias,omitempty"`
	Tipo      string `json:"tipo"`
	Titular   bool   `json:"titular"`
}

// ReservaRequest es el borrador completo que envía el cliente al crear o
// editar una reserva, y también el cuerpo del presupuesto.
type ReservaRequest struct {
	Titular            string                `json:"titular"`
	FechaEntrada       string                `json:"fechaEntrada"`
	FechaSalida        string                `json:"fechaSalida"`
	Adultos            int                   `json:"adultos"`
	Ninhos             int                   `json:"ninos"`
	NumeroHabitaciones int                   `json:"numeroHabitaciones"`
	HabitacionesManual []string              `json:"habitacionesManual"`
	CategoriasWeb      []CategoriaWebRequest `json:"categoriasWeb"`
	Pension            string                `json:"pension"`
	PrecioTotal        float64               `json:"precioTotal"`
	Mascota            bool                  `json:"mascota"`
	Alergias           bool                  `json:"alergias"`
	NotasAlergias      string                `json:"notasAlergias,omitempty"`
	Pasajeros          []PasajeroRequest     `json:"pasajeros"`
	Estado             string                `json:"estado,omitempty"`
	ActualizarTotal    bool                  `json:"actualizarTotal"`
}

// aDominio convierte el borrador a una reserva de dominio. Las fechas mal
// formadas se marcan como inválidas en lugar de rechazarse aquí; la
// validación del servicio decide.
func (req *ReservaRequest) aDominio() *domain.Reserva {
	r := &domain.Reserva{
		Titular:            req.Titular,
		Adultos:            req.Adultos,
		Ninhos:             req.Ninhos,
		NumeroHabitaciones: req.NumeroHabitaciones,
		HabitacionesManual: req.HabitacionesManual,
		Pension:            req.Pension,
		PrecioTotal:        req.PrecioTotal,
		Mascota:            req.Mascota,
		Alergias:           req.Alergias,
		NotasAlergias:      req.NotasAlergias,
		Estado:             domain.EstadoReserva(req.Estado),
	}

	if entrada, err := parseFecha(req.FechaEntrada); err == nil {
		r.FechaEntrada = entrada
	} else {
		r.FechaEntradaInvalida = true
	}
	if salida, err := parseFecha(req.FechaSalida); err == nil {
		r.FechaSalida = salida
	} else {
		r.FechaSalidaInvalida = true
	}

	for _, cat := range req.CategoriasWeb {
		r.CategoriasWeb = append(r.CategoriasWeb, domain.CategoriaWeb{
			Tipo:     cat.Tipo,
			Cantidad: cat.Cantidad,
			Precio:   cat.Precio,
		})
	}

	for _, p := range req.Pasajeros {
		tipo := domain.TipoPasajero(p.Tipo)
		if tipo != domain.PasajeroAdulto && tipo != domain.PasajeroNinho {
			tipo = domain.PasajeroAdulto
		}
		r.Pasajeros = append(r.Pasajeros, domain.Pasajero{
			Nombre:    p.Nombre,
			Apellidos: p.Apellidos,
			DNI:       p.DNI,
			Telefono:  p.Telefono,
			Email:     p.Email,
			Alergias:  p.Alergias,
			Tipo:      tipo,
			Titular:   p.Titular,
		})
	}

	return r
}

// errorJSON responde con el mensaje de error en el formato común.
func errorJSON(c *fiber.Ctx, status int, mensaje string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": mensaje,
	})
}
