package application

import (
	"strings"
	"time"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

// AvailabilityChecker determina si una habitación física está libre para un
// rango de fechas frente al conjunto de reservas existente.
type AvailabilityChecker struct{}

// NewAvailabilityChecker crea el comprobador de disponibilidad.
func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{}
}

// descartada indica si la reserva no bloquea habitaciones. Se comprueba por
// fragmento sobre el texto del estado, en minúsculas, porque los registros
// persistidos mezclan grafías ("Cancelada", "cancelada por cliente",
// "DENEGADA").
func descartada(estado domain.EstadoReserva) bool {
	s := strings.ToLower(string(estado))
	return strings.Contains(s, "cancelada") || strings.Contains(s, "denegada")
}

// solapan aplica la regla de intervalo semiabierto: que la salida de uno
// coincida con la entrada de otro no es conflicto (un huésped puede entrar
// el día que otro sale).
func solapan(entrada1, salida1, entrada2, salida2 time.Time) bool {
	return entrada1.Before(salida2) && entrada2.Before(salida1)
}

// Disponible comprueba si la habitación está libre en el rango dado.
// excluirID salta la reserva que se está editando. Las reservas con fechas
// no parseables se tratan como no solapadas: el dato es defectuoso y no
// puede bloquear el resto del hotel.
func (c *AvailabilityChecker) Disponible(numero string, entrada, salida time.Time, excluirID string, reservas []domain.Reserva) bool {
	if numero == "" {
		return true
	}
	for i := range reservas {
		r := &reservas[i]
		if excluirID != "" && r.ID == excluirID {
			continue
		}
		if descartada(r.Estado) {
			continue
		}
		if r.FechaEntradaInvalida || r.FechaSalidaInvalida {
			continue
		}

		claimed := false
		for _, h := range r.HabitacionesAsignadas() {
			if h == numero {
				claimed = true
				break
			}
		}
		if !claimed {
			continue
		}

		if solapan(entrada, salida, r.FechaEntrada, r.FechaSalida) {
			return false
		}
	}
	return true
}

// HabitacionesLibres devuelve los números de habitación del catálogo libres
// para el rango dado, en el orden del catálogo.
func (c *AvailabilityChecker) HabitacionesLibres(catalogo []domain.Habitacion, entrada, salida time.Time, excluirID string, reservas []domain.Reserva) []string {
	libres := make([]string, 0, len(catalogo))
	for i := range catalogo {
		if c.Disponible(catalogo[i].Numero, entrada, salida, excluirID, reservas) {
			libres = append(libres, catalogo[i].Numero)
		}
	}
	return libres
}
