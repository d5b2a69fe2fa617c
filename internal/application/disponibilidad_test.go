package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

func reservaConHabitacion(id, numero, entrada, salida string, estado domain.EstadoReserva) domain.Reserva {
	return domain.Reserva{
		ID:                 id,
		FechaEntrada:       fecha(entrada),
		FechaSalida:        fecha(salida),
		HabitacionesManual: []string{numero},
		Estado:             estado,
	}
}

func TestDisponibleConflictoDeFechas(t *testing.T) {
	checker := NewAvailabilityChecker()
	reservas := []domain.Reserva{
		reservaConHabitacion("1", "101", "2026-02-14", "2026-02-18", domain.ReservaConfirmada),
	}

	tests := []struct {
		nombre  string
		entrada string
		salida  string
		want    bool
	}{
		{"solape total", "2026-02-14", "2026-02-18", false},
		{"entrada dentro del rango", "2026-02-16", "2026-02-20", false},
		{"salida dentro del rango", "2026-02-12", "2026-02-15", false},
		{"entrada el dia de la salida", "2026-02-18", "2026-02-20", true},
		{"salida el dia de la entrada", "2026-02-10", "2026-02-14", true},
		{"rango anterior", "2026-02-01", "2026-02-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			got := checker.Disponible("101", fecha(tt.entrada), fecha(tt.salida), "", reservas)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisponibleIgnoraCanceladas(t *testing.T) {
	checker := NewAvailabilityChecker()

	tests := []struct {
		estado domain.EstadoReserva
		want   bool
	}{
		{domain.ReservaConfirmada, false},
		{domain.ReservaPendiente, false},
		{domain.ReservaCanceladaHotel, true},
		{domain.ReservaCanceladaCliente, true},
		{domain.ReservaDenegada, true},
		{"cancelada por cliente", true},
		{"DENEGADA", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.estado), func(t *testing.T) {
			reservas := []domain.Reserva{
				reservaConHabitacion("1", "101", "2026-02-14", "2026-02-18", tt.estado),
			}
			got := checker.Disponible("101", fecha("2026-02-15"), fecha("2026-02-17"), "", reservas)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisponibleExcluyeLaReservaEnEdicion(t *testing.T) {
	checker := NewAvailabilityChecker()
	reservas := []domain.Reserva{
		reservaConHabitacion("1", "101", "2026-02-14", "2026-02-18", domain.ReservaConfirmada),
	}

	assert.True(t, checker.Disponible("101", fecha("2026-02-14"), fecha("2026-02-18"), "1", reservas))
	assert.False(t, checker.Disponible("101", fecha("2026-02-14"), fecha("2026-02-18"), "2", reservas))
}

func TestDisponibleIgnoraFechasInvalidas(t *testing.T) {
	checker := NewAvailabilityChecker()
	r := reservaConHabitacion("1", "101", "2026-02-14", "2026-02-18", domain.ReservaConfirmada)
	r.FechaEntradaInvalida = true
	reservas := []domain.Reserva{r}

	assert.True(t, checker.Disponible("101", fecha("2026-02-15"), fecha("2026-02-17"), "", reservas))
}

func TestDisponibleOtraHabitacion(t *testing.T) {
	checker := NewAvailabilityChecker()
	reservas := []domain.Reserva{
		reservaConHabitacion("1", "101", "2026-02-14", "2026-02-18", domain.ReservaConfirmada),
	}

	assert.True(t, checker.Disponible("102", fecha("2026-02-14"), fecha("2026-02-18"), "", reservas))
}

func TestHabitacionesLibres(t *testing.T) {
	checker := NewAvailabilityChecker()
	catalogo := catalogoDePrueba()
	reservas := []domain.Reserva{
		reservaConHabitacion("1", "102", "2026-02-14", "2026-02-18", domain.ReservaConfirmada),
	}

	libres := checker.HabitacionesLibres(catalogo, fecha("2026-02-15"), fecha("2026-02-17"), "", reservas)
	assert.Equal(t, []string{"101", "201"}, libres)
}
