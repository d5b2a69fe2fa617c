package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

func nuevoReconciler() *Reconciler {
	return NewReconciler(NewAvailabilityChecker())
}

func TestSincronizarContador(t *testing.T) {
	rc := nuevoReconciler()

	r := &domain.Reserva{
		CategoriasWeb: []domain.CategoriaWeb{
			{Tipo: "Doble", Cantidad: 2, Precio: 50},
		},
		HabitacionesManual: []string{"101", ""},
	}
	rc.SincronizarContador(r)
	assert.Equal(t, 4, r.NumeroHabitaciones)

	// sin fuentes, el contador no baja de 1
	vacia := &domain.Reserva{}
	rc.SincronizarContador(vacia)
	assert.Equal(t, 1, vacia.NumeroHabitaciones)
}

func TestIncrementarHabitaciones(t *testing.T) {
	rc := nuevoReconciler()
	r := &domain.Reserva{HabitacionesManual: []string{"101"}}

	rc.IncrementarHabitaciones(r)

	assert.Equal(t, []string{"101", ""}, r.HabitacionesManual)
	assert.Equal(t, 2, r.NumeroHabitaciones)
}

func TestDecrementarVaciaHuecosManualesAntesQueCategorias(t *testing.T) {
	rc := nuevoReconciler()
	r := &domain.Reserva{
		CategoriasWeb: []domain.CategoriaWeb{
			{Tipo: "Doble", Cantidad: 2, Precio: 50},
		},
		HabitacionesManual: []string{"101"},
	}
	rc.SincronizarContador(r)

	rc.DecrementarHabitaciones(r)
	assert.Empty(t, r.HabitacionesManual)
	assert.Equal(t, 2, r.CategoriasWeb[0].Cantidad)
	assert.Equal(t, 2, r.NumeroHabitaciones)

	rc.DecrementarHabitaciones(r)
	assert.Equal(t, 1, r.CategoriasWeb[0].Cantidad)
	assert.Equal(t, 1, r.NumeroHabitaciones)
}

func TestDecrementarEliminaCategoriaAgotada(t *testing.T) {
	rc := nuevoReconciler()
	r := &domain.Reserva{
		CategoriasWeb: []domain.CategoriaWeb{
			{Tipo: "Suite", Cantidad: 1, Precio: 120},
			{Tipo: "Doble", Cantidad: 1, Precio: 50},
		},
	}
	rc.SincronizarContador(r)

	rc.DecrementarHabitaciones(r)

	require.Len(t, r.CategoriasWeb, 1)
	assert.Equal(t, "Suite", r.CategoriasWeb[0].Tipo)
	assert.Equal(t, 1, r.NumeroHabitaciones)
}

func TestDecrementarNoBajaDeUna(t *testing.T) {
	rc := nuevoReconciler()
	r := &domain.Reserva{HabitacionesManual: []string{"101"}}
	rc.SincronizarContador(r)

	rc.DecrementarHabitaciones(r)

	assert.Equal(t, []string{"101"}, r.HabitacionesManual)
	assert.Equal(t, 1, r.NumeroHabitaciones)
}

func TestOpcionesParaHueco(t *testing.T) {
	rc := nuevoReconciler()
	catalogo := catalogoDePrueba()
	reservas := []domain.Reserva{
		reservaConHabitacion("9", "201", "2026-02-14", "2026-02-18", domain.ReservaConfirmada),
	}

	r := &domain.Reserva{
		ID:                 "1",
		FechaEntrada:       fecha("2026-02-15"),
		FechaSalida:        fecha("2026-02-17"),
		HabitacionesManual: []string{"101", ""},
	}

	// el hueco vacío ve las libres menos la 101, asignada al otro hueco
	opciones := rc.OpcionesParaHueco(r, 1, catalogo, reservas)
	assert.Equal(t, []string{"102"}, opciones)

	// el hueco 0 conserva su propia habitación en la lista
	opciones = rc.OpcionesParaHueco(r, 0, catalogo, reservas)
	assert.Contains(t, opciones, "101")
	assert.Contains(t, opciones, "102")
	assert.NotContains(t, opciones, "201")
}

func TestOpcionesParaHuecoConservaAsignacionOcupada(t *testing.T) {
	// la habitación del propio hueco sigue apareciendo aunque el rango la
	// marque como ocupada por esta misma reserva ya persistida
	rc := nuevoReconciler()
	catalogo := catalogoDePrueba()
	reservas := []domain.Reserva{
		reservaConHabitacion("otro", "101", "2026-02-15", "2026-02-17", domain.ReservaConfirmada),
	}

	r := &domain.Reserva{
		ID:                 "1",
		FechaEntrada:       fecha("2026-02-15"),
		FechaSalida:        fecha("2026-02-17"),
		HabitacionesManual: []string{"101"},
	}

	opciones := rc.OpcionesParaHueco(r, 0, catalogo, reservas)
	assert.Contains(t, opciones, "101")
}

func TestAsignarHuecoRechazaDuplicadoEnFormulario(t *testing.T) {
	rc := nuevoReconciler()
	r := &domain.Reserva{HabitacionesManual: []string{"101", ""}}

	err := rc.AsignarHueco(r, 1, "101")
	assert.Error(t, err)

	require.NoError(t, rc.AsignarHueco(r, 1, "102"))
	assert.Equal(t, []string{"101", "102"}, r.HabitacionesManual)
}

func TestAsignarHuecoFueraDeRango(t *testing.T) {
	rc := nuevoReconciler()
	r := &domain.Reserva{HabitacionesManual: []string{"101"}}

	assert.Error(t, rc.AsignarHueco(r, 3, "102"))
	assert.Error(t, rc.AsignarHueco(r, -1, "102"))
}

func TestCambioDeFechasDesasignaOcupadas(t *testing.T) {
	rc := nuevoReconciler()
	reservas := []domain.Reserva{
		reservaConHabitacion("9", "101", "2026-03-01", "2026-03-05", domain.ReservaConfirmada),
	}

	r := &domain.Reserva{
		ID:                 "1",
		FechaEntrada:       fecha("2026-03-02"),
		FechaSalida:        fecha("2026-03-04"),
		HabitacionesManual: []string{"101", "102"},
	}

	rc.CambioDeFechas(r, reservas)

	// el hueco queda vacío, no desaparece
	assert.Equal(t, []string{"", "102"}, r.HabitacionesManual)
}

func TestCambioDeCategorias(t *testing.T) {
	rc := nuevoReconciler()
	r := &domain.Reserva{HabitacionesManual: []string{"101"}}

	rc.CambioDeCategorias(r, []domain.CategoriaWeb{
		{Tipo: "Doble", Cantidad: 2, Precio: 50},
	})

	assert.Equal(t, 3, r.NumeroHabitaciones)
	assert.Equal(t, []string{"101"}, r.HabitacionesManual)
}
