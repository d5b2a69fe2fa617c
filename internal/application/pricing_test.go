package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func catalogoDePrueba() []domain.Habitacion {
	return []domain.Habitacion{
		{ID: "1", Numero: "101", Tipo: "Individual", Precio: 47},
		{ID: "2", Numero: "102", Tipo: "Doble", Precio: 50},
		{ID: "3", Numero: "201", Tipo: "Suite", Precio: 120},
	}
}

func TestNoches(t *testing.T) {
	engine := NewPricingEngine(TarifasPorDefecto())

	tests := []struct {
		nombre  string
		entrada string
		salida  string
		want    int
	}{
		{"tres noches", "2026-02-14", "2026-02-17", 3},
		{"una noche", "2026-02-14", "2026-02-15", 1},
		{"mismo dia cuenta como una", "2026-02-14", "2026-02-14", 1},
		{"salida anterior cuenta como una", "2026-02-14", "2026-02-10", 1},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			got := engine.Noches(fecha(tt.entrada), fecha(tt.salida), false, false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNochesFechasInvalidas(t *testing.T) {
	engine := NewPricingEngine(TarifasPorDefecto())
	assert.Equal(t, 1, engine.Noches(time.Time{}, fecha("2026-02-17"), true, false))
	assert.Equal(t, 1, engine.Noches(fecha("2026-02-14"), time.Time{}, false, true))
}

func TestTarifaPension(t *testing.T) {
	engine := NewPricingEngine(TarifasPorDefecto())

	tests := []struct {
		pension string
		want    float64
	}{
		{"Todo incluido", 50},
		{"Pensión completa", 30},
		{"Media pensión", 18},
		{"Desayuno", 8},
		{"desayuno incluido", 8},
		{"Solo alojamiento", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.pension, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.TarifaPension(tt.pension))
		})
	}
}

func TestTarifaPensionTodoIncluidoGanaACompleta(t *testing.T) {
	// "todo" se evalúa antes que "completa" aunque el nombre contenga ambas
	engine := NewPricingEngine(TarifasPorDefecto())
	assert.Equal(t, float64(50), engine.TarifaPension("Todo incluido (pensión completa)"))
}

func TestCalcularDesgloseCategoriaWebConPension(t *testing.T) {
	// 2 adultos + 1 niño, media pensión, 3 noches, una Doble a 50:
	// habitaciones 150, pensión 18*3*3=162, total 312
	engine := NewPricingEngine(TarifasPorDefecto())

	r := &domain.Reserva{
		FechaEntrada: fecha("2026-02-14"),
		FechaSalida:  fecha("2026-02-17"),
		Adultos:      2,
		Ninhos:       1,
		Pension:      "Media pensión",
		CategoriasWeb: []domain.CategoriaWeb{
			{Tipo: "Doble", Cantidad: 1, Precio: 50},
		},
	}

	d := engine.CalcularDesglose(r, catalogoDePrueba())

	assert.Equal(t, 3, d.Noches)
	assert.Equal(t, 3, d.Huespedes)
	assert.Equal(t, float64(18), d.PensionPorNoche)
	assert.Equal(t, float64(162), d.PensionTotal)
	assert.Equal(t, float64(150), d.TotalHabitaciones)
	assert.Equal(t, float64(312), d.Total)
}

func TestCalcularDesgloseHabitacionManual(t *testing.T) {
	engine := NewPricingEngine(TarifasPorDefecto())

	r := &domain.Reserva{
		FechaEntrada:       fecha("2026-03-01"),
		FechaSalida:        fecha("2026-03-03"),
		Adultos:            1,
		HabitacionesManual: []string{"101"},
	}

	d := engine.CalcularDesglose(r, catalogoDePrueba())

	require.Len(t, d.Lineas, 1)
	assert.Equal(t, float64(47), d.Lineas[0].PrecioUnitario)
	assert.Equal(t, float64(94), d.TotalHabitaciones)
	assert.Equal(t, float64(94), d.Total)
}

func TestCalcularDesgloseHabitacionDesconocida(t *testing.T) {
	// una habitación fuera del catálogo aparece a cero en vez de fallar
	engine := NewPricingEngine(TarifasPorDefecto())

	r := &domain.Reserva{
		FechaEntrada:       fecha("2026-03-01"),
		FechaSalida:        fecha("2026-03-02"),
		Adultos:            1,
		HabitacionesManual: []string{"999"},
	}

	d := engine.CalcularDesglose(r, catalogoDePrueba())

	require.Len(t, d.Lineas, 1)
	assert.True(t, d.Lineas[0].SinPrecio)
	assert.Equal(t, float64(0), d.Lineas[0].Importe)
	assert.Equal(t, float64(0), d.TotalHabitaciones)
}

func TestCalcularDesgloseBaseInferida(t *testing.T) {
	// sin itemización de habitaciones, el total guardado menos la pensión
	// se muestra como línea base
	engine := NewPricingEngine(TarifasPorDefecto())

	r := &domain.Reserva{
		FechaEntrada: fecha("2026-03-01"),
		FechaSalida:  fecha("2026-03-04"),
		Adultos:      1,
		Ninhos:       1,
		Pension:      "Desayuno",
		PrecioTotal:  200,
	}

	d := engine.CalcularDesglose(r, catalogoDePrueba())

	// pensión: 8 * 2 huéspedes * 3 noches = 48
	assert.Equal(t, float64(48), d.PensionTotal)
	assert.Equal(t, float64(152), d.TotalHabitaciones)
	assert.Equal(t, float64(200), d.Total)
}

func TestCalcularDesgloseBaseInferidaNoNegativa(t *testing.T) {
	engine := NewPricingEngine(TarifasPorDefecto())

	r := &domain.Reserva{
		FechaEntrada: fecha("2026-03-01"),
		FechaSalida:  fecha("2026-03-04"),
		Adultos:      2,
		Pension:      "Todo incluido",
		PrecioTotal:  10,
	}

	d := engine.CalcularDesglose(r, catalogoDePrueba())
	assert.GreaterOrEqual(t, d.TotalHabitaciones, float64(0))
}

func TestCalcularDesgloseIdempotente(t *testing.T) {
	engine := NewPricingEngine(TarifasPorDefecto())

	r := &domain.Reserva{
		FechaEntrada: fecha("2026-02-14"),
		FechaSalida:  fecha("2026-02-17"),
		Adultos:      2,
		Ninhos:       1,
		Pension:      "Media pensión",
		CategoriasWeb: []domain.CategoriaWeb{
			{Tipo: "Doble", Cantidad: 1, Precio: 50},
		},
		HabitacionesManual: []string{"101"},
	}

	primera := engine.CalcularDesglose(r, catalogoDePrueba())
	segunda := engine.CalcularDesglose(r, catalogoDePrueba())
	assert.Equal(t, primera, segunda)
}
