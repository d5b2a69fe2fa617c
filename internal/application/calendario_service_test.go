package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

func nuevoCalendarioService(reservas []domain.Reserva) *CalendarioService {
	return NewCalendarioService(
		&fakeReservaRepo{reservas: reservas},
		&fakeHabitacionRepo{habitaciones: catalogoDePrueba()},
		NewPricingEngine(TarifasPorDefecto()),
		zap.NewNop(),
	)
}

func TestMesEventosEntradaYSalida(t *testing.T) {
	svc := nuevoCalendarioService([]domain.Reserva{
		{
			ID:           "1",
			Titular:      "María López",
			FechaEntrada: fecha("2026-02-14"),
			FechaSalida:  fecha("2026-02-18"),
			Estado:       domain.ReservaConfirmada,
		},
	})

	cal, err := svc.Mes(domain.RolRecepcion, 2026, 2, fecha("2026-02-01"))
	require.NoError(t, err)

	assert.Equal(t, EventoEntrada, cal.Eventos["2026-02-14"])
	assert.Equal(t, EventoSalida, cal.Eventos["2026-02-18"])
	assert.Len(t, cal.Reservas["2026-02-14"], 1)
	assert.Len(t, cal.Reservas["2026-02-18"], 1)
}

func TestMesEntradaYSalidaMismoDiaSonAmbas(t *testing.T) {
	svc := nuevoCalendarioService([]domain.Reserva{
		{
			ID:           "1",
			FechaEntrada: fecha("2026-02-10"),
			FechaSalida:  fecha("2026-02-14"),
			Estado:       domain.ReservaConfirmada,
		},
		{
			ID:           "2",
			FechaEntrada: fecha("2026-02-14"),
			FechaSalida:  fecha("2026-02-17"),
			Estado:       domain.ReservaConfirmada,
		},
	})

	cal, err := svc.Mes(domain.RolRecepcion, 2026, 2, fecha("2026-02-01"))
	require.NoError(t, err)

	assert.Equal(t, EventoAmbas, cal.Eventos["2026-02-14"])
}

func TestMesPendientesSoloParaJefe(t *testing.T) {
	reservas := []domain.Reserva{
		{
			ID:           "1",
			FechaEntrada: fecha("2026-02-14"),
			FechaSalida:  fecha("2026-02-17"),
			Estado:       domain.ReservaPendiente,
		},
	}

	jefe, err := nuevoCalendarioService(reservas).Mes(domain.RolJefe, 2026, 2, fecha("2026-02-01"))
	require.NoError(t, err)
	assert.Equal(t, EventoPendiente, jefe.Eventos["2026-02-14"])

	recepcion, err := nuevoCalendarioService(reservas).Mes(domain.RolRecepcion, 2026, 2, fecha("2026-02-01"))
	require.NoError(t, err)
	assert.Empty(t, recepcion.Eventos)
}

func TestMesCompletadasPorFechaPasada(t *testing.T) {
	svc := nuevoCalendarioService([]domain.Reserva{
		{
			ID:           "1",
			FechaEntrada: fecha("2026-02-14"),
			FechaSalida:  fecha("2026-02-17"),
			Estado:       domain.ReservaConfirmada,
		},
	})

	// visto desde septiembre, la estancia de febrero ya terminó
	cal, err := svc.Mes(domain.RolLimpieza, 2026, 2, fecha("2026-09-01"))
	require.NoError(t, err)

	assert.Equal(t, EventoCompletada, cal.Eventos["2026-02-14"])
	assert.Equal(t, EventoCompletada, cal.Eventos["2026-02-17"])
}

func TestMesIgnoraCanceladasYFechasInvalidas(t *testing.T) {
	svc := nuevoCalendarioService([]domain.Reserva{
		{
			ID:           "1",
			FechaEntrada: fecha("2026-02-14"),
			FechaSalida:  fecha("2026-02-17"),
			Estado:       domain.ReservaCanceladaHotel,
		},
		{
			ID:                   "2",
			Estado:               domain.ReservaConfirmada,
			FechaEntradaInvalida: true,
		},
	})

	cal, err := svc.Mes(domain.RolRecepcion, 2026, 2, fecha("2026-02-01"))
	require.NoError(t, err)
	assert.Empty(t, cal.Eventos)
}

func TestMesRestauranteSoloAlergias(t *testing.T) {
	svc := nuevoCalendarioService([]domain.Reserva{
		{
			ID:           "1",
			FechaEntrada: fecha("2026-02-14"),
			FechaSalida:  fecha("2026-02-17"),
			Estado:       domain.ReservaConfirmada,
		},
		{
			ID:            "2",
			FechaEntrada:  fecha("2026-02-20"),
			FechaSalida:   fecha("2026-02-22"),
			Estado:        domain.ReservaConfirmada,
			Alergias:      true,
			NotasAlergias: "marisco",
		},
	})

	cal, err := svc.Mes(domain.RolRestaurante, 2026, 2, fecha("2026-02-01"))
	require.NoError(t, err)

	assert.NotContains(t, cal.Eventos, "2026-02-14")
	assert.Equal(t, EventoEntrada, cal.Eventos["2026-02-20"])
}

func TestMesInvalido(t *testing.T) {
	svc := nuevoCalendarioService(nil)
	_, err := svc.Mes(domain.RolJefe, 2026, 13, fecha("2026-02-01"))
	assert.Error(t, err)
}

func TestDia(t *testing.T) {
	svc := nuevoCalendarioService([]domain.Reserva{
		{
			ID:           "1",
			Titular:      "María López",
			FechaEntrada: fecha("2026-02-14"),
			FechaSalida:  fecha("2026-02-17"),
			Estado:       domain.ReservaConfirmada,
		},
	})

	reservas, err := svc.Dia(domain.RolRecepcion, fecha("2026-02-14"), fecha("2026-02-01"))
	require.NoError(t, err)
	require.Len(t, reservas, 1)
	assert.Equal(t, "María López", reservas[0].Titular)

	vacio, err := svc.Dia(domain.RolRecepcion, fecha("2026-02-15"), fecha("2026-02-01"))
	require.NoError(t, err)
	assert.Empty(t, vacio)
}
