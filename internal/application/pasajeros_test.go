package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

func TestAgregarRespetaCapacidad(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{Titular: "María López", Adultos: 2, Ninhos: 1}

	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))
	assert.Error(t, m.Agregar(r), "no caben más pasajeros que plazas")

	assert.Len(t, r.Pasajeros, 3)
}

func TestAgregarTiposPorCupo(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{Titular: "María López", Adultos: 1, Ninhos: 2}

	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))

	assert.Equal(t, domain.PasajeroAdulto, r.Pasajeros[0].Tipo)
	assert.Equal(t, domain.PasajeroNinho, r.Pasajeros[1].Tipo)
	assert.Equal(t, domain.PasajeroNinho, r.Pasajeros[2].Tipo)
}

func TestPrimerPasajeroEsTitular(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{Titular: "María López", Adultos: 2}

	require.NoError(t, m.Agregar(r))

	assert.True(t, r.Pasajeros[0].Titular)
	assert.Equal(t, "María López", r.Pasajeros[0].Nombre)
}

func TestQuitarDescuentaContadores(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{Titular: "María López", Adultos: 2, Ninhos: 1}
	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))

	// quitar el niño (posición 2)
	require.NoError(t, m.Quitar(r, 2))
	assert.Equal(t, 0, r.Ninhos)

	// quitar adultos: el contador no baja de 1
	require.NoError(t, m.Quitar(r, 1))
	assert.Equal(t, 1, r.Adultos)
	require.NoError(t, m.Quitar(r, 0))
	assert.Equal(t, 1, r.Adultos)
}

func TestQuitarTitularPromocionaAlPrimero(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{Titular: "María López", Adultos: 2}
	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))
	r.Pasajeros[1].Nombre = "Juan Pérez"

	require.NoError(t, m.Quitar(r, 0))

	require.Len(t, r.Pasajeros, 1)
	assert.True(t, r.Pasajeros[0].Titular)
	assert.Equal(t, "Juan Pérez", r.Titular)
}

func TestMarcarTitularEsExclusivo(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{Titular: "María López", Adultos: 2}
	require.NoError(t, m.Agregar(r))
	require.NoError(t, m.Agregar(r))
	r.Pasajeros[1].Nombre = "Juan Pérez"

	require.NoError(t, m.MarcarTitular(r, 1))

	assert.False(t, r.Pasajeros[0].Titular)
	assert.True(t, r.Pasajeros[1].Titular)
	assert.Equal(t, "Juan Pérez", r.Titular)
}

func TestSincronizarTitularEnAmbosSentidos(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{Titular: "María López", Adultos: 1}
	require.NoError(t, m.Agregar(r))

	r.Pasajeros[0].Nombre = "María García"
	m.SincronizarTitular(r, true)
	assert.Equal(t, "María García", r.Titular)

	r.Titular = "Carmen Ruiz"
	m.SincronizarTitular(r, false)
	assert.Equal(t, "Carmen Ruiz", r.Pasajeros[0].Nombre)
}

func TestValidarPasajero(t *testing.T) {
	m := NewRosterManager()

	titular := &domain.Pasajero{
		Nombre:    "María",
		Apellidos: "López",
		DNI:       "12345678A",
		Telefono:  "612 345 678",
		Email:     "maria@example.com",
		Titular:   true,
	}
	assert.Empty(t, m.Validar(titular))

	// teléfono y email solo son obligatorios para el titular
	acompanante := &domain.Pasajero{Nombre: "Juan", Apellidos: "Pérez"}
	assert.Empty(t, m.Validar(acompanante))

	sinDatos := &domain.Pasajero{Titular: true}
	errores := m.Validar(sinDatos)
	assert.Contains(t, errores, "nombre")
	assert.Contains(t, errores, "telefono")
	assert.Contains(t, errores, "email")

	dniMalo := &domain.Pasajero{Nombre: "Juan", Apellidos: "Pérez", DNI: "1234"}
	assert.Contains(t, m.Validar(dniMalo), "dni")
}

func TestValidarTodosExigeUnSoloTitular(t *testing.T) {
	m := NewRosterManager()
	r := &domain.Reserva{
		Pasajeros: []domain.Pasajero{
			{Nombre: "María", Apellidos: "López", Titular: true, Telefono: "612345678", Email: "maria@example.com"},
			{Nombre: "Juan", Apellidos: "Pérez", Titular: true, Telefono: "698765432", Email: "juan@example.com"},
		},
	}

	errores := m.ValidarTodos(r)
	require.Contains(t, errores, 0)
	assert.Contains(t, errores[0], "titular")
}
