package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

func storeDePrueba(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, ttl), mr
}

func empleadoDePrueba() *domain.Empleado {
	return &domain.Empleado{
		ID:        "4",
		Nombre:    "Lucía",
		Apellidos: "Ramos",
		Usuario:   "lramos",
		Rol:       domain.RolRecepcion,
	}
}

func TestCrearYObtenerSesion(t *testing.T) {
	store, _ := storeDePrueba(t, time.Hour)
	ctx := context.Background()

	sesion, err := store.Crear(ctx, empleadoDePrueba())
	require.NoError(t, err)
	require.NotEmpty(t, sesion.Token)
	assert.Equal(t, "Lucía Ramos", sesion.Nombre)

	recuperada, err := store.Obtener(ctx, sesion.Token)
	require.NoError(t, err)
	assert.Equal(t, "4", recuperada.EmpleadoID)
	assert.Equal(t, "lramos", recuperada.Usuario)
	assert.Equal(t, domain.RolRecepcion, recuperada.Rol)
}

func TestObtenerTokenDesconocido(t *testing.T) {
	store, _ := storeDePrueba(t, time.Hour)

	_, err := store.Obtener(context.Background(), "no-existe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encontrada o expirada")
}

func TestObtenerTokenVacio(t *testing.T) {
	store, _ := storeDePrueba(t, time.Hour)

	_, err := store.Obtener(context.Background(), "")
	require.Error(t, err)
}

func TestSesionExpira(t *testing.T) {
	store, mr := storeDePrueba(t, time.Minute)
	ctx := context.Background()

	sesion, err := store.Crear(ctx, empleadoDePrueba())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Obtener(ctx, sesion.Token)
	require.Error(t, err)
}

func TestObtenerRenuevaExpiracion(t *testing.T) {
	store, mr := storeDePrueba(t, time.Minute)
	ctx := context.Background()

	sesion, err := store.Crear(ctx, empleadoDePrueba())
	require.NoError(t, err)

	// actividad a mitad del TTL mantiene la sesión viva
	mr.FastForward(40 * time.Second)
	_, err = store.Obtener(ctx, sesion.Token)
	require.NoError(t, err)

	mr.FastForward(40 * time.Second)
	_, err = store.Obtener(ctx, sesion.Token)
	require.NoError(t, err)
}

func TestCerrarSesion(t *testing.T) {
	store, _ := storeDePrueba(t, time.Hour)
	ctx := context.Background()

	sesion, err := store.Crear(ctx, empleadoDePrueba())
	require.NoError(t, err)

	require.NoError(t, store.Cerrar(ctx, sesion.Token))

	_, err = store.Obtener(ctx, sesion.Token)
	require.Error(t, err)

	// cerrar dos veces o con token vacío no es un error
	require.NoError(t, store.Cerrar(ctx, sesion.Token))
	require.NoError(t, store.Cerrar(ctx, ""))
}
