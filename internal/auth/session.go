package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

const prefijoSesion = "sesion:"

// Sesion es la identidad autenticada que viaja con cada petición.
type Sesion struct {
	Token      string     `json:"token"`
	EmpleadoID string     `json:"empleadoId"`
	Usuario    string     `json:"usuario"`
	Nombre     string     `json:"nombre"`
	Rol        domain.Rol `json:"rol"`
	CreadaEn   time.Time  `json:"creadaEn"`
}

// SessionStore guarda las sesiones en Redis con expiración.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore crea el almacén de sesiones.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Crear abre una sesión para el empleado y devuelve el token.
func (s *SessionStore) Crear(ctx context.Context, e *domain.Empleado) (*Sesion, error) {
	sesion := &Sesion{
		Token:      uuid.New().String(),
		EmpleadoID: e.ID,
		Usuario:    e.Usuario,
		Nombre:     e.Nombre + " " + e.Apellidos,
		Rol:        e.Rol,
		CreadaEn:   time.Now(),
	}

	data, err := json.Marshal(sesion)
	if err != nil {
		return nil, fmt.Errorf("error al serializar sesión: %w", err)
	}

	if err := s.client.Set(ctx, prefijoSesion+sesion.Token, data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("error al guardar sesión: %w", err)
	}
	return sesion, nil
}

// Obtener resuelve un token a su sesión y renueva la expiración.
func (s *SessionStore) Obtener(ctx context.Context, token string) (*Sesion, error) {
	if token == "" {
		return nil, fmt.Errorf("token vacío")
	}

	data, err := s.client.Get(ctx, prefijoSesion+token).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("sesión no encontrada o expirada")
	}
	if err != nil {
		return nil, fmt.Errorf("error al leer sesión: %w", err)
	}

	var sesion Sesion
	if err := json.Unmarshal(data, &sesion); err != nil {
		return nil, fmt.Errorf("error al deserializar sesión: %w", err)
	}

	// expiración deslizante mientras haya actividad
	_ = s.client.Expire(ctx, prefijoSesion+token, s.ttl).Err()

	return &sesion, nil
}

// Cerrar elimina la sesión del token. Cerrar un token inexistente no es
// un error.
func (s *SessionStore) Cerrar(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, prefijoSesion+token).Err(); err != nil {
		return fmt.Errorf("error al cerrar sesión: %w", err)
	}
	return nil
}
