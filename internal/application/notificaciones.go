package application

import (
	"sync"
	"time"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

// Notificacion es un aviso de cambio hecho por un rol, visible para el
// resto del equipo.
type Notificacion struct {
	Rol       domain.Rol `json:"rol"`
	Etiqueta  string     `json:"etiqueta"`
	Area      string     `json:"area"`
	Mensaje   string     `json:"mensaje"`
	Timestamp time.Time  `json:"timestamp"`
}

// NotificationService mantiene un historial en memoria de avisos de cambio.
// Los cambios hechos por el jefe no generan aviso.
type NotificationService struct {
	notificaciones []Notificacion
	mu             sync.RWMutex
	max            int
}

// NewNotificationService crea el servicio de notificaciones.
func NewNotificationService() *NotificationService {
	return &NotificationService{max: 200}
}

// Notificar registra un aviso de un rol sobre un área ("habitaciones",
// "reservas"...). Si el cambio lo hizo el jefe no se notifica.
func (s *NotificationService) Notificar(rol domain.Rol, area, mensaje string) {
	if rol == domain.RolJefe {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := Notificacion{
		Rol:       rol,
		Etiqueta:  domain.EtiquetaRol(rol),
		Area:      area,
		Mensaje:   mensaje,
		Timestamp: time.Now(),
	}
	// las más recientes primero
	s.notificaciones = append([]Notificacion{n}, s.notificaciones...)
	if len(s.notificaciones) > s.max {
		s.notificaciones = s.notificaciones[:s.max]
	}
}

// Listar devuelve el historial de avisos, el más reciente primero.
func (s *NotificationService) Listar() []Notificacion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notificacion, len(s.notificaciones))
	copy(out, s.notificaciones)
	return out
}

// Clear vacía el historial.
func (s *NotificationService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificaciones = nil
}
