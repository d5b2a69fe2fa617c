package application

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"go.uber.org/zap"
)

// TiposHabitacion son las categorías ofertadas, en el orden del selector.
var TiposHabitacion = []string{"Individual", "Doble", "Doble individual", "Triple", "Suite", "Familiar"}

// PlantasHotel son las plantas del edificio.
var PlantasHotel = []string{"Baja", "Primera", "Segunda", "Tercera", "Cuarta"}

// ExtrasDisponibles son los extras marcables al editar una habitación.
var ExtrasDisponibles = []string{
	"Wifi",
	"Aire acondicionado",
	"TV",
	"Minibar",
	"Caja fuerte",
	"Terraza",
	"Vistas al mar",
	"Jacuzzi",
	"Cuna disponible",
	"Accesible",
}

// FiltroHabitaciones son los criterios de listado del catálogo.
type FiltroHabitaciones struct {
	Termino string
	Tipo    string
	Planta  string
	Estado  string
}

type HabitacionService struct {
	repo           domain.HabitacionRepository
	notificaciones *NotificationService
	log            *zap.Logger
}

// NewHabitacionService crea una nueva instancia del servicio de habitaciones
func NewHabitacionService(repo domain.HabitacionRepository, notificaciones *NotificationService, log *zap.Logger) *HabitacionService {
	return &HabitacionService{repo: repo, notificaciones: notificaciones, log: log}
}

// Listar devuelve el catálogo filtrado y ordenado por número de habitación.
func (s *HabitacionService) Listar(f FiltroHabitaciones) ([]domain.Habitacion, error) {
	habitaciones, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}

	termino := strings.ToLower(strings.TrimSpace(f.Termino))
	out := make([]domain.Habitacion, 0, len(habitaciones))
	for _, h := range habitaciones {
		if f.Tipo != "" && f.Tipo != "Todos" && h.Tipo != f.Tipo {
			continue
		}
		if f.Planta != "" && f.Planta != "Todas" && h.Planta != f.Planta {
			continue
		}
		if f.Estado != "" && f.Estado != "Todos" && string(h.Estado) != f.Estado {
			continue
		}
		if termino != "" {
			enNumero := strings.Contains(strings.ToLower(h.Numero), termino)
			enTitulo := strings.Contains(strings.ToLower(h.Titulo), termino)
			if !enNumero && !enTitulo {
				continue
			}
		}
		out = append(out, h)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out, nil
}

// GetByID obtiene una habitación por su identificador.
func (s *HabitacionService) GetByID(id string) (*domain.Habitacion, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitación: %w", err)
	}
	return h, nil
}

func (s *HabitacionService) validar(h *domain.Habitacion) error {
	if strings.TrimSpace(h.Numero) == "" {
		return fmt.Errorf("el número de habitación es requerido")
	}
	if h.Precio < 0 {
		return fmt.Errorf("el precio no puede ser negativo")
	}
	if h.Tipo != "" {
		valido := false
		for _, t := range TiposHabitacion {
			if h.Tipo == t {
				valido = true
				break
			}
		}
		if !valido {
			return fmt.Errorf("tipo de habitación inválido: %s", h.Tipo)
		}
	}
	return nil
}

// Crear valida y persiste una habitación nueva. El número debe ser único
// dentro del catálogo.
func (s *HabitacionService) Crear(h *domain.Habitacion, rol domain.Rol) error {
	if err := s.validar(h); err != nil {
		return err
	}

	existentes, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("error al obtener habitaciones: %w", err)
	}
	for i := range existentes {
		if existentes[i].Numero == h.Numero {
			return fmt.Errorf("ya existe una habitación con número %s", h.Numero)
		}
	}

	if h.Estado == "" {
		h.Estado = domain.HabitacionLibre
	}

	if err := s.repo.Create(h); err != nil {
		return fmt.Errorf("error al crear habitación: %w", err)
	}

	s.log.Info("habitación creada", zap.String("numero", h.Numero), zap.String("tipo", h.Tipo))
	s.notificaciones.Notificar(rol, "habitaciones", fmt.Sprintf("ha añadido la habitación %s", h.Numero))
	return nil
}

// Editar valida y sustituye una habitación existente.
func (s *HabitacionService) Editar(id string, h *domain.Habitacion, rol domain.Rol) error {
	if err := s.validar(h); err != nil {
		return err
	}
	h.ID = id

	if err := s.repo.Replace(id, h); err != nil {
		return fmt.Errorf("error al editar habitación: %w", err)
	}

	s.notificaciones.Notificar(rol, "habitaciones", fmt.Sprintf("ha editado la habitación %s", h.Numero))
	return nil
}

// CambiarEstado actualiza solo el estado operativo (libre, ocupada,
// limpieza, mantenimiento, reservada).
func (s *HabitacionService) CambiarEstado(id string, estado domain.EstadoHabitacion, rol domain.Rol) error {
	switch estado {
	case domain.HabitacionLibre, domain.HabitacionOcupada, domain.HabitacionLimpieza,
		domain.HabitacionMantenimiento, domain.HabitacionReservada:
	default:
		return fmt.Errorf("estado de habitación inválido: %s", estado)
	}

	if err := s.repo.UpdateEstado(id, estado); err != nil {
		return fmt.Errorf("error al actualizar estado de habitación: %w", err)
	}

	h, err := s.repo.GetByID(id)
	numero := id
	if err == nil {
		numero = h.Numero
	}
	s.notificaciones.Notificar(rol, "habitaciones",
		fmt.Sprintf("ha marcado la habitación %s como %s", numero, estado))
	return nil
}

// CambiarPrecio actualiza el precio por noche conservando el anterior como
// precio tachado.
func (s *HabitacionService) CambiarPrecio(id string, precio float64, rol domain.Rol) error {
	if precio < 0 {
		return fmt.Errorf("el precio no puede ser negativo")
	}

	h, err := s.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al obtener habitación: %w", err)
	}

	if err := s.repo.UpdatePrecio(id, precio, h.Precio); err != nil {
		return fmt.Errorf("error al actualizar precio: %w", err)
	}

	s.notificaciones.Notificar(rol, "habitaciones",
		fmt.Sprintf("ha cambiado el precio de la habitación %s a %.2f €", h.Numero, precio))
	return nil
}

// Eliminar borra la habitación del catálogo.
func (s *HabitacionService) Eliminar(id string, rol domain.Rol) error {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al obtener habitación: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar habitación: %w", err)
	}
	s.notificaciones.Notificar(rol, "habitaciones", fmt.Sprintf("ha borrado la habitación %s", h.Numero))
	return nil
}
