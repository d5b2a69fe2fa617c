package application

import (
	"fmt"
	"time"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"go.uber.org/zap"
)

// TipoEvento marca qué ocurre en un día del calendario.
type TipoEvento string

const (
	EventoEntrada    TipoEvento = "entrada"
	EventoSalida     TipoEvento = "salida"
	EventoAmbas      TipoEvento = "ambas"
	EventoCompletada TipoEvento = "completada"
	EventoPendiente  TipoEvento = "pendiente"
)

// Calendario es la vista mensual: eventos por día (YYYY-MM-DD) y las
// reservas visibles con movimiento en el mes.
type Calendario struct {
	Anho     int                       `json:"anho"`
	Mes      int                       `json:"mes"`
	Eventos  map[string]TipoEvento     `json:"eventos"`
	Reservas map[string][]ReservaVista `json:"reservas"`
}

type CalendarioService struct {
	reservaRepo    domain.ReservaRepository
	habitacionRepo domain.HabitacionRepository
	pricing        *PricingEngine
	log            *zap.Logger
}

// NewCalendarioService crea una nueva instancia del servicio de calendario
func NewCalendarioService(reservaRepo domain.ReservaRepository, habitacionRepo domain.HabitacionRepository, pricing *PricingEngine, log *zap.Logger) *CalendarioService {
	return &CalendarioService{
		reservaRepo:    reservaRepo,
		habitacionRepo: habitacionRepo,
		pricing:        pricing,
		log:            log,
	}
}

const fechaClave = "2006-01-02"

func enMes(fecha time.Time, anho int, mes time.Month) bool {
	return fecha.Year() == anho && fecha.Month() == mes
}

// Mes construye la vista de un mes para el rol indicado. Las pendientes
// solo aparecen para el jefe; el resto de roles ven confirmadas y
// completadas, y restaurante únicamente las estancias con alergias.
func (s *CalendarioService) Mes(rol domain.Rol, anho, mes int, hoy time.Time) (*Calendario, error) {
	if mes < 1 || mes > 12 {
		return nil, fmt.Errorf("mes inválido: %d", mes)
	}

	reservas, err := s.reservaRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas: %w", err)
	}
	catalogo, err := s.habitacionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}

	cal := &Calendario{
		Anho:     anho,
		Mes:      mes,
		Eventos:  make(map[string]TipoEvento),
		Reservas: make(map[string][]ReservaVista),
	}
	m := time.Month(mes)

	for i := range reservas {
		r := &reservas[i]
		if r.FechaEntradaInvalida || r.FechaSalidaInvalida {
			continue
		}

		estadoVisible := domain.DisplayStatus(r, hoy)
		esPendiente := estadoVisible == domain.ReservaPendiente

		if esPendiente {
			if rol != domain.RolJefe {
				continue
			}
		} else if !visiblePara(rol, r, estadoVisible) {
			continue
		}

		entradaEnMes := enMes(r.FechaEntrada, anho, m)
		salidaEnMes := enMes(r.FechaSalida, anho, m)
		if !entradaEnMes && !salidaEnMes {
			continue
		}

		vista := ReservaVista{
			Reserva:       *r,
			EstadoVisible: estadoVisible,
			Desglose:      s.pricing.CalcularDesglose(r, catalogo),
		}

		if entradaEnMes {
			clave := r.FechaEntrada.Format(fechaClave)
			cal.Eventos[clave] = combinarEvento(cal.Eventos[clave], eventoDeMovimiento(estadoVisible, EventoEntrada))
			cal.Reservas[clave] = append(cal.Reservas[clave], vista)
		}
		if salidaEnMes {
			clave := r.FechaSalida.Format(fechaClave)
			cal.Eventos[clave] = combinarEvento(cal.Eventos[clave], eventoDeMovimiento(estadoVisible, EventoSalida))
			if !entradaEnMes || !r.FechaEntrada.Equal(r.FechaSalida) {
				cal.Reservas[clave] = append(cal.Reservas[clave], vista)
			}
		}
	}

	return cal, nil
}

// eventoDeMovimiento traduce el movimiento (entrada o salida) al tipo del
// día según el estado visible de la reserva.
func eventoDeMovimiento(estado domain.EstadoReserva, movimiento TipoEvento) TipoEvento {
	switch estado {
	case domain.ReservaPendiente:
		return EventoPendiente
	case domain.ReservaCompletada:
		return EventoCompletada
	default:
		return movimiento
	}
}

// combinarEvento resuelve el tipo cuando varios movimientos caen en un
// mismo día: entrada + salida se marcan como ambas, y pendiente pierde
// frente a cualquier movimiento confirmado.
func combinarEvento(actual, nuevo TipoEvento) TipoEvento {
	if actual == "" || actual == nuevo {
		return nuevo
	}
	switch {
	case actual == EventoPendiente:
		return nuevo
	case nuevo == EventoPendiente:
		return actual
	case (actual == EventoEntrada && nuevo == EventoSalida) ||
		(actual == EventoSalida && nuevo == EventoEntrada):
		return EventoAmbas
	case actual == EventoAmbas || nuevo == EventoAmbas:
		return EventoAmbas
	case actual == EventoCompletada:
		return nuevo
	default:
		return actual
	}
}

// Dia devuelve las reservas visibles con entrada o salida en la fecha.
func (s *CalendarioService) Dia(rol domain.Rol, fecha time.Time, hoy time.Time) ([]ReservaVista, error) {
	cal, err := s.Mes(rol, fecha.Year(), int(fecha.Month()), hoy)
	if err != nil {
		return nil, err
	}
	return cal.Reservas[fecha.Format(fechaClave)], nil
}
