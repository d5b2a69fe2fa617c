package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/email"
	"go.uber.org/zap"
)

// ReservaVista es una reserva lista para presentar: incluye el estado
// visible derivado y el desglose de precio calculado.
type ReservaVista struct {
	domain.Reserva
	EstadoVisible domain.EstadoReserva `json:"estadoVisible"`
	Desglose      Desglose             `json:"desglose"`
}

// ResultadoGuardado es el resultado de guardar una reserva: la reserva
// persistida más los avisos no bloqueantes detectados (conflictos de
// disponibilidad, datos defectuosos).
type ResultadoGuardado struct {
	Reserva *domain.Reserva `json:"reserva"`
	Avisos  []string        `json:"avisos,omitempty"`
}

// ErroresValidacion agrupa los errores de campo que bloquean el guardado.
type ErroresValidacion struct {
	Campos    map[string]string         `json:"campos,omitempty"`
	Pasajeros map[int]map[string]string `json:"pasajeros,omitempty"`
}

func (e *ErroresValidacion) vacio() bool {
	return len(e.Campos) == 0 && len(e.Pasajeros) == 0
}

func (e *ErroresValidacion) Error() string {
	return fmt.Sprintf("la reserva tiene %d errores de validación", len(e.Campos)+len(e.Pasajeros))
}

type ReservaService struct {
	reservaRepo    domain.ReservaRepository
	habitacionRepo domain.HabitacionRepository
	pricing        *PricingEngine
	disponibilidad *AvailabilityChecker
	reconciler     *Reconciler
	roster         *RosterManager
	notificaciones *NotificationService
	emailClient    *email.Client
	log            *zap.Logger
}

// NewReservaService crea una nueva instancia del servicio de reservas
func NewReservaService(
	reservaRepo domain.ReservaRepository,
	habitacionRepo domain.HabitacionRepository,
	pricing *PricingEngine,
	disponibilidad *AvailabilityChecker,
	reconciler *Reconciler,
	roster *RosterManager,
	notificaciones *NotificationService,
	emailClient *email.Client,
	log *zap.Logger,
) *ReservaService {
	return &ReservaService{
		reservaRepo:    reservaRepo,
		habitacionRepo: habitacionRepo,
		pricing:        pricing,
		disponibilidad: disponibilidad,
		reconciler:     reconciler,
		roster:         roster,
		notificaciones: notificaciones,
		emailClient:    emailClient,
		log:            log,
	}
}

// visiblePara aplica la visibilidad por rol: el jefe lo ve todo; recepción,
// limpieza y mantenimiento solo ven confirmadas y completadas; restaurante
// solo ve estancias con alergias.
func visiblePara(rol domain.Rol, r *domain.Reserva, estadoVisible domain.EstadoReserva) bool {
	switch rol {
	case domain.RolJefe:
		return true
	case domain.RolRestaurante:
		return (estadoVisible == domain.ReservaConfirmada || estadoVisible == domain.ReservaCompletada) && r.TieneAlergias()
	default:
		return estadoVisible == domain.ReservaConfirmada || estadoVisible == domain.ReservaCompletada
	}
}

// Listar devuelve las reservas visibles para el rol, filtradas por término
// de búsqueda (titular o número) y por estado visible.
func (s *ReservaService) Listar(rol domain.Rol, termino, filtroEstado string, hoy time.Time) ([]ReservaVista, error) {
	reservas, err := s.reservaRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas: %w", err)
	}

	catalogo, err := s.habitacionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}

	termino = strings.ToLower(strings.TrimSpace(termino))
	out := make([]ReservaVista, 0, len(reservas))
	for i := range reservas {
		r := &reservas[i]
		estadoVisible := domain.DisplayStatus(r, hoy)

		if !visiblePara(rol, r, estadoVisible) {
			continue
		}
		if filtroEstado != "" && filtroEstado != "Todos" && string(estadoVisible) != filtroEstado {
			continue
		}
		if termino != "" {
			enTitular := strings.Contains(strings.ToLower(r.Titular), termino)
			enNumero := strings.Contains(strings.ToLower(r.Numero), termino)
			if !enTitular && !enNumero {
				continue
			}
		}

		out = append(out, ReservaVista{
			Reserva:       *r,
			EstadoVisible: estadoVisible,
			Desglose:      s.pricing.CalcularDesglose(r, catalogo),
		})
	}
	return out, nil
}

// GetByID obtiene una reserva con estado visible y desglose.
func (s *ReservaService) GetByID(id string, hoy time.Time) (*ReservaVista, error) {
	r, err := s.reservaRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}
	catalogo, err := s.habitacionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}
	return &ReservaVista{
		Reserva:       *r,
		EstadoVisible: domain.DisplayStatus(r, hoy),
		Desglose:      s.pricing.CalcularDesglose(r, catalogo),
	}, nil
}

// validar comprueba los campos obligatorios de la reserva y su listado de
// pasajeros. Los fallos bloquean el guardado sin tocar el almacén.
func (s *ReservaService) validar(r *domain.Reserva) *ErroresValidacion {
	errores := &ErroresValidacion{Campos: make(map[string]string)}

	if strings.TrimSpace(r.Titular) == "" {
		errores.Campos["titular"] = "el titular es requerido"
	}
	if r.FechaEntradaInvalida || r.FechaEntrada.IsZero() {
		errores.Campos["fechaEntrada"] = "la fecha de entrada es requerida"
	}
	if r.FechaSalidaInvalida || r.FechaSalida.IsZero() {
		errores.Campos["fechaSalida"] = "la fecha de salida es requerida"
	}
	if r.Adultos < 1 {
		errores.Campos["adultos"] = "debe haber al menos un adulto"
	}
	if r.Ninhos < 0 {
		errores.Campos["ninos"] = "el número de niños no puede ser negativo"
	}

	if p := s.roster.ValidarTodos(r); len(p) > 0 {
		errores.Pasajeros = p
	}

	if errores.vacio() {
		return nil
	}
	return errores
}

// preparar sincroniza los invariantes del borrador antes de persistir:
// contador de habitaciones, titular <-> pasajero titular, estado por
// defecto y total calculado si se pide.
func (s *ReservaService) preparar(r *domain.Reserva, actualizarTotal bool) ([]string, error) {
	s.reconciler.SincronizarContador(r)
	s.roster.SincronizarTitular(r, false)

	if r.Estado == "" {
		r.Estado = domain.ReservaPendiente
	}
	if r.Estado == domain.ReservaCompletada {
		// Completada se deriva en lectura, nunca se guarda
		r.Estado = domain.ReservaConfirmada
	}

	var avisos []string

	reservas, err := s.reservaRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas: %w", err)
	}
	catalogo, err := s.habitacionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}

	// La comprobación de solapes es consultiva: avisa pero no bloquea,
	// el almacén no ofrece escritura condicional con la que impedirlo.
	for _, numero := range r.HabitacionesAsignadas() {
		if !s.disponibilidad.Disponible(numero, r.FechaEntrada, r.FechaSalida, r.ID, reservas) {
			avisos = append(avisos, fmt.Sprintf("la habitación %s ya está reservada en esas fechas", numero))
		}
		if buscarPorNumero(catalogo, numero) == nil {
			avisos = append(avisos, fmt.Sprintf("la habitación %s no existe en el catálogo", numero))
		}
	}

	if actualizarTotal {
		d := s.pricing.CalcularDesglose(r, catalogo)
		r.PrecioTotal = d.Total
	}

	return avisos, nil
}

// Crear valida, prepara y persiste una reserva nueva.
func (s *ReservaService) Crear(r *domain.Reserva, actualizarTotal bool, rol domain.Rol) (*ResultadoGuardado, error) {
	if errores := s.validar(r); errores != nil {
		return nil, errores
	}

	avisos, err := s.preparar(r, actualizarTotal)
	if err != nil {
		return nil, err
	}

	if err := s.reservaRepo.Create(r); err != nil {
		return nil, fmt.Errorf("error al crear reserva: %w", err)
	}

	s.log.Info("reserva creada",
		zap.String("id", r.ID),
		zap.String("titular", r.Titular),
		zap.Int("habitaciones", r.NumeroHabitaciones))
	s.notificaciones.Notificar(rol, "reservas", fmt.Sprintf("ha creado la reserva %s de %s", r.Numero, r.Titular))

	return &ResultadoGuardado{Reserva: r, Avisos: avisos}, nil
}

// Editar valida, prepara y sustituye una reserva existente (edición
// completa desde el modal).
func (s *ReservaService) Editar(id string, r *domain.Reserva, actualizarTotal bool, rol domain.Rol) (*ResultadoGuardado, error) {
	r.ID = id
	if errores := s.validar(r); errores != nil {
		return nil, errores
	}

	avisos, err := s.preparar(r, actualizarTotal)
	if err != nil {
		return nil, err
	}

	if err := s.reservaRepo.Replace(id, r); err != nil {
		return nil, fmt.Errorf("error al editar reserva: %w", err)
	}

	s.notificaciones.Notificar(rol, "reservas", fmt.Sprintf("ha editado la reserva %s", r.Numero))

	return &ResultadoGuardado{Reserva: r, Avisos: avisos}, nil
}

// CambiarEstado actualiza solo el estado (botones confirmar/denegar/
// cancelar). Completada no es un estado persistible.
func (s *ReservaService) CambiarEstado(id string, estado domain.EstadoReserva, rol domain.Rol) error {
	switch estado {
	case domain.ReservaPendiente, domain.ReservaConfirmada, domain.ReservaDenegada,
		domain.ReservaCanceladaCliente, domain.ReservaCanceladaHotel:
		// estados persistibles
	default:
		return fmt.Errorf("estado de reserva inválido: %s", estado)
	}

	if err := s.reservaRepo.UpdateEstado(id, estado); err != nil {
		return fmt.Errorf("error al actualizar estado: %w", err)
	}

	reserva, err := s.reservaRepo.GetByID(id)
	if err != nil {
		s.log.Warn("estado actualizado pero no se pudo releer la reserva",
			zap.String("id", id), zap.Error(err))
		return nil
	}

	s.notificaciones.Notificar(rol, "reservas",
		fmt.Sprintf("ha cambiado la reserva %s a %s", reserva.Numero, estado))

	if estado == domain.ReservaConfirmada {
		s.enviarEmailConfirmacion(reserva)
	}
	return nil
}

// Eliminar borra la reserva del almacén.
func (s *ReservaService) Eliminar(id string, rol domain.Rol) error {
	if err := s.reservaRepo.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar reserva: %w", err)
	}
	s.notificaciones.Notificar(rol, "reservas", fmt.Sprintf("ha borrado la reserva %s", id))
	return nil
}

// Presupuesto calcula el desglose de un borrador sin persistir nada. Se
// llama en cada edición de campo del modal.
func (s *ReservaService) Presupuesto(r *domain.Reserva) (*Desglose, error) {
	catalogo, err := s.habitacionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}
	d := s.pricing.CalcularDesglose(r, catalogo)
	return &d, nil
}

// OpcionesDeAsignacion devuelve, para cada hueco manual del borrador, las
// habitaciones seleccionables en su rango de fechas.
func (s *ReservaService) OpcionesDeAsignacion(r *domain.Reserva) ([][]string, error) {
	reservas, err := s.reservaRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas: %w", err)
	}
	catalogo, err := s.habitacionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}

	opciones := make([][]string, len(r.HabitacionesManual))
	for i := range r.HabitacionesManual {
		opciones[i] = s.reconciler.OpcionesParaHueco(r, i, catalogo, reservas)
	}
	return opciones, nil
}

// enviarEmailConfirmacion envía el email de confirmación al titular si hay
// cliente SMTP configurado y la reserva tiene email del titular.
func (s *ReservaService) enviarEmailConfirmacion(r *domain.Reserva) {
	if s.emailClient == nil {
		return
	}

	var destinatario string
	for _, p := range r.Pasajeros {
		if p.Titular && p.Email != "" {
			destinatario = p.Email
			break
		}
	}
	if destinatario == "" {
		return
	}

	info := email.ReservaInfo{
		Numero:       r.Numero,
		TitularEmail: destinatario,
		Titular:      r.Titular,
		Adultos:      r.Adultos,
		Ninhos:       r.Ninhos,
		FechaEntrada: r.FechaEntrada,
		FechaSalida:  r.FechaSalida,
		Noches:       s.pricing.Noches(r.FechaEntrada, r.FechaSalida, r.FechaEntradaInvalida, r.FechaSalidaInvalida),
		Pension:      r.Pension,
		Habitaciones: r.ListaHabitacion(),
		Total:        r.PrecioTotal,
	}

	if err := s.emailClient.SendReservaConfirmacion(info); err != nil {
		// el estado ya se cambió, el fallo de email no revierte nada
		s.log.Warn("error al enviar email de confirmación",
			zap.String("reserva", r.ID), zap.Error(err))
	}
}
