package scheduler

import (
	"time"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"go.uber.org/zap"
)

// ReservationScheduler ejecuta el barrido diario de reservas: refresca el
// listado del almacén y deja constancia de las estancias que han pasado a
// mostrarse como completadas. El estado Completada se deriva en lectura,
// así que el barrido no escribe nada.
type ReservationScheduler struct {
	reservaRepo domain.ReservaRepository
	ticker      *time.Ticker
	log         *zap.Logger
}

// NewReservationScheduler crea una nueva instancia del scheduler de reservas
func NewReservationScheduler(reservaRepo domain.ReservaRepository, log *zap.Logger) *ReservationScheduler {
	return &ReservationScheduler{
		reservaRepo: reservaRepo,
		log:         log,
	}
}

// Start inicia el scheduler, que se ejecuta cada 24 horas a las 00:01
func (s *ReservationScheduler) Start() {
	s.log.Info("scheduler de reservas iniciado")

	// Ejecutar inmediatamente al iniciar
	s.BarrerCompletadas()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	s.log.Info("próxima ejecución programada",
		zap.String("momento", nextRun.Format("2006-01-02 15:04:05")))

	time.AfterFunc(durationUntilNextRun, func() {
		s.BarrerCompletadas()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.BarrerCompletadas()
			}
		}()
	})
}

// Stop detiene el scheduler
func (s *ReservationScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.log.Info("scheduler de reservas detenido")
	}
}

// BarrerCompletadas relee las reservas y cuenta las confirmadas cuya fecha
// de salida ya pasó. La relectura además calienta la caché del día.
func (s *ReservationScheduler) BarrerCompletadas() {
	reservas, err := s.reservaRepo.GetAll()
	if err != nil {
		s.log.Error("error en el barrido de reservas completadas", zap.Error(err))
		return
	}

	hoy := time.Now()
	completadas := 0
	for i := range reservas {
		if domain.DisplayStatus(&reservas[i], hoy) == domain.ReservaCompletada {
			completadas++
		}
	}

	s.log.Info("barrido de reservas completadas",
		zap.Int("total", len(reservas)),
		zap.Int("completadas", completadas))
}
