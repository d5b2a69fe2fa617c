package application

import (
	"math"
	"strings"
	"time"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

// TarifasPension son las tarifas de pensión por huésped y noche.
type TarifasPension struct {
	Desayuno     float64
	Media        float64
	Completa     float64
	TodoIncluido float64
}

// TarifasPorDefecto devuelve la tabla de tarifas estándar del hotel.
func TarifasPorDefecto() TarifasPension {
	return TarifasPension{
		Desayuno:     8,
		Media:        18,
		Completa:     30,
		TodoIncluido: 50,
	}
}

// LineaDesglose es una línea del desglose de precio de habitaciones.
type LineaDesglose struct {
	Concepto       string  `json:"concepto"`
	Cantidad       int     `json:"cantidad"`
	Noches         int     `json:"noches"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Importe        float64 `json:"importe"`
	// SinPrecio marca habitaciones asignadas que no aparecen en el
	// catálogo: se muestran a 0 en vez de fallar.
	SinPrecio bool `json:"sinPrecio,omitempty"`
}

// Desglose es el resultado completo del cálculo de precio de una reserva.
type Desglose struct {
	Noches            int             `json:"noches"`
	Huespedes         int             `json:"huespedes"`
	PensionPorNoche   float64         `json:"pensionPorNoche"`
	PensionTotal      float64         `json:"pensionTotal"`
	Lineas            []LineaDesglose `json:"lineas"`
	TotalHabitaciones float64         `json:"totalHabitaciones"`
	Total             float64         `json:"total"`
}

// PricingEngine calcula el desglose de precio de una reserva. Es una
// función pura del estado de la reserva y del catálogo: llamarlo dos veces
// sin cambios produce el mismo desglose.
type PricingEngine struct {
	tarifas TarifasPension
}

// NewPricingEngine crea el motor de precios con la tabla de tarifas dada.
func NewPricingEngine(tarifas TarifasPension) *PricingEngine {
	return &PricingEngine{tarifas: tarifas}
}

// Noches calcula las noches de estancia: días completos entre entrada y
// salida, redondeando hacia arriba, con suelo de 1 aunque las fechas sean
// iguales, estén invertidas o no se hayan podido parsear.
func (e *PricingEngine) Noches(entrada, salida time.Time, entradaInvalida, salidaInvalida bool) int {
	if entradaInvalida || salidaInvalida || entrada.IsZero() || salida.IsZero() {
		return 1
	}
	noches := int(math.Ceil(salida.Sub(entrada).Hours() / 24))
	if noches < 1 {
		noches = 1
	}
	return noches
}

// TarifaPension devuelve la tarifa por huésped y noche para un plan de
// pensión. El nombre se compara por fragmento normalizado porque los
// canales de reserva no escriben los planes igual ("Media Pensión",
// "media pension", "MP - Media").
func (e *PricingEngine) TarifaPension(nombre string) float64 {
	s := strings.ToLower(nombre)
	switch {
	case strings.Contains(s, "todo"):
		return e.tarifas.TodoIncluido
	case strings.Contains(s, "completa"):
		return e.tarifas.Completa
	case strings.Contains(s, "media"):
		return e.tarifas.Media
	case strings.Contains(s, "desayuno"):
		return e.tarifas.Desayuno
	default:
		return 0
	}
}

// CalcularDesglose calcula el desglose completo de la reserva contra el
// catálogo de habitaciones físicas. No modifica la reserva: el que llama
// decide si el total calculado sustituye al almacenado o solo se muestra.
func (e *PricingEngine) CalcularDesglose(r *domain.Reserva, catalogo []domain.Habitacion) Desglose {
	noches := e.Noches(r.FechaEntrada, r.FechaSalida, r.FechaEntradaInvalida, r.FechaSalidaInvalida)

	adultos := r.Adultos
	if adultos < 0 {
		adultos = 0
	}
	ninhos := r.Ninhos
	if ninhos < 0 {
		ninhos = 0
	}
	huespedes := adultos + ninhos

	porNoche := e.TarifaPension(r.Pension)
	pensionTotal := porNoche * float64(huespedes) * float64(noches)

	d := Desglose{
		Noches:          noches,
		Huespedes:       huespedes,
		PensionPorNoche: porNoche,
		PensionTotal:    pensionTotal,
	}

	// Fuente (a): categorías elegidas por el canal web
	for _, c := range r.CategoriasWeb {
		importe := c.Precio * float64(c.Cantidad) * float64(noches)
		d.Lineas = append(d.Lineas, LineaDesglose{
			Concepto:       c.Tipo,
			Cantidad:       c.Cantidad,
			Noches:         noches,
			PrecioUnitario: c.Precio,
			Importe:        importe,
		})
		d.TotalHabitaciones += importe
	}

	// Fuente (b): habitaciones físicas asignadas a mano
	for _, numero := range r.HabitacionesAsignadas() {
		hab := buscarPorNumero(catalogo, numero)
		if hab == nil {
			d.Lineas = append(d.Lineas, LineaDesglose{
				Concepto:  "Habitación " + numero,
				Cantidad:  1,
				Noches:    noches,
				SinPrecio: true,
			})
			continue
		}
		importe := hab.Precio * float64(noches)
		d.Lineas = append(d.Lineas, LineaDesglose{
			Concepto:       "Habitación " + numero,
			Cantidad:       1,
			Noches:         noches,
			PrecioUnitario: hab.Precio,
			Importe:        importe,
		})
		d.TotalHabitaciones += importe
	}

	// Reserva heredada sin desglose: inferir la base de habitación a partir
	// del total guardado, restando la pensión calculada.
	if d.TotalHabitaciones <= 0 && r.PrecioTotal > 0 {
		base := r.PrecioTotal - pensionTotal
		if base < 0 {
			base = 0
		}
		d.Lineas = append(d.Lineas, LineaDesglose{
			Concepto: "Habitación (importe almacenado)",
			Cantidad: 1,
			Noches:   noches,
			Importe:  base,
		})
		d.TotalHabitaciones = base
	}

	d.Total = d.TotalHabitaciones + d.PensionTotal
	return d
}

func buscarPorNumero(catalogo []domain.Habitacion, numero string) *domain.Habitacion {
	for i := range catalogo {
		if catalogo[i].Numero == numero {
			return &catalogo[i]
		}
	}
	return nil
}
