package application

import (
	"fmt"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

// Reconciler mantiene la coherencia entre el contador de habitaciones de
// una reserva en edición y sus dos fuentes: las categorías web elegidas por
// el cliente y los huecos de asignación manual del personal. Las categorías
// son el pedido base del cliente y no se tocan salvo que no quede hueco
// manual que quitar.
type Reconciler struct {
	disponibilidad *AvailabilityChecker
}

// NewReconciler crea el reconciliador de asignaciones.
func NewReconciler(disponibilidad *AvailabilityChecker) *Reconciler {
	return &Reconciler{disponibilidad: disponibilidad}
}

// SincronizarContador recalcula el contador de habitaciones a partir de las
// dos fuentes. Invariante: numeroHabitaciones == suma de cantidades de
// categorías + número de huecos manuales.
func (rc *Reconciler) SincronizarContador(r *domain.Reserva) {
	n := len(r.HabitacionesManual)
	for _, c := range r.CategoriasWeb {
		n += c.Cantidad
	}
	if n < 1 {
		n = 1
	}
	r.NumeroHabitaciones = n
}

// IncrementarHabitaciones añade un hueco manual vacío.
func (rc *Reconciler) IncrementarHabitaciones(r *domain.Reserva) {
	r.HabitacionesManual = append(r.HabitacionesManual, "")
	rc.SincronizarContador(r)
}

// DecrementarHabitaciones quita la última habitación: primero se vacían los
// huecos manuales; solo cuando no queda ninguno se descuenta la última
// categoría web (eliminándola si llega a cero). Con una sola habitación en
// total la operación no hace nada.
func (rc *Reconciler) DecrementarHabitaciones(r *domain.Reserva) {
	if r.NumeroHabitaciones <= 1 {
		return
	}

	if len(r.HabitacionesManual) > 0 {
		r.HabitacionesManual = r.HabitacionesManual[:len(r.HabitacionesManual)-1]
		rc.SincronizarContador(r)
		return
	}

	if len(r.CategoriasWeb) > 0 {
		last := len(r.CategoriasWeb) - 1
		r.CategoriasWeb[last].Cantidad--
		if r.CategoriasWeb[last].Cantidad <= 0 {
			r.CategoriasWeb = r.CategoriasWeb[:last]
		}
	}
	rc.SincronizarContador(r)
}

// OpcionesParaHueco devuelve los números de habitación seleccionables para
// un hueco manual: las libres en el rango de la reserva, más la que el
// propio hueco ya tiene asignada, menos las asignadas a cualquier otro
// hueco del mismo formulario.
func (rc *Reconciler) OpcionesParaHueco(r *domain.Reserva, hueco int, catalogo []domain.Habitacion, reservas []domain.Reserva) []string {
	if hueco < 0 || hueco >= len(r.HabitacionesManual) {
		return nil
	}

	actual := r.HabitacionesManual[hueco]

	ocupadasEnFormulario := make(map[string]bool, len(r.HabitacionesManual))
	for i, h := range r.HabitacionesManual {
		if i != hueco && h != "" {
			ocupadasEnFormulario[h] = true
		}
	}

	libres := rc.disponibilidad.HabitacionesLibres(catalogo, r.FechaEntrada, r.FechaSalida, r.ID, reservas)

	opciones := make([]string, 0, len(libres)+1)
	vistas := make(map[string]bool, len(libres)+1)
	for _, numero := range libres {
		if ocupadasEnFormulario[numero] || vistas[numero] {
			continue
		}
		opciones = append(opciones, numero)
		vistas[numero] = true
	}
	// la habitación ya asignada al hueco sigue siendo visible aunque el
	// rango la marque como ocupada (la ocupa esta misma reserva)
	if actual != "" && !vistas[actual] {
		opciones = append(opciones, actual)
	}
	return opciones
}

// AsignarHueco fija la habitación de un hueco manual, rechazando números ya
// asignados a otro hueco del mismo formulario.
func (rc *Reconciler) AsignarHueco(r *domain.Reserva, hueco int, numero string) error {
	if hueco < 0 || hueco >= len(r.HabitacionesManual) {
		return fmt.Errorf("hueco de asignación %d fuera de rango", hueco)
	}
	if numero != "" {
		for i, h := range r.HabitacionesManual {
			if i != hueco && h == numero {
				return fmt.Errorf("la habitación %s ya está asignada en esta reserva", numero)
			}
		}
	}
	r.HabitacionesManual[hueco] = numero
	return nil
}

// CambioDeFechas revalida los huecos manuales tras cambiar el rango de la
// reserva: las habitaciones que dejan de estar libres en el nuevo rango se
// desasignan (el hueco queda vacío, no se elimina).
func (rc *Reconciler) CambioDeFechas(r *domain.Reserva, reservas []domain.Reserva) {
	for i, numero := range r.HabitacionesManual {
		if numero == "" {
			continue
		}
		if !rc.disponibilidad.Disponible(numero, r.FechaEntrada, r.FechaSalida, r.ID, reservas) {
			r.HabitacionesManual[i] = ""
		}
	}
}

// CambioDeCategorias se llama cuando el cliente cambia su selección de
// categorías web: resincroniza el contador respetando los huecos manuales.
func (rc *Reconciler) CambioDeCategorias(r *domain.Reserva, categorias []domain.CategoriaWeb) {
	r.CategoriasWeb = categorias
	rc.SincronizarContador(r)
}
