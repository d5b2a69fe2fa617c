package application

import (
	"fmt"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

// RosterManager mantiene el listado de pasajeros de una reserva acotado por
// los contadores de adultos y niños, con exactamente un pasajero titular
// sincronizado con el nombre del huésped de la reserva.
type RosterManager struct {
	validator *Validator
}

// NewRosterManager crea el gestor de pasajeros.
func NewRosterManager() *RosterManager {
	return &RosterManager{validator: &Validator{}}
}

// Agregar añade un pasajero vacío si queda cupo. Los nuevos pasajeros son
// adultos por defecto; si el cupo de adultos está lleno y el de niños no,
// entran como niño.
func (m *RosterManager) Agregar(r *domain.Reserva) error {
	capacidad := r.Adultos + r.Ninhos
	if len(r.Pasajeros) >= capacidad {
		return fmt.Errorf("ya hay %d pasajeros para %d plazas", len(r.Pasajeros), capacidad)
	}

	adultos, ninhos := m.contar(r)
	tipo := domain.PasajeroAdulto
	if adultos >= r.Adultos && ninhos < r.Ninhos {
		tipo = domain.PasajeroNinho
	}

	p := domain.Pasajero{Tipo: tipo}
	// el primer pasajero es el titular y hereda el nombre de la reserva
	if len(r.Pasajeros) == 0 {
		p.Titular = true
		p.Nombre = r.Titular
	}
	r.Pasajeros = append(r.Pasajeros, p)
	return nil
}

// Quitar elimina el pasajero en la posición dada y descuenta el contador
// correspondiente: niños con suelo 0, adultos con suelo 1.
func (m *RosterManager) Quitar(r *domain.Reserva, idx int) error {
	if idx < 0 || idx >= len(r.Pasajeros) {
		return fmt.Errorf("índice de pasajero %d fuera de rango", idx)
	}

	p := r.Pasajeros[idx]
	r.Pasajeros = append(r.Pasajeros[:idx], r.Pasajeros[idx+1:]...)

	if p.Tipo == domain.PasajeroNinho {
		if r.Ninhos > 0 {
			r.Ninhos--
		}
	} else {
		if r.Adultos > 1 {
			r.Adultos--
		}
	}

	// si se ha borrado el titular, el primero que quede pasa a serlo
	if p.Titular && len(r.Pasajeros) > 0 {
		r.Pasajeros[0].Titular = true
		r.Titular = r.Pasajeros[0].Nombre
	}
	return nil
}

// MarcarTitular marca el pasajero dado como titular, desmarcando el resto,
// y sincroniza el nombre del huésped de la reserva.
func (m *RosterManager) MarcarTitular(r *domain.Reserva, idx int) error {
	if idx < 0 || idx >= len(r.Pasajeros) {
		return fmt.Errorf("índice de pasajero %d fuera de rango", idx)
	}
	for i := range r.Pasajeros {
		r.Pasajeros[i].Titular = i == idx
	}
	r.Titular = r.Pasajeros[idx].Nombre
	return nil
}

// SincronizarTitular propaga un cambio de nombre en cualquiera de los dos
// extremos: si se editó el pasajero titular, la reserva toma su nombre; si
// se editó el nombre de la reserva, lo toma el pasajero titular.
func (m *RosterManager) SincronizarTitular(r *domain.Reserva, desdePasajero bool) {
	for i := range r.Pasajeros {
		if !r.Pasajeros[i].Titular {
			continue
		}
		if desdePasajero {
			r.Titular = r.Pasajeros[i].Nombre
		} else {
			r.Pasajeros[i].Nombre = r.Titular
		}
		return
	}
}

// Validar comprueba los campos de un pasajero y devuelve el conjunto de
// errores por campo. Teléfono y email solo son obligatorios para el
// titular. Las reglas bloquean el guardado pero no la edición.
func (m *RosterManager) Validar(p *domain.Pasajero) map[string]string {
	errores := make(map[string]string)

	if err := m.validator.ValidateNombre(p.Nombre, "nombre"); err != nil {
		errores["nombre"] = err.Error()
	}
	if err := m.validator.ValidateNombre(p.Apellidos, "apellido"); err != nil {
		errores["apellidos"] = err.Error()
	}
	if p.DNI != "" {
		if err := m.validator.ValidateDNI(p.DNI); err != nil {
			errores["dni"] = err.Error()
		}
	}
	if p.Titular {
		if err := m.validator.ValidateTelefono(p.Telefono); err != nil {
			errores["telefono"] = err.Error()
		}
		if err := m.validator.ValidateEmail(p.Email); err != nil {
			errores["email"] = err.Error()
		}
	}

	return errores
}

// ValidarTodos valida el listado completo de la reserva, indexando los
// errores por posición del pasajero.
func (m *RosterManager) ValidarTodos(r *domain.Reserva) map[int]map[string]string {
	errores := make(map[int]map[string]string)
	titulares := 0
	for i := range r.Pasajeros {
		if r.Pasajeros[i].Titular {
			titulares++
		}
		if e := m.Validar(&r.Pasajeros[i]); len(e) > 0 {
			errores[i] = e
		}
	}
	if len(r.Pasajeros) > 0 && titulares != 1 {
		e := errores[0]
		if e == nil {
			e = make(map[string]string)
		}
		e["titular"] = fmt.Sprintf("debe haber exactamente un pasajero titular, hay %d", titulares)
		errores[0] = e
	}
	return errores
}

func (m *RosterManager) contar(r *domain.Reserva) (adultos, ninhos int) {
	for _, p := range r.Pasajeros {
		if p.Tipo == domain.PasajeroNinho {
			ninhos++
		} else {
			adultos++
		}
	}
	return adultos, ninhos
}
