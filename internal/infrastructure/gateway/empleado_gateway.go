package gateway

import (
	"strings"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"go.uber.org/zap"
)

const coleccionEmpleados = "empleados"

// EmpleadoGateway implementa domain.EmpleadoRepository contra el almacén
// externo.
type EmpleadoGateway struct {
	client *StoreClient
	cache  *ListCache
	log    *zap.Logger
}

// NewEmpleadoGateway crea el gateway de empleados.
func NewEmpleadoGateway(client *StoreClient, cache *ListCache, log *zap.Logger) *EmpleadoGateway {
	return &EmpleadoGateway{client: client, cache: cache, log: log}
}

// GetAll obtiene la plantilla completa.
func (g *EmpleadoGateway) GetAll() ([]domain.Empleado, error) {
	docs, ok := g.cache.Get(coleccionEmpleados)
	if !ok {
		var err error
		docs, err = g.client.List(coleccionEmpleados)
		if err != nil {
			return nil, err
		}
		g.cache.Set(coleccionEmpleados, docs)
	}

	empleados := make([]domain.Empleado, 0, len(docs))
	for _, doc := range docs {
		empleados = append(empleados, mapEmpleado(doc))
	}
	return empleados, nil
}

// GetByID obtiene un empleado por su ID.
func (g *EmpleadoGateway) GetByID(id string) (*domain.Empleado, error) {
	doc, err := g.client.Get(coleccionEmpleados, id)
	if err != nil {
		return nil, err
	}
	e := mapEmpleado(doc)
	return &e, nil
}

// Create da de alta un empleado.
func (g *EmpleadoGateway) Create(e *domain.Empleado) error {
	created, err := g.client.Create(coleccionEmpleados, docDeEmpleado(e))
	if err != nil {
		return err
	}
	g.cache.Invalidate(coleccionEmpleados)
	e.ID = docID(created)
	return nil
}

// Replace sustituye el registro completo.
func (g *EmpleadoGateway) Replace(id string, e *domain.Empleado) error {
	if err := g.client.Put(coleccionEmpleados, id, docDeEmpleado(e)); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionEmpleados)
	return nil
}

// UpdateEstado cambia solo la situación laboral.
func (g *EmpleadoGateway) UpdateEstado(id string, estado domain.EstadoEmpleado) error {
	if err := g.client.Patch(coleccionEmpleados, id, map[string]interface{}{
		"status": string(estado),
	}); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionEmpleados)
	return nil
}

// UpdateTurnos sustituye el mapa de turnos del empleado.
func (g *EmpleadoGateway) UpdateTurnos(id string, turnos map[string]domain.Turno) error {
	raw := make(map[string]interface{}, len(turnos))
	for fecha, turno := range turnos {
		raw[fecha] = string(turno)
	}
	if err := g.client.Patch(coleccionEmpleados, id, map[string]interface{}{
		"turnos": raw,
	}); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionEmpleados)
	return nil
}

// Delete elimina el empleado.
func (g *EmpleadoGateway) Delete(id string) error {
	if err := g.client.Delete(coleccionEmpleados, id); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionEmpleados)
	return nil
}

func mapEmpleado(doc map[string]interface{}) domain.Empleado {
	e := domain.Empleado{
		ID:        docID(doc),
		Numero:    docString(doc, "numero"),
		Nombre:    docString(doc, "nombre"),
		Apellidos: docString(doc, "apellidos"),
		DNI:       docString(doc, "dni"),
		Telefono:  docString(doc, "telefono"),
		Email:     docString(doc, "email"),
		Foto:      docString(doc, "foto", "photo"),
		Puesto:    docString(doc, "puesto"),
		Contrato:  docString(doc, "contrato"),
		Salario:   docFloat(doc, "salario", "salarioMensual"),
		Usuario:   docString(doc, "usuario", "username"),
		Password:  docString(doc, "password"),
	}

	e.Estado = normalizarEstadoEmpleado(docString(doc, "status", "estado"))
	e.Rol = normalizarRol(docString(doc, "rol", "role"), e.Puesto)

	if turnos, ok := doc["turnos"].(map[string]interface{}); ok {
		e.Turnos = make(map[string]domain.Turno, len(turnos))
		for fecha, v := range turnos {
			if s, ok := v.(string); ok {
				if strings.EqualFold(s, "tarde") {
					e.Turnos[fecha] = domain.TurnoTarde
				} else {
					e.Turnos[fecha] = domain.TurnoManana
				}
			}
		}
	}

	return e
}

func normalizarEstadoEmpleado(raw string) domain.EstadoEmpleado {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "baja"):
		return domain.EmpleadoBaja
	case strings.Contains(s, "licencia"):
		return domain.EmpleadoLicencia
	default:
		return domain.EmpleadoActivo
	}
}

// normalizarRol deduce el rol del campo explícito o, si falta, del puesto
// ("Mostrador" era el nombre histórico de recepción).
func normalizarRol(raw, puesto string) domain.Rol {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		s = strings.ToLower(strings.TrimSpace(puesto))
	}
	switch {
	case strings.Contains(s, "jefe"):
		return domain.RolJefe
	case strings.Contains(s, "limpieza"):
		return domain.RolLimpieza
	case strings.Contains(s, "restaurante"):
		return domain.RolRestaurante
	case strings.Contains(s, "mantenimiento"):
		return domain.RolMantenimiento
	case strings.Contains(s, "recepcion"), strings.Contains(s, "mostrador"):
		return domain.RolRecepcion
	default:
		return ""
	}
}

func docDeEmpleado(e *domain.Empleado) map[string]interface{} {
	turnos := make(map[string]interface{}, len(e.Turnos))
	for fecha, turno := range e.Turnos {
		turnos[fecha] = string(turno)
	}

	return map[string]interface{}{
		"numero":    e.Numero,
		"nombre":    e.Nombre,
		"apellidos": e.Apellidos,
		"dni":       e.DNI,
		"telefono":  e.Telefono,
		"email":     e.Email,
		"foto":      e.Foto,
		"puesto":    e.Puesto,
		"contrato":  e.Contrato,
		"salario":   e.Salario,
		"status":    string(e.Estado),
		"usuario":   e.Usuario,
		"password":  e.Password,
		"rol":       string(e.Rol),
		"turnos":    turnos,
	}
}
