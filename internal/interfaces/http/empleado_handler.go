package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/application"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

type EmpleadoHandler struct {
	service *application.EmpleadoService
}

// NewEmpleadoHandler crea una nueva instancia del handler de empleados
func NewEmpleadoHandler(service *application.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{
		service: service,
	}
}

// EmpleadoRequest representa la petición para crear o editar un empleado
type EmpleadoRequest struct {
	Numero    string  `json:"numero"`
	Nombre    string  `json:"nombre"`
	Apellidos string  `json:"apellidos"`
	DNI       string  `json:"dni"`
	Telefono  string  `json:"telefono"`
	Email     string  `json:"email"`
	Foto      string  `json:"foto"`
	Puesto    string  `json:"puesto"`
	Contrato  string  `json:"contrato"`
	Salario   float64 `json:"salario"`
	Estado    string  `json:"estado"`
	Usuario   string  `json:"usuario"`
	Password  string  `json:"password"`
	Rol       string  `json:"rol"`
}

// TurnosRequest representa el cuadrante de turnos fecha -> turno
type TurnosRequest struct {
	Turnos map[string]string `json:"turnos"`
}

func (req *EmpleadoRequest) aDominio() *domain.Empleado {
	return &domain.Empleado{
		Numero:    req.Numero,
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		DNI:       req.DNI,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Foto:      req.Foto,
		Puesto:    req.Puesto,
		Contrato:  req.Contrato,
		Salario:   req.Salario,
		Estado:    domain.EstadoEmpleado(req.Estado),
		Usuario:   req.Usuario,
		Password:  req.Password,
		Rol:       domain.Rol(req.Rol),
	}
}

// sinPassword limpia la contraseña antes de devolver la ficha al cliente.
func sinPassword(e domain.Empleado) domain.Empleado {
	e.Password = ""
	return e
}

// ListEmpleados devuelve la plantilla con filtros ?q= y ?rol=
func (h *EmpleadoHandler) ListEmpleados(c *fiber.Ctx) error {
	empleados, err := h.service.Listar(c.Query("q"), c.Query("rol"))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]domain.Empleado, 0, len(empleados))
	for _, e := range empleados {
		out = append(out, sinPassword(e))
	}
	return c.JSON(fiber.Map{
		"data": out,
	})
}

// GetEmpleadoByID obtiene un empleado por su ID
func (h *EmpleadoHandler) GetEmpleadoByID(c *fiber.Ctx) error {
	empleado, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{
		"data": sinPassword(*empleado),
	})
}

// CreateEmpleado da de alta un empleado
func (h *EmpleadoHandler) CreateEmpleado(c *fiber.Ctx) error {
	var req EmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	empleado := req.aDominio()
	campos, err := h.service.Crear(empleado, rolActual(c))
	if err != nil {
		return errorJSON(c, fiber.StatusBadGateway, err.Error())
	}
	if campos != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "La ficha tiene errores de validación",
			"campos": campos,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Empleado creado exitosamente",
		"data":    sinPassword(*empleado),
	})
}

// UpdateEmpleado sustituye la ficha de un empleado
func (h *EmpleadoHandler) UpdateEmpleado(c *fiber.Ctx) error {
	var req EmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	empleado := req.aDominio()
	campos, err := h.service.Editar(c.Params("id"), empleado, rolActual(c))
	if err != nil {
		return errorJSON(c, fiber.StatusBadGateway, err.Error())
	}
	if campos != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "La ficha tiene errores de validación",
			"campos": campos,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Empleado actualizado exitosamente",
		"data":    sinPassword(*empleado),
	})
}

// UpdateEmpleadoEstado cambia la situación laboral
func (h *EmpleadoHandler) UpdateEmpleadoEstado(c *fiber.Ctx) error {
	var req UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	estado := domain.EstadoEmpleado(req.Estado)
	if err := h.service.CambiarEstado(c.Params("id"), estado, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Estado de empleado actualizado exitosamente",
	})
}

// GetTurnos devuelve el cuadrante de turnos del empleado
func (h *EmpleadoHandler) GetTurnos(c *fiber.Ctx) error {
	empleado, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{
		"data": empleado.Turnos,
	})
}

// UpdateTurnos sustituye el cuadrante de turnos del empleado
func (h *EmpleadoHandler) UpdateTurnos(c *fiber.Ctx) error {
	var req TurnosRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	turnos := make(map[string]domain.Turno, len(req.Turnos))
	for fecha, turno := range req.Turnos {
		turnos[fecha] = domain.Turno(turno)
	}

	if err := h.service.AsignarTurnos(c.Params("id"), turnos, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Turnos actualizados exitosamente",
	})
}

// DeleteEmpleado da de baja a un empleado
func (h *EmpleadoHandler) DeleteEmpleado(c *fiber.Ctx) error {
	if err := h.service.Eliminar(c.Params("id"), rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Empleado eliminado exitosamente",
	})
}
