package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/application"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

type ReservaHandler struct {
	service *application.ReservaService
}

// NewReservaHandler crea una nueva instancia del handler de reservas
func NewReservaHandler(service *application.ReservaService) *ReservaHandler {
	return &ReservaHandler{
		service: service,
	}
}

// UpdateEstadoRequest representa la petición para actualizar el estado de una reserva
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// ListReservas devuelve las reservas visibles para el rol de la sesión,
// con filtros ?q= y ?estado=
func (h *ReservaHandler) ListReservas(c *fiber.Ctx) error {
	reservas, err := h.service.Listar(rolActual(c), c.Query("q"), c.Query("estado"), time.Now())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"data": reservas,
	})
}

// GetReservaByID obtiene una reserva por su ID
func (h *ReservaHandler) GetReservaByID(c *fiber.Ctx) error {
	reserva, err := h.service.GetByID(c.Params("id"), time.Now())
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{
		"data": reserva,
	})
}

// CreateReserva crea una nueva reserva
func (h *ReservaHandler) CreateReserva(c *fiber.Ctx) error {
	var req ReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	resultado, err := h.service.Crear(req.aDominio(), req.ActualizarTotal, rolActual(c))
	if err != nil {
		return respuestaErrorGuardado(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Reserva creada exitosamente",
		"data":    resultado.Reserva,
		"avisos":  resultado.Avisos,
	})
}

// UpdateReserva sustituye una reserva existente (edición completa)
func (h *ReservaHandler) UpdateReserva(c *fiber.Ctx) error {
	var req ReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	resultado, err := h.service.Editar(c.Params("id"), req.aDominio(), req.ActualizarTotal, rolActual(c))
	if err != nil {
		return respuestaErrorGuardado(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Reserva actualizada exitosamente",
		"data":    resultado.Reserva,
		"avisos":  resultado.Avisos,
	})
}

// UpdateReservaEstado actualiza el estado de una reserva
func (h *ReservaHandler) UpdateReservaEstado(c *fiber.Ctx) error {
	var req UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	estado := domain.EstadoReserva(req.Estado)
	if err := h.service.CambiarEstado(c.Params("id"), estado, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Estado de reserva actualizado exitosamente",
	})
}

// DeleteReserva elimina una reserva
func (h *ReservaHandler) DeleteReserva(c *fiber.Ctx) error {
	if err := h.service.Eliminar(c.Params("id"), rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Reserva eliminada exitosamente",
	})
}

// Presupuesto calcula el desglose de precio de un borrador sin guardarlo
func (h *ReservaHandler) Presupuesto(c *fiber.Ctx) error {
	var req ReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	desglose, err := h.service.Presupuesto(req.aDominio())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": desglose,
	})
}

// Disponibilidad devuelve, para cada hueco manual del borrador, las
// habitaciones seleccionables en sus fechas
func (h *ReservaHandler) Disponibilidad(c *fiber.Ctx) error {
	var req ReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	opciones, err := h.service.OpcionesDeAsignacion(req.aDominio())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": opciones,
	})
}

// respuestaErrorGuardado distingue errores de validación (422 con el mapa
// de campos) de fallos del almacén.
func respuestaErrorGuardado(c *fiber.Ctx, err error) error {
	var validacion *application.ErroresValidacion
	if errors.As(err, &validacion) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     "La reserva tiene errores de validación",
			"campos":    validacion.Campos,
			"pasajeros": validacion.Pasajeros,
		})
	}
	return errorJSON(c, fiber.StatusBadGateway, err.Error())
}
