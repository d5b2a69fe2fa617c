package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/application"
)

type CalendarioHandler struct {
	service        *application.CalendarioService
	notificaciones *application.NotificationService
}

// NewCalendarioHandler crea una nueva instancia del handler de calendario
func NewCalendarioHandler(service *application.CalendarioService, notificaciones *application.NotificationService) *CalendarioHandler {
	return &CalendarioHandler{
		service:        service,
		notificaciones: notificaciones,
	}
}

// GetMes devuelve la vista mensual ?anho=&mes= (por defecto, el mes actual)
func (h *CalendarioHandler) GetMes(c *fiber.Ctx) error {
	ahora := time.Now()

	anho := ahora.Year()
	if v := c.Query("anho"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Parámetro anho inválido")
		}
		anho = parsed
	}

	mes := int(ahora.Month())
	if v := c.Query("mes"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return errorJSON(c, fiber.StatusBadRequest, "Parámetro mes inválido")
		}
		mes = parsed
	}

	calendario, err := h.service.Mes(rolActual(c), anho, mes, ahora)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": calendario,
	})
}

// GetDia devuelve las reservas con movimiento en una fecha YYYY-MM-DD
func (h *CalendarioHandler) GetDia(c *fiber.Ctx) error {
	fecha, err := parseFecha(c.Params("fecha"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de fecha inválido. Use YYYY-MM-DD")
	}

	reservas, err := h.service.Dia(rolActual(c), fecha, time.Now())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": reservas,
	})
}

// GetNotificaciones devuelve el historial de cambios recientes
func (h *CalendarioHandler) GetNotificaciones(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": h.notificaciones.Listar(),
	})
}
