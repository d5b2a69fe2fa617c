package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/application"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/auth"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

type AuthHandler struct {
	empleados *application.EmpleadoService
	sesiones  *auth.SessionStore
	limiter   *application.RateLimiter
}

// NewAuthHandler crea una nueva instancia del handler de autenticación
func NewAuthHandler(empleados *application.EmpleadoService, sesiones *auth.SessionStore, limiter *application.RateLimiter) *AuthHandler {
	return &AuthHandler{
		empleados: empleados,
		sesiones:  sesiones,
		limiter:   limiter,
	}
}

// LoginRequest representa la petición de inicio de sesión
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// Login valida credenciales y abre una sesión
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	if req.Usuario == "" || req.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Usuario y contraseña son requeridos")
	}

	allowed, err := h.limiter.Allow(c.IP())
	if err != nil {
		return errorJSON(c, fiber.StatusTooManyRequests, err.Error())
	}
	if !allowed {
		return errorJSON(c, fiber.StatusTooManyRequests, "Demasiados intentos de inicio de sesión, espere unos minutos")
	}

	empleado, err := h.empleados.Login(req.Usuario, req.Password)
	if err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, err.Error())
	}

	sesion, err := h.sesiones.Crear(c.Context(), empleado)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	h.limiter.Reset(c.IP())

	return c.JSON(fiber.Map{
		"token": sesion.Token,
		"empleado": fiber.Map{
			"id":      empleado.ID,
			"nombre":  empleado.Nombre,
			"usuario": empleado.Usuario,
			"rol":     empleado.Rol,
			"area":    domain.EtiquetaRol(empleado.Rol),
		},
	})
}

// Logout cierra la sesión del token actual
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sesiones.Cerrar(c.Context(), tokenDeCabecera(c)); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Sesión cerrada exitosamente",
	})
}

// Me devuelve la identidad de la sesión actual
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sesion := sesionActual(c)
	if sesion == nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Se requiere iniciar sesión")
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"empleadoId": sesion.EmpleadoID,
			"usuario":    sesion.Usuario,
			"nombre":     sesion.Nombre,
			"rol":        sesion.Rol,
			"area":       domain.EtiquetaRol(sesion.Rol),
		},
	})
}
