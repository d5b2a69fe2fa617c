package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/auth"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

const localSesion = "sesion"

// AuthMiddleware resuelve el token Bearer a una sesión y la deja en el
// contexto de la petición.
type AuthMiddleware struct {
	sesiones *auth.SessionStore
}

// NewAuthMiddleware crea el middleware de autenticación.
func NewAuthMiddleware(sesiones *auth.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{sesiones: sesiones}
}

// RequiereSesion exige un token de sesión válido.
func (m *AuthMiddleware) RequiereSesion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenDeCabecera(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Se requiere iniciar sesión",
			})
		}

		sesion, err := m.sesiones.Obtener(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Sesión no válida o expirada",
			})
		}

		c.Locals(localSesion, sesion)
		return c.Next()
	}
}

// RequierePermiso exige que el rol de la sesión tenga el permiso dado.
// Debe encadenarse después de RequiereSesion.
func (m *AuthMiddleware) RequierePermiso(permiso domain.Permiso) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sesion := sesionActual(c)
		if sesion == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Se requiere iniciar sesión",
			})
		}
		if !domain.TienePermiso(sesion.Rol, permiso) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "No tiene permiso para esta operación",
			})
		}
		return c.Next()
	}
}

func tokenDeCabecera(c *fiber.Ctx) string {
	cabecera := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(cabecera, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(cabecera, "Bearer "))
	}
	return ""
}

func sesionActual(c *fiber.Ctx) *auth.Sesion {
	sesion, _ := c.Locals(localSesion).(*auth.Sesion)
	return sesion
}

func rolActual(c *fiber.Ctx) domain.Rol {
	if s := sesionActual(c); s != nil {
		return s.Rol
	}
	return ""
}
