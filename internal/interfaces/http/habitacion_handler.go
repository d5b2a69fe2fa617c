package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/application"
	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	service "github.com/Zero58021/Aplicacion-Hotel-Admin/internal/service"
)

type HabitacionHandler struct {
	service   *application.HabitacionService
	s3Service *service.S3Service
}

// NewHabitacionHandler crea una nueva instancia del handler de habitaciones
func NewHabitacionHandler(habitacionService *application.HabitacionService, s3Service *service.S3Service) *HabitacionHandler {
	return &HabitacionHandler{
		service:   habitacionService,
		s3Service: s3Service,
	}
}

// HabitacionRequest representa la petición para crear o editar una habitación
type HabitacionRequest struct {
	Numero         string   `json:"numero"`
	Titulo         string   `json:"titulo"`
	Tipo           string   `json:"tipo"`
	Planta         string   `json:"planta"`
	Precio         float64  `json:"precio"`
	PrecioAnterior float64  `json:"precioAnterior"`
	Estado         string   `json:"estado"`
	Extras         []string `json:"extras"`
	Imagenes       []string `json:"imagenes"`
	Nota           string   `json:"nota"`
}

// UpdatePrecioRequest representa la petición para cambiar el precio
type UpdatePrecioRequest struct {
	Precio float64 `json:"precio"`
}

func (req *HabitacionRequest) aDominio() *domain.Habitacion {
	return &domain.Habitacion{
		Numero:         req.Numero,
		Titulo:         req.Titulo,
		Tipo:           req.Tipo,
		Planta:         req.Planta,
		Precio:         req.Precio,
		PrecioAnterior: req.PrecioAnterior,
		Estado:         domain.EstadoHabitacion(req.Estado),
		Extras:         req.Extras,
		Imagenes:       req.Imagenes,
		Nota:           req.Nota,
	}
}

// ListHabitaciones devuelve el catálogo con filtros ?q=, ?tipo=, ?planta=
// y ?estado=
func (h *HabitacionHandler) ListHabitaciones(c *fiber.Ctx) error {
	habitaciones, err := h.service.Listar(application.FiltroHabitaciones{
		Termino: c.Query("q"),
		Tipo:    c.Query("tipo"),
		Planta:  c.Query("planta"),
		Estado:  c.Query("estado"),
	})
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"data": habitaciones,
	})
}

// GetOpciones devuelve los tipos, plantas y extras seleccionables
func (h *HabitacionHandler) GetOpciones(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tipos":   application.TiposHabitacion,
		"plantas": application.PlantasHotel,
		"extras":  application.ExtrasDisponibles,
	})
}

// GetHabitacionByID obtiene una habitación por su ID
func (h *HabitacionHandler) GetHabitacionByID(c *fiber.Ctx) error {
	habitacion, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{
		"data": habitacion,
	})
}

// CreateHabitacion da de alta una habitación
func (h *HabitacionHandler) CreateHabitacion(c *fiber.Ctx) error {
	var req HabitacionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	habitacion := req.aDominio()
	if err := h.service.Crear(habitacion, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Habitación creada exitosamente",
		"data":    habitacion,
	})
}

// UpdateHabitacion sustituye una habitación existente
func (h *HabitacionHandler) UpdateHabitacion(c *fiber.Ctx) error {
	var req HabitacionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	habitacion := req.aDominio()
	if err := h.service.Editar(c.Params("id"), habitacion, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Habitación actualizada exitosamente",
		"data":    habitacion,
	})
}

// UpdateHabitacionEstado cambia el estado operativo de la habitación
func (h *HabitacionHandler) UpdateHabitacionEstado(c *fiber.Ctx) error {
	var req UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	estado := domain.EstadoHabitacion(req.Estado)
	if err := h.service.CambiarEstado(c.Params("id"), estado, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Estado de habitación actualizado exitosamente",
	})
}

// UpdateHabitacionPrecio cambia el precio por noche
func (h *HabitacionHandler) UpdateHabitacionPrecio(c *fiber.Ctx) error {
	var req UpdatePrecioRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	if err := h.service.CambiarPrecio(c.Params("id"), req.Precio, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Precio actualizado exitosamente",
	})
}

// DeleteHabitacion elimina una habitación del catálogo
func (h *HabitacionHandler) DeleteHabitacion(c *fiber.Ctx) error {
	if err := h.service.Eliminar(c.Params("id"), rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Habitación eliminada exitosamente",
	})
}

// UploadImagen sube una foto de la habitación a S3 y añade su URL a la
// galería de la ficha
func (h *HabitacionHandler) UploadImagen(c *fiber.Ctx) error {
	if h.s3Service == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "El almacenamiento de imágenes no está configurado")
	}

	id := c.Params("id")
	habitacion, err := h.service.GetByID(id)
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Se requiere el archivo 'imagen'")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "No se pudo leer el archivo")
	}
	defer file.Close()

	url, err := service.UploadFile(h.s3Service, file, fileHeader, false)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	habitacion.Imagenes = append(habitacion.Imagenes, url)
	if err := h.service.Editar(id, habitacion, rolActual(c)); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Imagen subida exitosamente",
		"url":     url,
	})
}
