package gateway

import (
	"strings"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"go.uber.org/zap"
)

const coleccionHabitaciones = "habitaciones"

// HabitacionGateway implementa domain.HabitacionRepository contra el
// almacén externo.
type HabitacionGateway struct {
	client *StoreClient
	cache  *ListCache
	log    *zap.Logger
}

// NewHabitacionGateway crea el gateway de habitaciones.
func NewHabitacionGateway(client *StoreClient, cache *ListCache, log *zap.Logger) *HabitacionGateway {
	return &HabitacionGateway{client: client, cache: cache, log: log}
}

// GetAll obtiene el catálogo completo de habitaciones.
func (g *HabitacionGateway) GetAll() ([]domain.Habitacion, error) {
	docs, ok := g.cache.Get(coleccionHabitaciones)
	if !ok {
		var err error
		docs, err = g.client.List(coleccionHabitaciones)
		if err != nil {
			return nil, err
		}
		g.cache.Set(coleccionHabitaciones, docs)
	}

	habitaciones := make([]domain.Habitacion, 0, len(docs))
	for _, doc := range docs {
		habitaciones = append(habitaciones, mapHabitacion(doc))
	}
	return habitaciones, nil
}

// GetByID obtiene una habitación por su ID.
func (g *HabitacionGateway) GetByID(id string) (*domain.Habitacion, error) {
	doc, err := g.client.Get(coleccionHabitaciones, id)
	if err != nil {
		return nil, err
	}
	h := mapHabitacion(doc)
	return &h, nil
}

// Create da de alta una habitación.
func (g *HabitacionGateway) Create(h *domain.Habitacion) error {
	created, err := g.client.Create(coleccionHabitaciones, docDeHabitacion(h))
	if err != nil {
		return err
	}
	g.cache.Invalidate(coleccionHabitaciones)
	h.ID = docID(created)
	return nil
}

// Replace sustituye la habitación completa. Se usa PUT con el documento
// entero para que los arrays de fotos y extras se guarden bien.
func (g *HabitacionGateway) Replace(id string, h *domain.Habitacion) error {
	if err := g.client.Put(coleccionHabitaciones, id, docDeHabitacion(h)); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionHabitaciones)
	return nil
}

// UpdateEstado cambia solo el estado de ocupación.
func (g *HabitacionGateway) UpdateEstado(id string, estado domain.EstadoHabitacion) error {
	if err := g.client.Patch(coleccionHabitaciones, id, map[string]interface{}{
		"estado": string(estado),
	}); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionHabitaciones)
	return nil
}

// UpdatePrecio cambia el precio por noche y conserva el anterior como
// precio tachado.
func (g *HabitacionGateway) UpdatePrecio(id string, precio, anterior float64) error {
	if err := g.client.Patch(coleccionHabitaciones, id, map[string]interface{}{
		"precio":         FormatPrecio(precio),
		"precioAnterior": FormatPrecio(anterior),
	}); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionHabitaciones)
	return nil
}

// Delete elimina la habitación.
func (g *HabitacionGateway) Delete(id string) error {
	if err := g.client.Delete(coleccionHabitaciones, id); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionHabitaciones)
	return nil
}

func mapHabitacion(doc map[string]interface{}) domain.Habitacion {
	h := domain.Habitacion{
		ID:             docID(doc),
		Numero:         docString(doc, "numero", "roomNumber"),
		Titulo:         docString(doc, "titulo", "title"),
		Tipo:           docString(doc, "tipo", "type"),
		Planta:         docString(doc, "planta", "floor"),
		Precio:         docFloat(doc, "precio", "price"),
		PrecioAnterior: docFloat(doc, "precioAnterior", "oldPrice"),
		Extras:         docStringSlice(doc, "extras"),
		Imagenes:       docStringSlice(doc, "imagenes", "images"),
		Nota:           docString(doc, "nota", "note"),
	}

	h.Estado = normalizarEstadoHabitacion(docString(doc, "estado", "status"))

	for _, rv := range docList(doc, "reviews") {
		h.Reviews = append(h.Reviews, domain.Review{
			Autor:  docString(rv, "autor", "author"),
			Rating: docInt(rv, "rating"),
			Texto:  docString(rv, "texto", "text"),
		})
	}
	return h
}

func normalizarEstadoHabitacion(raw string) domain.EstadoHabitacion {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "ocupada"):
		return domain.HabitacionOcupada
	case strings.Contains(s, "limpieza"), strings.Contains(s, "sucia"):
		return domain.HabitacionLimpieza
	case strings.Contains(s, "mantenimiento"), strings.Contains(s, "averiada"):
		return domain.HabitacionMantenimiento
	case strings.Contains(s, "reservada"):
		return domain.HabitacionReservada
	default:
		return domain.HabitacionLibre
	}
}

func docDeHabitacion(h *domain.Habitacion) map[string]interface{} {
	reviews := make([]map[string]interface{}, 0, len(h.Reviews))
	for _, rv := range h.Reviews {
		reviews = append(reviews, map[string]interface{}{
			"autor":  rv.Autor,
			"rating": rv.Rating,
			"texto":  rv.Texto,
		})
	}

	return map[string]interface{}{
		"numero":         h.Numero,
		"titulo":         h.Titulo,
		"tipo":           h.Tipo,
		"planta":         h.Planta,
		"precio":         FormatPrecio(h.Precio),
		"precioAnterior": FormatPrecio(h.PrecioAnterior),
		"estado":         string(h.Estado),
		"extras":         h.Extras,
		"imagenes":       h.Imagenes,
		"nota":           h.Nota,
		"reviews":        reviews,
	}
}
