package gateway

import (
	"strings"
	"time"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"go.uber.org/zap"
)

const coleccionReservas = "reservas"

// fechaFormato es el formato ISO de fechas que usa el almacén.
const fechaFormato = "2006-01-02"

// ReservaGateway implementa domain.ReservaRepository contra el almacén
// externo. Toda la traducción entre los documentos sueltos del almacén
// (estado/status, habitacion como string con comas, precios en total o
// precioTotal) y la Reserva normalizada vive aquí; el resto de la
// aplicación solo ve la forma normalizada.
type ReservaGateway struct {
	client *StoreClient
	cache  *ListCache
	log    *zap.Logger
}

// NewReservaGateway crea el gateway de reservas.
func NewReservaGateway(client *StoreClient, cache *ListCache, log *zap.Logger) *ReservaGateway {
	return &ReservaGateway{client: client, cache: cache, log: log}
}

// GetAll obtiene todas las reservas normalizadas.
func (g *ReservaGateway) GetAll() ([]domain.Reserva, error) {
	docs, ok := g.cache.Get(coleccionReservas)
	if !ok {
		var err error
		docs, err = g.client.List(coleccionReservas)
		if err != nil {
			return nil, err
		}
		g.cache.Set(coleccionReservas, docs)
	}

	reservas := make([]domain.Reserva, 0, len(docs))
	for _, doc := range docs {
		reservas = append(reservas, g.mapReserva(doc))
	}
	return reservas, nil
}

// GetByID obtiene una reserva por su ID.
func (g *ReservaGateway) GetByID(id string) (*domain.Reserva, error) {
	doc, err := g.client.Get(coleccionReservas, id)
	if err != nil {
		return nil, err
	}
	r := g.mapReserva(doc)
	return &r, nil
}

// Create crea una reserva nueva y rellena el ID y el numero asignados.
func (g *ReservaGateway) Create(reserva *domain.Reserva) error {
	created, err := g.client.Create(coleccionReservas, docDeReserva(reserva))
	if err != nil {
		return err
	}
	g.cache.Invalidate(coleccionReservas)

	reserva.ID = docID(created)
	reserva.Numero = numeroDeID(reserva.ID)
	return nil
}

// Replace sustituye la reserva completa.
func (g *ReservaGateway) Replace(id string, reserva *domain.Reserva) error {
	if err := g.client.Put(coleccionReservas, id, docDeReserva(reserva)); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionReservas)
	return nil
}

// UpdateEstado actualiza solo el estado de la reserva.
func (g *ReservaGateway) UpdateEstado(id string, estado domain.EstadoReserva) error {
	if err := g.client.Patch(coleccionReservas, id, map[string]interface{}{
		"estado": string(estado),
	}); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionReservas)
	return nil
}

// Delete elimina la reserva.
func (g *ReservaGateway) Delete(id string) error {
	if err := g.client.Delete(coleccionReservas, id); err != nil {
		return err
	}
	g.cache.Invalidate(coleccionReservas)
	return nil
}

// NormalizarEstado traduce las grafías históricas del almacén al enum
// cerrado. Es tolerante con mayúsculas y variantes ("CANCELADA",
// "Cancelada por cliente") porque los datos persistidos las mezclan.
func NormalizarEstado(raw string) domain.EstadoReserva {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "cancelada por cliente"):
		return domain.ReservaCanceladaCliente
	case strings.Contains(s, "cancelada"):
		return domain.ReservaCanceladaHotel
	case strings.Contains(s, "denegada"):
		return domain.ReservaDenegada
	case strings.Contains(s, "confirmada"):
		return domain.ReservaConfirmada
	default:
		return domain.ReservaPendiente
	}
}

// SepararHabitaciones parte la cadena "101, 102" del almacén en números de
// habitación sueltos, descartando huecos.
func SepararHabitaciones(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (g *ReservaGateway) mapReserva(doc map[string]interface{}) domain.Reserva {
	id := docID(doc)

	r := domain.Reserva{
		ID:      id,
		Numero:  docString(doc, "numero"),
		Titular: docString(doc, "titular", "nombreCliente"),
		Adultos: docInt(doc, "adultos", "adults"),
		Ninhos:  docInt(doc, "ninos", "ninhos", "children"),
		Pension: docString(doc, "pension"),
		Mascota: docBool(doc, "mascota", "pet"),
		Estado:  NormalizarEstado(docString(doc, "estado", "status")),
	}
	if r.Numero == "" {
		r.Numero = numeroDeID(id)
	}

	if r.Adultos < 0 {
		r.Adultos = 0
	}
	if r.Ninhos < 0 {
		r.Ninhos = 0
	}

	r.PrecioTotal = docFloat(doc, "precioTotal", "total")
	r.NotasAlergias = docString(doc, "notasAlergias", "notas")
	r.Alergias = docBool(doc, "alergias")

	entrada := docString(doc, "fechaEntrada")
	salida := docString(doc, "fechaSalida")
	var err error
	r.FechaEntrada, err = time.Parse(fechaFormato, entrada)
	if err != nil {
		r.FechaEntradaInvalida = true
		g.log.Warn("fecha de entrada no parseable",
			zap.String("reserva", id), zap.String("valor", entrada))
	}
	r.FechaSalida, err = time.Parse(fechaFormato, salida)
	if err != nil {
		r.FechaSalidaInvalida = true
		g.log.Warn("fecha de salida no parseable",
			zap.String("reserva", id), zap.String("valor", salida))
	}

	asignadas := SepararHabitaciones(docString(doc, "habitacion", "habitaciones_asignadas"))

	for _, c := range docList(doc, "categorias", "selectedCategories") {
		cat := domain.CategoriaWeb{
			Tipo:     docString(c, "tipo", "type"),
			Cantidad: docInt(c, "cantidad", "qty", "quantity"),
			Precio:   docFloat(c, "precio", "price"),
		}
		if cat.Cantidad <= 0 {
			cat.Cantidad = 1
		}
		r.CategoriasWeb = append(r.CategoriasWeb, cat)
	}

	// La cadena "habitacion" lista primero los tipos de las categorías web
	// y después los números asignados a mano; aquí se descartan los tipos
	// para quedarse solo con la parte manual.
	pendientes := make(map[string]int, len(r.CategoriasWeb))
	for _, c := range r.CategoriasWeb {
		pendientes[c.Tipo] += c.Cantidad
	}
	for _, a := range asignadas {
		if n, ok := pendientes[a]; ok && n > 0 {
			pendientes[a] = n - 1
			continue
		}
		r.HabitacionesManual = append(r.HabitacionesManual, a)
	}

	for _, p := range docList(doc, "pasajeros", "passengers") {
		pas := domain.Pasajero{
			Nombre:    docString(p, "nombre", "name"),
			Apellidos: docString(p, "apellidos", "lastName"),
			DNI:       docString(p, "dni"),
			Telefono:  docString(p, "telefono", "phone"),
			Email:     docString(p, "email"),
			Alergias:  docString(p, "alergias", "allergies"),
			Titular:   docBool(p, "titular", "isPrimary"),
		}
		tipo := strings.ToLower(docString(p, "tipo", "type"))
		if strings.Contains(tipo, "nin") || strings.Contains(tipo, "child") {
			pas.Tipo = domain.PasajeroNinho
		} else {
			pas.Tipo = domain.PasajeroAdulto
		}
		r.Pasajeros = append(r.Pasajeros, pas)
	}

	r.NumeroHabitaciones = docInt(doc, "numeroHabitaciones", "habitaciones")
	if r.NumeroHabitaciones < 1 {
		// reconstruir el contador a partir de las dos fuentes
		n := len(r.HabitacionesManual)
		for _, c := range r.CategoriasWeb {
			n += c.Cantidad
		}
		if n < 1 {
			n = 1
		}
		r.NumeroHabitaciones = n
	}

	return r
}

// docDeReserva serializa la reserva normalizada con las grafías que el
// almacén guarda históricamente (habitacion con comas, estado en castellano).
func docDeReserva(r *domain.Reserva) map[string]interface{} {
	categorias := make([]map[string]interface{}, 0, len(r.CategoriasWeb))
	for _, c := range r.CategoriasWeb {
		categorias = append(categorias, map[string]interface{}{
			"tipo":     c.Tipo,
			"cantidad": c.Cantidad,
			"precio":   c.Precio,
		})
	}

	pasajeros := make([]map[string]interface{}, 0, len(r.Pasajeros))
	for _, p := range r.Pasajeros {
		pasajeros = append(pasajeros, map[string]interface{}{
			"nombre":    p.Nombre,
			"apellidos": p.Apellidos,
			"dni":       p.DNI,
			"telefono":  p.Telefono,
			"email":     p.Email,
			"alergias":  p.Alergias,
			"tipo":      string(p.Tipo),
			"titular":   p.Titular,
		})
	}

	doc := map[string]interface{}{
		"numero":             r.Numero,
		"titular":            r.Titular,
		"nombreCliente":      r.Titular,
		"fechaEntrada":       formatFecha(r.FechaEntrada, r.FechaEntradaInvalida),
		"fechaSalida":        formatFecha(r.FechaSalida, r.FechaSalidaInvalida),
		"adultos":            r.Adultos,
		"ninos":              r.Ninhos,
		"numeroHabitaciones": r.NumeroHabitaciones,
		"habitacion":         strings.Join(r.ListaHabitacion(), ", "),
		"categorias":         categorias,
		"pension":            r.Pension,
		"precioTotal":        r.PrecioTotal,
		"mascota":            r.Mascota,
		"alergias":           r.Alergias,
		"notasAlergias":      r.NotasAlergias,
		"pasajeros":          pasajeros,
		"estado":             string(r.Estado),
	}
	return doc
}

func formatFecha(t time.Time, invalida bool) string {
	if invalida || t.IsZero() {
		return ""
	}
	return t.Format(fechaFormato)
}

// numeroDeID deriva el número visible de reserva a partir del id asignado
// por el almacén (R-0001, R-0023...).
func numeroDeID(id string) string {
	if id == "" {
		return ""
	}
	for len(id) < 4 {
		id = "0" + id
	}
	return "R-" + id
}
