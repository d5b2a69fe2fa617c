package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
)

func TestMapHabitacion(t *testing.T) {
	doc := map[string]interface{}{
		"id":       float64(12),
		"numero":   "101",
		"titulo":   "Individual con vistas",
		"tipo":     "Individual",
		"planta":   "Primera",
		"precio":   "47 €",
		"oldPrice": "52 €",
		"status":   "ocupada",
		"extras":   []interface{}{"WiFi", "Minibar"},
		"imagenes": []interface{}{"https://example.com/101.jpg"},
		"reviews": []interface{}{
			map[string]interface{}{"autor": "Ana", "rating": float64(4), "texto": "Muy limpia"},
		},
	}

	h := mapHabitacion(doc)

	assert.Equal(t, "12", h.ID)
	assert.Equal(t, "101", h.Numero)
	assert.Equal(t, float64(47), h.Precio)
	assert.Equal(t, float64(52), h.PrecioAnterior)
	assert.Equal(t, domain.HabitacionOcupada, h.Estado)
	assert.Equal(t, []string{"WiFi", "Minibar"}, h.Extras)
	assert.Len(t, h.Reviews, 1)
	assert.Equal(t, 4, h.Reviews[0].Rating)
}

func TestNormalizarEstadoHabitacion(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.EstadoHabitacion
	}{
		{"Libre", domain.HabitacionLibre},
		{"OCUPADA", domain.HabitacionOcupada},
		{"en limpieza", domain.HabitacionLimpieza},
		{"sucia", domain.HabitacionLimpieza},
		{"Mantenimiento", domain.HabitacionMantenimiento},
		{"averiada", domain.HabitacionMantenimiento},
		{"Reservada", domain.HabitacionReservada},
		{"", domain.HabitacionLibre},
		{"desconocido", domain.HabitacionLibre},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizarEstadoHabitacion(tt.raw))
		})
	}
}

func TestDocDeHabitacionDecoraPrecios(t *testing.T) {
	h := &domain.Habitacion{
		Numero:         "203",
		Tipo:           "Suite",
		Precio:         120,
		PrecioAnterior: 140,
		Estado:         domain.HabitacionLibre,
	}

	doc := docDeHabitacion(h)

	assert.Equal(t, "120 €", doc["precio"])
	assert.Equal(t, "140 €", doc["precioAnterior"])
	assert.Equal(t, "Libre", doc["estado"])
}

func TestMapEmpleado(t *testing.T) {
	doc := map[string]interface{}{
		"id":        "3",
		"nombre":    "Lucía",
		"apellidos": "Ramos",
		"puesto":    "Mostrador",
		"status":    "de baja",
		"username":  "lramos",
		"turnos": map[string]interface{}{
			"2026-09-01": "tarde",
			"2026-09-02": "manana",
		},
	}

	e := mapEmpleado(doc)

	assert.Equal(t, "3", e.ID)
	assert.Equal(t, domain.EmpleadoBaja, e.Estado)
	// sin rol explícito, el puesto histórico "Mostrador" es recepción
	assert.Equal(t, domain.RolRecepcion, e.Rol)
	assert.Equal(t, "lramos", e.Usuario)
	assert.Equal(t, domain.TurnoTarde, e.Turnos["2026-09-01"])
	assert.Equal(t, domain.TurnoManana, e.Turnos["2026-09-02"])
}

func TestNormalizarRol(t *testing.T) {
	assert.Equal(t, domain.RolJefe, normalizarRol("Jefe", ""))
	assert.Equal(t, domain.RolLimpieza, normalizarRol("", "Equipo de limpieza"))
	assert.Equal(t, domain.RolMantenimiento, normalizarRol("mantenimiento", "otro"))
	assert.Equal(t, domain.Rol(""), normalizarRol("", ""))
}
