package domain

// Rol es el rol de un empleado dentro de la aplicación.
type Rol string

const (
	RolRecepcion     Rol = "recepcion"
	RolLimpieza      Rol = "limpieza"
	RolRestaurante   Rol = "restaurante"
	RolMantenimiento Rol = "mantenimiento"
	RolJefe          Rol = "jefe"
)

// Permiso es una capacidad concreta dentro de la aplicación.
type Permiso string

const (
	PermisoReservasVer        Permiso = "reservas.view"
	PermisoReservasEditar     Permiso = "reservas.edit"
	PermisoReservasConfirmar  Permiso = "reservas.confirm"
	PermisoReservasBorrar     Permiso = "reservas.delete"
	PermisoReservasAlergias   Permiso = "reservas.allergies"
	PermisoCalendarioVer      Permiso = "calendario.view"
	PermisoEquipoVer          Permiso = "equipo.view"
	PermisoEquipoEditar       Permiso = "equipo.edit"
	PermisoHabitacionesVer    Permiso = "habitaciones.view"
	PermisoHabitacionesEstado Permiso = "habitaciones.estado"
	PermisoHabitacionesEditar Permiso = "habitaciones.edit"
)

var permisosPorRol = map[Rol][]Permiso{
	RolRecepcion: {
		PermisoReservasVer,
		PermisoReservasEditar,
		PermisoCalendarioVer,
		PermisoHabitacionesVer,
	},
	RolLimpieza: {
		PermisoCalendarioVer,
		PermisoHabitacionesVer,
		PermisoHabitacionesEstado,
	},
	RolRestaurante: {
		PermisoReservasVer,
		PermisoReservasAlergias,
		PermisoCalendarioVer,
	},
	// mantenimiento solo puede cambiar el estado, no editar habitaciones
	RolMantenimiento: {
		PermisoCalendarioVer,
		PermisoHabitacionesVer,
		PermisoHabitacionesEstado,
	},
	RolJefe: {
		PermisoReservasVer,
		PermisoReservasEditar,
		PermisoReservasConfirmar,
		PermisoReservasBorrar,
		PermisoReservasAlergias,
		PermisoCalendarioVer,
		PermisoEquipoVer,
		PermisoEquipoEditar,
		PermisoHabitacionesVer,
		PermisoHabitacionesEstado,
		PermisoHabitacionesEditar,
	},
}

// RolValido indica si el rol es uno de los conocidos.
func RolValido(r Rol) bool {
	_, ok := permisosPorRol[r]
	return ok
}

// TienePermiso comprueba si un rol tiene un permiso concreto.
func TienePermiso(rol Rol, p Permiso) bool {
	for _, perm := range permisosPorRol[rol] {
		if perm == p {
			return true
		}
	}
	return false
}

// EtiquetaRol devuelve el nombre visible del rol para notificaciones.
func EtiquetaRol(rol Rol) string {
	switch rol {
	case RolRecepcion:
		return "Recepción"
	case RolLimpieza:
		return "Limpieza"
	case RolRestaurante:
		return "Restaurante"
	case RolMantenimiento:
		return "Mantenimiento"
	case RolJefe:
		return "Jefe"
	default:
		return "Sistema"
	}
}
