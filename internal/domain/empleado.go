package domain

// EstadoEmpleado representa la situación laboral de un empleado.
type EstadoEmpleado string

const (
	EmpleadoActivo   EstadoEmpleado = "Activo"
	EmpleadoBaja     EstadoEmpleado = "Baja"
	EmpleadoLicencia EstadoEmpleado = "En licencia"
)

// Turno es el turno asignado a un día concreto.
type Turno string

const (
	TurnoManana Turno = "manana"
	TurnoTarde  Turno = "tarde"
)

// Empleado representa un registro de personal. La contraseña se guarda y
// compara en texto plano contra el almacén externo.
type Empleado struct {
	ID        string         `json:"id"`
	Numero    string         `json:"numero"`
	Nombre    string         `json:"nombre"`
	Apellidos string         `json:"apellidos"`
	DNI       string         `json:"dni"`
	Telefono  string         `json:"telefono"`
	Email     string         `json:"email"`
	Foto      string         `json:"foto,omitempty"`
	Puesto    string         `json:"puesto"`
	Contrato  string         `json:"contrato"`
	Salario   float64        `json:"salario,omitempty"`
	Estado    EstadoEmpleado `json:"estado"`
	Usuario   string         `json:"usuario,omitempty"`
	Password  string         `json:"password,omitempty"`
	Rol       Rol            `json:"rol,omitempty"`
	// Turnos es un mapa fecha (YYYY-MM-DD) -> turno del propio empleado.
	Turnos map[string]Turno `json:"turnos,omitempty"`
}

// EmpleadoRepository define las operaciones contra la colección de empleados.
type EmpleadoRepository interface {
	GetAll() ([]Empleado, error)
	GetByID(id string) (*Empleado, error)
	Create(e *Empleado) error
	Replace(id string, e *Empleado) error
	UpdateEstado(id string, estado EstadoEmpleado) error
	UpdateTurnos(id string, turnos map[string]Turno) error
	Delete(id string) error
}
