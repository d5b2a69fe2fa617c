package application

import (
	"fmt"
	"strings"

	"github.com/Zero58021/Aplicacion-Hotel-Admin/internal/domain"
	"go.uber.org/zap"
)

type EmpleadoService struct {
	repo           domain.EmpleadoRepository
	notificaciones *NotificationService
	validator      *Validator
	log            *zap.Logger
}

// NewEmpleadoService crea una nueva instancia del servicio de empleados
func NewEmpleadoService(repo domain.EmpleadoRepository, notificaciones *NotificationService, log *zap.Logger) *EmpleadoService {
	return &EmpleadoService{repo: repo, notificaciones: notificaciones, validator: &Validator{}, log: log}
}

// Listar devuelve la plantilla filtrada por término (nombre, DNI o usuario)
// y por rol.
func (s *EmpleadoService) Listar(termino, filtroRol string) ([]domain.Empleado, error) {
	empleados, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleados: %w", err)
	}

	termino = strings.ToLower(strings.TrimSpace(termino))
	out := make([]domain.Empleado, 0, len(empleados))
	for _, e := range empleados {
		if filtroRol != "" && filtroRol != "Todos" && string(e.Rol) != filtroRol {
			continue
		}
		if termino != "" {
			enNombre := strings.Contains(strings.ToLower(e.Nombre+" "+e.Apellidos), termino)
			enDNI := strings.Contains(strings.ToLower(e.DNI), termino)
			enUsuario := strings.Contains(strings.ToLower(e.Usuario), termino)
			if !enNombre && !enDNI && !enUsuario {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// GetByID obtiene un empleado por su identificador.
func (s *EmpleadoService) GetByID(id string) (*domain.Empleado, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleado: %w", err)
	}
	return e, nil
}

func (s *EmpleadoService) validar(e *domain.Empleado) map[string]string {
	errores := make(map[string]string)

	if err := s.validator.ValidateNombre(e.Nombre, "nombre"); err != nil {
		errores["nombre"] = err.Error()
	}
	if e.Apellidos != "" {
		if err := s.validator.ValidateNombre(e.Apellidos, "apellido"); err != nil {
			errores["apellidos"] = err.Error()
		}
	}
	if err := s.validator.ValidateDNI(e.DNI); err != nil {
		errores["dni"] = err.Error()
	}
	if e.Telefono != "" {
		if err := s.validator.ValidateTelefono(e.Telefono); err != nil {
			errores["telefono"] = err.Error()
		}
	}
	if e.Email != "" {
		if err := s.validator.ValidateEmail(e.Email); err != nil {
			errores["email"] = err.Error()
		}
	}
	if !domain.RolValido(e.Rol) {
		errores["rol"] = fmt.Sprintf("rol desconocido: %s", e.Rol)
	}
	if strings.TrimSpace(e.Usuario) == "" {
		errores["usuario"] = "el usuario es requerido"
	}

	if len(errores) == 0 {
		return nil
	}
	return errores
}

// Crear valida y da de alta un empleado. El usuario de acceso debe ser
// único dentro de la plantilla.
func (s *EmpleadoService) Crear(e *domain.Empleado, rol domain.Rol) (map[string]string, error) {
	if errores := s.validar(e); errores != nil {
		return errores, nil
	}

	existentes, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleados: %w", err)
	}
	for i := range existentes {
		if strings.EqualFold(existentes[i].Usuario, e.Usuario) {
			return map[string]string{"usuario": "el usuario ya está en uso"}, nil
		}
	}

	if e.Estado == "" {
		e.Estado = domain.EmpleadoActivo
	}

	if err := s.repo.Create(e); err != nil {
		return nil, fmt.Errorf("error al crear empleado: %w", err)
	}

	s.log.Info("empleado creado",
		zap.String("usuario", e.Usuario),
		zap.String("rol", string(e.Rol)))
	s.notificaciones.Notificar(rol, "empleados",
		fmt.Sprintf("ha dado de alta a %s %s", e.Nombre, e.Apellidos))
	return nil, nil
}

// Editar valida y sustituye la ficha de un empleado.
func (s *EmpleadoService) Editar(id string, e *domain.Empleado, rol domain.Rol) (map[string]string, error) {
	if errores := s.validar(e); errores != nil {
		return errores, nil
	}
	e.ID = id

	// si la edición no trae contraseña se conserva la guardada
	if e.Password == "" {
		actual, err := s.repo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("error al obtener empleado: %w", err)
		}
		e.Password = actual.Password
	}

	if err := s.repo.Replace(id, e); err != nil {
		return nil, fmt.Errorf("error al editar empleado: %w", err)
	}

	s.notificaciones.Notificar(rol, "empleados",
		fmt.Sprintf("ha editado la ficha de %s %s", e.Nombre, e.Apellidos))
	return nil, nil
}

// CambiarEstado actualiza la situación laboral (activo, baja, licencia).
func (s *EmpleadoService) CambiarEstado(id string, estado domain.EstadoEmpleado, rol domain.Rol) error {
	switch estado {
	case domain.EmpleadoActivo, domain.EmpleadoBaja, domain.EmpleadoLicencia:
	default:
		return fmt.Errorf("estado de empleado inválido: %s", estado)
	}

	if err := s.repo.UpdateEstado(id, estado); err != nil {
		return fmt.Errorf("error al actualizar estado de empleado: %w", err)
	}

	e, err := s.repo.GetByID(id)
	nombre := id
	if err == nil {
		nombre = e.Nombre + " " + e.Apellidos
	}
	s.notificaciones.Notificar(rol, "empleados",
		fmt.Sprintf("ha cambiado a %s a situación %s", nombre, estado))
	return nil
}

// AsignarTurnos sustituye el cuadrante de turnos del empleado. Las claves
// son fechas YYYY-MM-DD y los valores mañana o tarde.
func (s *EmpleadoService) AsignarTurnos(id string, turnos map[string]domain.Turno, rol domain.Rol) error {
	for fecha, turno := range turnos {
		if turno != domain.TurnoManana && turno != domain.TurnoTarde {
			return fmt.Errorf("turno inválido para %s: %s", fecha, turno)
		}
	}

	if err := s.repo.UpdateTurnos(id, turnos); err != nil {
		return fmt.Errorf("error al asignar turnos: %w", err)
	}

	e, err := s.repo.GetByID(id)
	nombre := id
	if err == nil {
		nombre = e.Nombre + " " + e.Apellidos
	}
	s.notificaciones.Notificar(rol, "empleados",
		fmt.Sprintf("ha actualizado los turnos de %s", nombre))
	return nil
}

// Eliminar borra al empleado de la plantilla.
func (s *EmpleadoService) Eliminar(id string, rol domain.Rol) error {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al obtener empleado: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar empleado: %w", err)
	}
	s.notificaciones.Notificar(rol, "empleados",
		fmt.Sprintf("ha dado de baja a %s %s", e.Nombre, e.Apellidos))
	return nil
}

// Login valida las credenciales contra la plantilla. Solo pueden entrar
// empleados en situación activa.
func (s *EmpleadoService) Login(usuario, password string) (*domain.Empleado, error) {
	empleados, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleados: %w", err)
	}

	for i := range empleados {
		e := &empleados[i]
		if !strings.EqualFold(e.Usuario, usuario) {
			continue
		}
		if e.Password != password {
			return nil, fmt.Errorf("credenciales incorrectas")
		}
		if e.Estado != domain.EmpleadoActivo {
			return nil, fmt.Errorf("el empleado no está activo")
		}
		return e, nil
	}
	return nil, fmt.Errorf("credenciales incorrectas")
}
