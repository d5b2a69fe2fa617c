package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator contiene funciones de validación de datos
type Validator struct{}

var (
	nombreRegex   = regexp.MustCompile(`^[\p{L}][\p{L}\s\-']+$`)
	dniRegex      = regexp.MustCompile(`^\d{8}[A-Za-z]$`)
	telefonoRegex = regexp.MustCompile(`^\d{9}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateNombre valida que un nombre tenga formato válido: letras Unicode
// y longitud mínima de 2.
func (v *Validator) ValidateNombre(nombre, campo string) error {
	nombre = strings.TrimSpace(nombre)

	if nombre == "" {
		return fmt.Errorf("el %s es requerido", campo)
	}

	if len([]rune(nombre)) < 2 {
		return fmt.Errorf("el %s debe tener al menos 2 caracteres", campo)
	}

	if !nombreRegex.MatchString(nombre) {
		return fmt.Errorf("el %s contiene caracteres no válidos", campo)
	}

	return nil
}

// ValidateDNI valida el documento nacional: 8 dígitos y una letra.
func (v *Validator) ValidateDNI(dni string) error {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return fmt.Errorf("el DNI es requerido")
	}
	if !dniRegex.MatchString(dni) {
		return fmt.Errorf("el DNI debe tener 8 dígitos y una letra")
	}
	return nil
}

// ValidateTelefono valida un teléfono nacional de exactamente 9 dígitos.
func (v *Validator) ValidateTelefono(telefono string) error {
	limpio := strings.ReplaceAll(telefono, " ", "")
	limpio = strings.ReplaceAll(limpio, "-", "")

	if limpio == "" {
		return fmt.Errorf("el teléfono es requerido")
	}
	if !telefonoRegex.MatchString(limpio) {
		return fmt.Errorf("el teléfono debe tener exactamente 9 dígitos")
	}
	return nil
}

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}

	return nil
}

// FormatValidationErrors formatea una lista de errores en un mensaje legible
func (v *Validator) FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Se encontraron los siguientes errores en los datos proporcionados:\n\n")

	for i, err := range errors {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return sb.String()
}
