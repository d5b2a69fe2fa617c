package gateway

import (
	"fmt"
	"strconv"
	"strings"
)

// Helpers para leer documentos sueltos del almacén externo. Los campos
// llegan con nombres y tipos inconsistentes entre revisiones (estado/status,
// adultos/adults, precios decorados como "47 €", ids numéricos o string),
// así que todo acceso pasa por estas funciones con listas de alias.

func docString(doc map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			switch t := v.(type) {
			case string:
				return t
			case float64:
				return strconv.FormatFloat(t, 'f', -1, 64)
			}
		}
	}
	return ""
}

func docFloat(doc map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			switch t := v.(type) {
			case float64:
				return t
			case string:
				return ParsePrecio(t)
			}
		}
	}
	return 0
}

func docInt(doc map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			switch t := v.(type) {
			case float64:
				return int(t)
			case string:
				if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
					return n
				}
			}
		}
	}
	return 0
}

func docBool(doc map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			switch t := v.(type) {
			case bool:
				return t
			case string:
				return strings.EqualFold(t, "true") || t == "1"
			}
		}
	}
	return false
}

func docStringSlice(doc map[string]interface{}, keys ...string) []string {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			if items, ok := v.([]interface{}); ok {
				out := make([]string, 0, len(items))
				for _, it := range items {
					if s, ok := it.(string); ok {
						out = append(out, s)
					}
				}
				return out
			}
		}
	}
	return nil
}

func docList(doc map[string]interface{}, keys ...string) []map[string]interface{} {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			if items, ok := v.([]interface{}); ok {
				out := make([]map[string]interface{}, 0, len(items))
				for _, it := range items {
					if m, ok := it.(map[string]interface{}); ok {
						out = append(out, m)
					}
				}
				return out
			}
		}
	}
	return nil
}

// docID devuelve el id del documento como string; el almacén asigna ids
// numéricos o string según la revisión.
func docID(doc map[string]interface{}) string {
	switch v := doc["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// ParsePrecio parsea un importe que puede venir decorado ("47 €", "47,50",
// "  89 ") y devuelve 0 si no contiene nada numérico.
func ParsePrecio(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")

	// Quedarse con el primer token numérico
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		} else if b.Len() > 0 {
			break
		}
	}
	if b.Len() == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatPrecio serializa un importe con la decoración que usa el almacén.
func FormatPrecio(v float64) string {
	return fmt.Sprintf("%g €", v)
}
