package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps binding failures to the messages the forms display.
// Unknown field/tag combinations fall back to tag-level defaults.
var fieldMessages = map[string]string{
	"ApellidoPaterno.required": "Obligatorio",
	"ApellidoMaterno.required": "Obligatorio",
	"PrimerNombre.required":    "Obligatorio",
	"Email.required":           "Obligatorio",
	"Email.email":              "Correo inválido",
	"Telefono.required":        "Obligatorio",
	"Telefono.len":             "Debe tener 10 dígitos",
	"Telefono.numeric":         "Debe tener 10 dígitos",
	"Categoria.required":       "Obligatorio",
	"Brazalete.alphanum":       "Solo números y letras",
	"Brazalete.max":            "Máximo 20 caracteres",
	"NombreEquipo.required":    "Nombre del equipo obligatorio",
	"NombreEquipo.max":         "Nombre muy largo",
	"EmailCapitan.required":    "Obligatorio",
	"EmailCapitan.email":       "Correo del capitán inválido",
	"EmailsMiembros.required":  "Debe tener exactamente 5 miembros adicionales",
	"EmailsMiembros.len":       "Debe tener exactamente 5 miembros adicionales",
	"EmailsMiembros.email":     "Correo de miembro inválido",
	"ConferenciaID.required":   "ID de conferencia inválido",
}

var tagMessages = map[string]string{
	"required": "Obligatorio",
	"email":    "Correo inválido",
	"len":      "Longitud incorrecta",
	"max":      "Demasiado largo",
	"numeric":  "Solo dígitos",
	"alphanum": "Solo números y letras",
}

// FieldErrors converts a binding error into the field->message map the
// clients render next to each input. Non-validator errors (malformed JSON)
// produce a single body-level entry.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "Cuerpo de la petición inválido"
		return fields
	}

	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			fields[field] = msg
			continue
		}
		if msg, ok := tagMessages[fe.Tag()]; ok {
			fields[field] = msg
			continue
		}
		fields[field] = "Valor inválido"
	}

	return fields
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
