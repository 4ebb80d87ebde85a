package membership

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"gym-frontdesk/internal/apperr"

	"github.com/go-playground/validator/v10"
)

const msgNamesRequired = "Nombre y Apellido son obligatorios"

// ClientFields are the personal fields staff can set on a client.
type ClientFields struct {
	FirstName         string `json:"first_name" validate:"required,max=100"`
	LastName          string `json:"last_name" validate:"required,max=100"`
	Email             string `json:"email" validate:"omitempty,max=150"`
	Phone             string `json:"phone" validate:"omitempty,max=20"`
	DNI               string `json:"dni" validate:"omitempty,max=20"`
	MedicalConditions string `json:"medical_conditions"`
}

func (f ClientFields) trimmed() ClientFields {
	return ClientFields{
		FirstName:         strings.TrimSpace(f.FirstName),
		LastName:          strings.TrimSpace(f.LastName),
		Email:             strings.TrimSpace(f.Email),
		Phone:             strings.TrimSpace(f.Phone),
		DNI:               strings.TrimSpace(f.DNI),
		MedicalConditions: strings.TrimSpace(f.MedicalConditions),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkClientFields turns validator failures into a VALIDATION_FAILED error
// with one detail per offending field.
func (s *Service) checkClientFields(f ClientFields) error {
	err := s.validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Wrap(err, apperr.CodeInternalError, domainClients, "Error del servidor", http.StatusInternalServerError)
	}

	details := make(map[string]string, len(fieldErrs))
	message := "Datos del cliente inválidos"
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "es obligatorio"
			message = msgNamesRequired
		case "max":
			details[fe.Field()] = "máximo " + fe.Param() + " caracteres"
		default:
			details[fe.Field()] = "valor inválido"
		}
	}
	return apperr.Validation(domainClients, message).WithDetails(details)
}
