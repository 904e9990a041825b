package link

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/storenav/storenav/internal/navlink"
)

type (
	// ErrorResponse represents a validation error response.
	ErrorResponse struct {
		Error       bool   `json:"error"`
		FailedField string `json:"failedField"`
		Tag         string `json:"tag"`
		Value       any    `json:"value"`
	}

	// XValidator wraps the validator used for request bodies.
	XValidator struct {
		validator *validator.Validate
	}

	// GlobalErrorHandlerResp represents a global error response structure.
	GlobalErrorHandlerResp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Errors  []ErrorResponse `json:"errors,omitempty"`
	}
)

// NewValidator creates a request body validator.
// Besides the built-in tags it knows "attrname", see navlink.ValidAttributeName.
func NewValidator() XValidator {
	v := validator.New()

	if err := v.RegisterValidation("attrname", func(fl validator.FieldLevel) bool {
		return navlink.ValidAttributeName(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return XValidator{validator: v}
}

// Validate performs validation on the provided data and returns a slice of ErrorResponse.
func (v XValidator) Validate(data any) []ErrorResponse {
	var validationErrors []ErrorResponse

	err := v.validator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []ErrorResponse{{Error: true, Tag: "invalid", Value: err.Error()}}
	}

	for _, fe := range errs {
		validationErrors = append(validationErrors, ErrorResponse{
			Error:       true,
			FailedField: fe.Namespace(),
			Tag:         fe.Tag(),
			Value:       fe.Value(),
		})
	}

	return validationErrors
}
