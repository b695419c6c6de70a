package trade

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/minierp/backend/internal/domain/shared"
)

// validateStruct runs struct validation and translates failures into the
// domain's validation error shape.
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return shared.NewValidationError(fields)
	}
	return err
}
