package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/agrosolve/cropevo/pkg/errors"
)

// Singleton validator; struct tag parsing is cached per type.
var validate = validator.New()

// validateStruct runs the tag-based checks and converts validator errors to
// our structured error format.
func validateStruct(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := errors.Fields{}
		for _, fe := range verrs {
			fields[fe.Namespace()] = fe.Tag()
		}
		return errors.WithFields(
			errors.New(errors.ValidationFailed, "config validation failed"), fields)
	}
	return errors.Wrap(err, errors.ValidationFailed, "config validation failed")
}
