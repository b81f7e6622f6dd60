package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/marksheet/core"
)

var (
	studentIDLen  = 4
	studentIDTag  = "studentid"
	studentIDText = "student ID must be exactly 4 digits"
)

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(studentIDTag, studentIDValidation)
	core.RegisterCustomTranslation(studentIDTag, studentIDText)
}

// Custom Validators

// studentIDValidation checks that the ID is made of exactly 4 ASCII digits
func studentIDValidation(fl validator.FieldLevel) bool {
	return ValidID(fl.Field().String())
}

// ValidID reports whether id has the shape of a student ID.
func ValidID(id string) bool {
	return len(id) == studentIDLen && core.IsDigits(id)
}
