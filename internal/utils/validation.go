package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	validate := validator.New()
	return validate.Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range errs {
			errorMessages = append(errorMessages, e.Field()+" failed on '"+e.Tag()+"'")
		}
		return strings.Join(errorMessages, ", ")
	}
	return err.Error()
}

// BindFormAndValidate binds a form-encoded request body to a struct and
// validates it. Returns a user-displayable message and false when either
// step fails; the caller decides how to surface it (pages re-render the
// form rather than emitting JSON).
func BindFormAndValidate(c *gin.Context, obj interface{}) (string, bool) {
	if err := c.ShouldBind(obj); err != nil {
		return "Invalid form submission: " + err.Error(), false
	}
	if err := Validate(obj); err != nil {
		return "Validation failed: " + FormatValidationError(err), false
	}
	return "", true
}
