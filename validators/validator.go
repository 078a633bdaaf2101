package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jcallahan/flock-backend/internal/httperr"
)

// CustomValidator adapts go-playground/validator to echo's Validator interface
// and translates rule failures into field-level API error messages.
type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return httperr.Validation(messages...)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "UserName":
		return "Please provide a username"
	case "Email":
		return "Please provide a valid email."
	case "Password":
		if fe.Tag() == "min" {
			return fmt.Sprintf("Password must be at least %s characters long.", fe.Param())
		}
		return "Please provide a password."
	case "Age":
		return "Please provide a valid age."
	case "ID":
		return "Please provide the id of the user to follow."
	}
	return fmt.Sprintf("%s failed on the '%s' rule.", fe.Field(), fe.Tag())
}
