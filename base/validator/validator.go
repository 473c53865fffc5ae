package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var accountIdPattern = regexp.MustCompile(`^[0-9a-zA-Z:_-]{1,64}$`)

// IsValidAccountId returns is an account id valid or not
func IsValidAccountId(account string) bool {
	return accountIdPattern.MatchString(account)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
