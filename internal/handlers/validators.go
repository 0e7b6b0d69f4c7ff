package handlers

import (
	"fmt"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("closing_day", validClosingDay)
}

func validClosingDay(fl validator.FieldLevel) bool {
	return domain.ValidateClosingDay(int(fl.Field().Int())) == nil
}
