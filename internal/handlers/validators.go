package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// decimalGreaterThanZero validates that a decimal.Decimal field is strictly
// positive. Amounts are exact decimals end to end; validating them as floats
// would reintroduce the rounding this module exists to avoid.
func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}

// RegisterValidations installs custom binding rules used by the DTOs.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dgt0", decimalGreaterThanZero)
}
