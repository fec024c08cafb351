// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("report_format", validateReportFormat)
		_ = v.RegisterValidation("report_type", validateReportType)
		_ = v.RegisterValidation("time_range", validateTimeRange)
		_ = v.RegisterValidation("trend_interval", validateTrendInterval)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateReportFormat(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "csv", "json", "pdf":
		return true
	}
	return false
}

func validateReportType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "summary", "detailed":
		return true
	}
	return false
}

func validateTimeRange(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "1month", "3months", "6months", "1year", "all":
		return true
	}
	return false
}

func validateTrendInterval(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "month", "day":
		return true
	}
	return false
}
