// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"meansassess/internal/models"
)

// Register registers all custom validators with the Gin binding engine and
// makes validation errors report JSON field names.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("matter_proceeding_type", validateMatterProceedingType)
		_ = v.RegisterValidation("involvement_type", validateInvolvementType)
		_ = v.RegisterValidation("income_source", validateIncomeSource)
		_ = v.RegisterValidation("outgoing_type", validateOutgoingType)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateMatterProceedingType(fl validator.FieldLevel) bool {
	_, ok := models.ParseMatterProceedingType(fl.Field().String())
	return ok
}

func validateInvolvementType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "applicant":
		return true
	}
	return false
}

func validateIncomeSource(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "employment", "benefits", "friends_or_family", "maintenance_in",
		"property_or_lodger", "pension", "housing_benefit":
		return true
	}
	return false
}

func validateOutgoingType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "childcare", "maintenance_out", "housing_cost":
		return true
	}
	return false
}
