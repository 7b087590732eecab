package util

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var viewerRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)
	validate.RegisterValidation("finite", finite)
	validate.RegisterValidation("viewer", viewer)

	// report violations by their wire names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return validate
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

func finite(fl validator.FieldLevel) bool {
	return IsFinite(fl.Field().Float())
}

func viewer(fl validator.FieldLevel) bool {
	return viewerRegex.MatchString(fl.Field().String())
}
