package model

import (
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the validator singleton used for literal page data.
var Validate = NewValidator()

func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("imagepath", imagePath)
	return validate
}

// imagePath accepts a clean, relative path that stays inside the topic directory.
func imagePath(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" || strings.HasPrefix(val, "/") {
		return false
	}
	clean := path.Clean(val)
	return clean == val && clean != ".." && !strings.HasPrefix(clean, "../")
}
