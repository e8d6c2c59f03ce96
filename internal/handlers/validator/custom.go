package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// photo references are opaque storage keys or URLs, no whitespace
var photoRefRegex = regexp.MustCompile(`^\S+$`)

func jobActionValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch val {
	case "ACCEPT":
		fallthrough
	case "START":
		fallthrough
	case "COMPLETE":
		fallthrough
	case "CANCEL":
		return true
	default:
		return false
	}
}

func photoRefValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return len(val) <= 2048 && photoRefRegex.MatchString(val)
}
