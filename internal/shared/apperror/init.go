package apperror

import (
	"math"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init hooks the project rules into gin's validator: field names come from
// json tags, and "halfday" accepts only whole or half day quantities.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("halfday", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			doubled := f.Float() * 2
			return doubled == math.Trunc(doubled)
		case reflect.Ptr:
			if f.IsNil() {
				return true
			}
			doubled := f.Elem().Float() * 2
			return doubled == math.Trunc(doubled)
		default:
			return true
		}
	})
}
