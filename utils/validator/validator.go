package validatorx

import (
	"math"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("onedecimal", oneDecimal)
}

// oneDecimal accepts numbers with at most one decimal place, e.g. ratings
// like 4.5 but not 4.55.
func oneDecimal(fl gpvalidator.FieldLevel) bool {
	scaled := fl.Field().Float() * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
