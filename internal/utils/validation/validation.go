package validation

import (
	"reflect"
	"sync"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagName is the struct tag shared by gin request binding and service-side validation.
const TagName = "binding"

// MoneyTag rejects decimals carrying more than two fractional digits, which NUMERIC(18,2)
// would otherwise round on write.
const MoneyTag = "money"

// StatusTag accepts only known certificate statuses.
const StatusTag = "certificate_status"

var ginOnce sync.Once

// New returns a validator reading the same tags gin binds with, able to compare decimals.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName(TagName)
	RegisterDecimal(v)
	return v
}

// RegisterDecimal teaches v to apply numeric rules (gt, gte, ...) to decimal.Decimal fields
// and registers the money and certificate status rules.
func RegisterDecimal(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation(MoneyTag, validateMoney)
	_ = v.RegisterValidation(StatusTag, validateStatus)
}

// RegisterWithGin registers the decimal type with gin's default validator engine.
// Safe to call more than once.
func RegisterWithGin() {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterDecimal(v)
		}
	})
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateMoney reads the decimal from the parent struct: fl.Field() only sees the float64
// produced by decimalValue, which has lost the exact scale.
func validateMoney(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() || !field.CanInterface() {
		return false
	}
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(domain.RoundMoney(d))
}

func validateStatus(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return domain.CertificateStatus(fl.Field().String()).IsValid()
}
