package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"boardcamp/util/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

var v = newValidator()

func newValidator() *validator.Validate {
	vv := validator.New()
	// report fields by their json names so messages match the request body
	vv.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(vv, "digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	mustRegister(vv, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return vv
}

func mustRegister(vv *validator.Validate, tag string, fn validator.Func) {
	if err := vv.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q rule: %v", tag, err))
	}
}

// MaxMoney is the first value a NUMERIC(12,2) column cannot hold.
var MaxMoney = decimal.New(1, 10)

// Money checks an amount fits the money columns: positive, at most two
// decimal places and below MaxMoney.
func Money(field string, d decimal.Decimal) error {
	switch {
	case !d.IsPositive():
		return apperr.Invalid(field, "gt=0")
	case !d.Equal(d.Round(2)):
		return apperr.Invalid(field, "decimals=2")
	case d.GreaterThanOrEqual(MaxMoney):
		return apperr.Invalid(field, "lt="+MaxMoney.String())
	}
	return nil
}

// Struct validates s and converts failures into an apperr validation error
// keyed by json field name.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return apperr.Invalid("body", err.Error())
	}
	fields := make(map[string]string, len(ves))
	for _, fe := range ves {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}
	return apperr.Validation(fields)
}
