package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"

	val "github.com/go-playground/validator/v10"

	"lexdesk/config"
	"lexdesk/shared/failure"
)

var validate *val.Validate

// intlPhonePattern accepts an optional leading plus, a 1 to 4 digit country
// prefix, and a 6 to 12 digit subscriber number.
var intlPhonePattern = regexp.MustCompile(`^\+?[0-9]{1,4}[0-9]{6,12}$`)

func registerIntlPhoneValidation(field val.FieldLevel) bool {
	phone, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return intlPhonePattern.MatchString(phone)
}

// IsValidPhone reports whether the value matches the international phone format.
func IsValidPhone(phone string) bool {
	return intlPhonePattern.MatchString(phone)
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	err := validate.RegisterValidation("lexdesk", func(fl val.FieldLevel) bool {
		method := fl.Field().MethodByName("Validate")
		if method.IsValid() {
			result := method.Call([]reflect.Value{reflect.ValueOf(cfg)})

			return result[0].Interface() == nil
		}

		return false
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("intlphone", registerIntlPhoneValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
