package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/venue-reservation-service/internal/pkg/errors"
)

var (
	validate *validator.Validate

	mobilePhoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	iso8601Layouts = []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
)

// FieldError - одно нарушение правила валидации
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("mobilephone", func(fl validator.FieldLevel) bool {
		phone := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
		return mobilePhoneRe.MatchString(phone)
	})

	_ = validate.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := ParseISO8601(fl.Field().String())
		return err == nil
	})
}

// ParseISO8601 accepts a calendar date or an RFC 3339 date-time.
func ParseISO8601(s string) (time.Time, error) {
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO 8601 date: %q", s)
}

// Validate - валидация структуры. Нарушения возвращаются как
// VALIDATION_FAILED с перечнем полей в details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrValidationFailed.WithMessage(err.Error())
	}

	return errors.ErrValidationFailed.WithDetails(map[string]interface{}{
		"fields": translate(verrs),
	})
}

// ValidateVar checks a single value against a tag, e.g. path identifiers.
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

func translate(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "mobilephone":
		return "must be a valid phone number"
	case "iso8601":
		return "must be a valid ISO 8601 date"
	case "uuid", "uuid4":
		return "must be a valid identifier"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
