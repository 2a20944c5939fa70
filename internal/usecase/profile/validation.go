package profile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hiragana", isHiragana)
	_ = v.RegisterValidation("not_future", isNotFutureDate)
	return v
}

// isHiragana accepts hiragana, the prolonged sound mark and spaces.
func isHiragana(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.Is(unicode.Hiragana, r) || r == 'ー' || unicode.IsSpace(r) {
			continue
		}
		return false
	}
	return true
}

func isNotFutureDate(fl validator.FieldLevel) bool {
	d, err := time.Parse(time.DateOnly, fl.Field().String())
	if err != nil {
		return false
	}
	return !d.After(time.Now())
}

// validationError flattens validator output into ErrInvalidInput.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: birth_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return &d, nil
}
