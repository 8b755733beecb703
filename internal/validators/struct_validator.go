package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates structs by their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator backed by go-playground/validator.
// Field errors are reported by property key (the `env` and `envPrefix`
// tags) rather than by Go field name.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(propertyName)

	return &StructValidator{validate: v}
}

// Validate checks a struct or pointer to struct. When fields are given,
// only those (dotted Go field paths relative to value, e.g. "Server.Port")
// are validated.
func (s *StructValidator) Validate(ctx context.Context, value any, fields ...string) error {
	if !isStruct(value) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var err error
	if len(fields) > 0 {
		for _, field := range fields {
			if !hasField(value, field) {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
		}
		err = s.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = s.validate.StructCtx(ctx, value)
	}

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func propertyName(field reflect.StructField) string {
	if name, _, _ := strings.Cut(field.Tag.Get("env"), ","); name != "" && name != "-" {
		return name
	}
	if prefix := strings.TrimSuffix(field.Tag.Get("envPrefix"), "."); prefix != "" {
		return prefix
	}
	return field.Name
}

func describe(fe validator.FieldError) string {
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}

	if fe.Param() != "" {
		return fmt.Sprintf("%s: failed on %q (%s)", key, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: failed on %q", key, fe.Tag())
}

func structType(value any) (reflect.Type, bool) {
	t := reflect.TypeOf(value)
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

func isStruct(value any) bool {
	if value == nil {
		return false
	}
	if v := reflect.ValueOf(value); v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	_, ok := structType(value)
	return ok
}

func hasField(value any, path string) bool {
	t, _ := structType(value)
	for name := range strings.SplitSeq(path, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return false
		}
		f, ok := t.FieldByName(name)
		if !ok {
			return false
		}
		t = f.Type
	}
	return true
}
