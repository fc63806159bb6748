package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// trimmed: non-empty and free of surrounding whitespace
	_ = v.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s != "" && strings.TrimSpace(s) == s
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return Mood(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return Theme(fl.Field().String()).Valid()
	})

	return v
}

// validateList validates every element and rejects duplicate ids.
func validateList[T any](kind string, items []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("%s %d: %w", kind, i, err)
		}
		key := id(item)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s %d: duplicate id %q", kind, i, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// decodeStrict decodes data into a wire struct, rejecting unknown fields,
// then checks its `required` pointer fields so a missing field is an error
// rather than a zero value.
func decodeStrict(data []byte, wire any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(wire); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return validate.Struct(wire)
}
