package payload

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jellydator/validation"
)

// FieldErrors maps a form field name to the messages rendered next to it.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Get returns the messages for a field. It is used from templates.
func (fe FieldErrors) Get(field string) []string {
	return fe[field]
}

// Validate runs the form rules and converts rule violations into FieldErrors.
// A non-nil error means the rules themselves could not run.
func Validate(form validation.Validatable) (FieldErrors, error) {
	err := form.Validate()
	if err == nil {
		return nil, nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validating form payload: %w", err)
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	fe := FieldErrors{}
	for _, field := range fields {
		var internal validation.InternalError
		if errors.As(verrs[field], &internal) {
			return nil, fmt.Errorf("validating field %s: %w", field, internal)
		}
		fe.Add(field, verrs[field].Error())
	}

	return fe, nil
}
