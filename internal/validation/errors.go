package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalid is matched by every error produced in this package.
var ErrInvalid = errors.New("validation failed")

// FieldError is a user-correctable rejection of a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrInvalid
}

// Errors collects field errors reported while validating one input.
type Errors struct {
	Fields map[string][]string
}

func (e *Errors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// AddError records err under its own fields when it is a *FieldError or
// *Errors and under field otherwise. Nil errors are ignored.
func (e *Errors) AddError(field string, err error) {
	if err == nil {
		return
	}
	var multi *Errors
	if errors.As(err, &multi) {
		for f, messages := range multi.Fields {
			for _, message := range messages {
				e.Add(f, message)
			}
		}
		return
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		e.Add(fe.Field, fe.Message)
		return
	}
	e.Add(field, err.Error())
}

func (e *Errors) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], ", "))
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Errors) Unwrap() error {
	return ErrInvalid
}

// Required records a "This field is required." error when value is blank.
func (e *Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, MsgRequired)
	}
}

const MsgRequired = "This field is required."
