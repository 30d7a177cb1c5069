package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Values holds the raw form inputs plus the carried timestamps.
type Values struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	DueDate     string `validate:"required,datetime=2006-01-02"`
	Priority    string `validate:"required,oneof=high medium low"`
	Tags        string `validate:"required"`
	Status      string `validate:"required,oneof=inprocess pending completed"`
	AssignedTo  string `validate:"required"`
	CreatedAt   string
	UpdatedAt   string
}

var validate = validator.New()

// structFields maps Values field names to form fields.
var structFields = map[string]Field{
	"Title":       FieldTitle,
	"Description": FieldDescription,
	"DueDate":     FieldDueDate,
	"Priority":    FieldPriority,
	"Tags":        FieldTags,
	"Status":      FieldStatus,
	"AssignedTo":  FieldAssignedTo,
}

// Validate returns one message per invalid field. An empty map means v can be submitted.
func Validate(v Values) map[Field]string {
	errs := map[Field]string{}

	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable with a programming error in the struct tags.
		panic(fmt.Sprintf("form: unexpected validation error: %v", err))
	}

	for _, fe := range fieldErrs {
		f, ok := structFields[fe.StructField()]
		if !ok {
			continue
		}
		if _, seen := errs[f]; seen {
			continue
		}
		errs[f] = messageFor(f, fe.Tag())
	}
	return errs
}

func messageFor(f Field, tag string) string {
	if tag == "datetime" {
		return "Enter a valid due date (YYYY-MM-DD)"
	}
	return f.requiredMessage()
}

// ValidationError is returned when a submit is blocked by invalid fields.
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string {
	var parts []string
	for _, f := range Fields {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(f.Label()), msg))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
