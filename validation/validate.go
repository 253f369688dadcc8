// Package validation runs one validation pass per record type. Every write
// path in the content service goes through it, whichever handler triggered
// the write.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"restaurant-site/models"

	"github.com/go-playground/validator/v10"
)

// Error lists every field that failed validation.
type Error struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates a single record against its struct tags.
func Struct(record any) error {
	if err := instance().Struct(record); err != nil {
		return translate(err)
	}
	return nil
}

func MenuItem(item models.MenuItem) error { return Struct(item) }

func Category(c models.Category) error { return Struct(c) }

func Testimonial(t models.Testimonial) error { return Struct(t) }

func Admin(a models.AdminUser) error { return Struct(a) }

func Settings(s models.SiteSettings) error { return Struct(s) }

// MenuItems validates each item and checks ids are unique.
func MenuItems(items []models.MenuItem) error {
	ids := make(map[string]bool, len(items))
	var fields []FieldError
	for i, item := range items {
		fields = append(fields, prefixed(fmt.Sprintf("[%d]", i), MenuItem(item))...)
		if ids[item.ID] {
			fields = append(fields, FieldError{Field: fmt.Sprintf("[%d].id", i), Message: "duplicate id " + item.ID})
		}
		ids[item.ID] = true
	}
	return collect(fields)
}

// Categories validates each category and checks ids and names are unique.
func Categories(categories []models.Category) error {
	ids := make(map[string]bool, len(categories))
	names := make(map[string]bool, len(categories))
	var fields []FieldError
	for i, c := range categories {
		fields = append(fields, prefixed(fmt.Sprintf("[%d]", i), Category(c))...)
		if ids[c.ID] {
			fields = append(fields, FieldError{Field: fmt.Sprintf("[%d].id", i), Message: "duplicate id " + c.ID})
		}
		if names[c.Name] {
			fields = append(fields, FieldError{Field: fmt.Sprintf("[%d].name", i), Message: "duplicate name " + c.Name})
		}
		ids[c.ID] = true
		names[c.Name] = true
	}
	return collect(fields)
}

// Admins validates each account and checks usernames are unique.
func Admins(admins []models.AdminUser) error {
	usernames := make(map[string]bool, len(admins))
	var fields []FieldError
	for i, a := range admins {
		fields = append(fields, prefixed(fmt.Sprintf("[%d]", i), Admin(a))...)
		if usernames[a.Username] {
			fields = append(fields, FieldError{Field: fmt.Sprintf("[%d].username", i), Message: "duplicate username " + a.Username})
		}
		usernames[a.Username] = true
	}
	return collect(fields)
}

func prefixed(prefix string, err error) []FieldError {
	var verr *Error
	if !errors.As(err, &verr) {
		return nil
	}
	out := make([]FieldError, len(verr.Fields))
	for i, f := range verr.Fields {
		out[i] = FieldError{Field: prefix + "." + f.Field, Message: f.Message}
	}
	return out
}

func collect(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return &Error{Fields: fields}
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "hexcolor":
		return "must be a hex color"
	}
	return "failed " + fe.Tag() + " check"
}
