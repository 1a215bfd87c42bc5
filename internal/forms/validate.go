// Package forms validates the contact form and the create-post form.
package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrFieldsRequired = errors.New("All fields are required.")
	ErrInvalidEmail   = errors.New("Invalid email address")
	ErrTitleRequired  = errors.New("Post title is required.")
	ErrUserIDRange    = errors.New("User ID must be between 1 and 10.")
)

var looseEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

var validate *validator.Validate

// customRules are the tags used by the form structs on top of the built-ins.
var customRules = map[string]validator.Func{
	"notblank":    validateNotBlank,
	"loose_email": validateLooseEmail,
}

func init() {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	validate = v
}

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	for tag, fn := range customRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s rule: %w", tag, err)
		}
	}
	return v, nil
}

// validateNotBlank rejects strings that are empty after trimming.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateLooseEmail accepts anything shaped like a@b.c.
func validateLooseEmail(fl validator.FieldLevel) bool {
	return looseEmail.MatchString(fl.Field().String())
}

type tagError struct {
	tag string
	err error
}

// mapTagErrors returns the form error of the highest-priority failing tag.
// priority is ordered: a blank field anywhere wins over a bad email.
func mapTagErrors(err error, priority []tagError) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	for _, p := range priority {
		for _, fe := range verrs {
			if fe.Tag() == p.tag {
				return p.err
			}
		}
	}
	return err
}
