package forms

import "strings"

// Contact is one contact form submission.
type Contact struct {
	Name    string `validate:"notblank"`
	Email   string `validate:"notblank,loose_email"`
	Message string `validate:"notblank"`
}

var contactPriority = []tagError{
	{tag: "notblank", err: ErrFieldsRequired},
	{tag: "loose_email", err: ErrInvalidEmail},
}

// ValidateContact returns ErrFieldsRequired if any field is blank, else
// ErrInvalidEmail if the email is not shaped like a@b.c, else nil.
func ValidateContact(c Contact) error {
	if err := validate.Struct(c); err != nil {
		return mapTagErrors(err, contactPriority)
	}
	return nil
}

// Contact form field indexes, in tab order.
const (
	ContactName = iota
	ContactEmail
	ContactMessage
	ContactFieldCount
)

// ContactForm is the editable state behind the contact form view.
type ContactForm struct {
	Name      string
	Email     string
	Message   string
	Err       error
	Submitted *Contact
}

// Edit applies a change to one field and clears any shown error.
func (f *ContactForm) Edit(field int, value string) {
	switch field {
	case ContactName:
		f.Name = value
	case ContactEmail:
		f.Email = value
	case ContactMessage:
		f.Message = value
	}
	f.Err = nil
}

// Field returns the current value of a field by index.
func (f *ContactForm) Field(field int) string {
	switch field {
	case ContactName:
		return f.Name
	case ContactEmail:
		return f.Email
	case ContactMessage:
		return f.Message
	}
	return ""
}

// Submit validates the form. On success the values are kept in Submitted
// and the inputs are cleared; on failure Submitted is cleared and Err set.
func (f *ContactForm) Submit() error {
	c := Contact{Name: f.Name, Email: f.Email, Message: f.Message}
	if err := ValidateContact(c); err != nil {
		f.Err = err
		f.Submitted = nil
		return err
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)
	f.Err = nil
	f.Submitted = &c
	f.Name, f.Email, f.Message = "", "", ""
	return nil
}
