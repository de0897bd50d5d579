// Package contact holds the contact form domain: the user-entered form
// data, its ordered validation, the submission lifecycle, and delivery of
// accepted submissions to the configured endpoint.
package contact

import (
	"regexp"
	"strings"
)

// Validation messages surfaced inline above the form. Checks run in a
// fixed order and stop at the first failure, so at most one of these is
// shown at a time.
const (
	MessageNameRequired    = "Name is required"
	MessageEmailRequired   = "Email is required"
	MessageEmailInvalid    = "Please enter a valid email address"
	MessageMessageRequired = "Message is required"
)

// emailPattern is deliberately loose: something before the @, something
// after it, and a dot followed by at least one non-space character.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FormData carries the three user-entered contact fields for one form
// interaction. Fields survive failed deliveries verbatim and are cleared
// only after a successful one.
type FormData struct {
	Name    string
	Email   string
	Message string
}

// Clear resets every field to the empty string.
func (f *FormData) Clear() {
	if f == nil {
		return
	}
	*f = FormData{}
}

// IsEmpty reports whether every field is blank after trimming.
func (f FormData) IsEmpty() bool {
	return strings.TrimSpace(f.Name) == "" &&
		strings.TrimSpace(f.Email) == "" &&
		strings.TrimSpace(f.Message) == ""
}

// Validate checks the fields in fixed order: name presence, email
// presence, email format, message presence. It returns the first failing
// message and false, or "" and true when every check passes.
func (f FormData) Validate() (string, bool) {
	if strings.TrimSpace(f.Name) == "" {
		return MessageNameRequired, false
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		return MessageEmailRequired, false
	}
	if !emailPattern.MatchString(email) {
		return MessageEmailInvalid, false
	}
	if strings.TrimSpace(f.Message) == "" {
		return MessageMessageRequired, false
	}
	return "", true
}
