// Package submissions persists the suggestions and issue reports collected
// by the suggest and report views.
package submissions

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Kind distinguishes what a submission was filed as.
type Kind string

const (
	KindSuggestion Kind = "suggestion"
	KindReport     Kind = "report"
)

// Field limits, in characters.
const (
	MaxSubjectLength = 200
	MaxBodyLength    = 5000
	MaxContactLength = 200
)

func (k Kind) Valid() bool {
	return k == KindSuggestion || k == KindReport
}

// Submission is a stored suggestion or report.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Contact   *string   `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommand carries the fields of a new submission.
type CreateCommand struct {
	Kind    Kind    `json:"kind"`
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
	Contact *string `json:"contact,omitempty"`
}

// Normalize trims surrounding whitespace and drops an empty contact.
func (c *CreateCommand) Normalize() {
	c.Subject = strings.TrimSpace(c.Subject)
	c.Body = strings.TrimSpace(c.Body)
	if c.Contact != nil {
		v := strings.TrimSpace(*c.Contact)
		if v == "" {
			c.Contact = nil
		} else {
			c.Contact = &v
		}
	}
}

// Validate reports every invalid field. The returned error is a
// *ValidationError matching ErrInvalid.
func (c CreateCommand) Validate() error {
	fields := FieldErrors{}

	if !c.Kind.Valid() {
		fields["kind"] = fmt.Sprintf("unknown kind %q", c.Kind)
	}
	checkText(fields, "subject", c.Subject, MaxSubjectLength, true)
	checkText(fields, "body", c.Body, MaxBodyLength, true)
	if c.Contact != nil {
		checkText(fields, "contact", *c.Contact, MaxContactLength, false)
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func checkText(fields FieldErrors, name, value string, max int, required bool) {
	switch {
	case !utf8.ValidString(value) || strings.ContainsRune(value, 0):
		fields[name] = "contains invalid characters"
	case required && strings.TrimSpace(value) == "":
		fields[name] = "is required"
	case utf8.RuneCountInString(value) > max:
		fields[name] = fmt.Sprintf("must be at most %d characters", max)
	}
}

// FieldErrors maps a form field to its validation message.
type FieldErrors map[string]string

// ValidationError lists the fields of a CreateCommand that failed validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
