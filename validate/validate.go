// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/danielhkuo/relief-board/models"
)

// Flash message variants
const (
	KindSuccess = "success"
	KindWarning = "warning"
	KindDanger  = "danger"
)

var contactPattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// ValidationError describes the first problem found in a submission.
type ValidationError struct {
	Field   string
	Message string
	Kind    string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Contact reports whether s is 10 to 15 digits.
func Contact(s string) bool {
	return contactPattern.MatchString(s)
}

func Urgency(s string) bool {
	switch s {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
		return true
	}
	return false
}

// Resource checks a volunteer submission and returns the trimmed input.
func Resource(req models.AddResourceRequest) (models.ResourceInput, error) {
	typ := strings.TrimSpace(req.Type)
	if typ == models.OtherType {
		typ = strings.TrimSpace(req.CustomType)
		if typ == "" {
			return models.ResourceInput{}, &ValidationError{
				Field:   "custom_type",
				Message: "Please specify your resource/service.",
				Kind:    KindDanger,
			}
		}
	}

	in := models.ResourceInput{
		Type:      typ,
		Qty:       strings.TrimSpace(req.Qty),
		Location:  strings.TrimSpace(req.Location),
		Timeframe: strings.TrimSpace(req.Timeframe),
		Details:   strings.TrimSpace(req.Details),
		Contact:   strings.TrimSpace(req.Contact),
	}

	if name := missing(
		field{"type", in.Type},
		field{"qty", in.Qty},
		field{"location", in.Location},
		field{"contact", in.Contact},
	); name != "" {
		return models.ResourceInput{}, &ValidationError{
			Field:   name,
			Message: "Please fill in all required resource fields including contact.",
			Kind:    KindDanger,
		}
	}
	if !Contact(in.Contact) {
		return models.ResourceInput{}, &ValidationError{
			Field:   "contact",
			Message: "Please enter a valid contact number (10 to 15 digits).",
			Kind:    KindWarning,
		}
	}

	return in, nil
}

// Request checks a victim submission and returns the trimmed input.
func Request(req models.CreateRequestRequest) (models.RequestInput, error) {
	in := models.RequestInput{
		Name:           strings.TrimSpace(req.Name),
		Urgency:        strings.TrimSpace(req.Urgency),
		Contact:        strings.TrimSpace(req.Contact),
		VictimLocation: strings.TrimSpace(req.VictimLocation),
		Details:        strings.TrimSpace(req.Details),
	}

	if name := missing(
		field{"name", in.Name},
		field{"urgency", in.Urgency},
		field{"contact", in.Contact},
		field{"victimLocation", in.VictimLocation},
	); name != "" {
		return models.RequestInput{}, &ValidationError{
			Field:   name,
			Message: "Please fill all required personal details including location.",
			Kind:    KindWarning,
		}
	}
	if !Urgency(in.Urgency) {
		return models.RequestInput{}, &ValidationError{
			Field:   "urgency",
			Message: "Please choose an urgency of Low, Medium or High.",
			Kind:    KindWarning,
		}
	}
	if !Contact(in.Contact) {
		return models.RequestInput{}, &ValidationError{
			Field:   "contact",
			Message: "Please enter a valid contact number (10 to 15 digits).",
			Kind:    KindWarning,
		}
	}

	return in, nil
}

type field struct {
	name  string
	value string
}

// missing returns the name of the first empty field.
func missing(fields ...field) string {
	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}
