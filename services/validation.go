package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ValidationError reports malformed or out-of-range input fields. It is
// raised before any repository call and maps to 422 at the HTTP layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

type fieldErrors map[string]string

func (f fieldErrors) check(ok bool, field, message string) {
	if !ok {
		f[field] = message
	}
}

func (f fieldErrors) toError() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func lengthBetween(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}

// positiveOrNil validates optional ">= 1" integer fields.
func positiveOrNil(v *int) bool {
	return v == nil || *v >= 1
}
