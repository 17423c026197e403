package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation rule identifiers, reported alongside the violating field.
const (
	RuleRequired = "required"
	RuleMaxLen   = "maxlength"
	RuleFormat   = "format"
	RuleEnum     = "enum"
)

// emailPattern matches the address format the public form has always
// enforced. Changing it would reject addresses the site previously accepted.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// FieldViolation describes a single failed constraint.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every constraint violation found in a payload,
// in declaration order of the entity's fields.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// violations accumulates checks so validators read as a flat rule list.
type violations struct {
	list []FieldViolation
}

func (v *violations) add(field, rule, message string) {
	v.list = append(v.list, FieldViolation{Field: field, Rule: rule, Message: message})
}

func (v *violations) required(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, RuleRequired, message)
	}
}

// maxLen counts runes, not bytes, so multibyte input gets the same limit the
// form enforces client-side.
func (v *violations) maxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		v.add(field, RuleMaxLen, fmt.Sprintf("%s cannot be more than %d characters", field, max))
	}
}

func (v *violations) enum(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add(field, RuleEnum, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}
