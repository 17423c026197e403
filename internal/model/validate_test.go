package model

import (
	"errors"
	"strings"
	"testing"
)

func violationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	fields := make(map[string]string)
	for _, v := range ve.Violations {
		fields[v.Field] = v.Rule
	}
	return fields
}

func TestContactValidate_Valid(t *testing.T) {
	c := &Contact{
		FullName: "Alice Doe",
		Email:    "alice@example.com",
		Message:  "Hello, I'd like a quote.",
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		t.Errorf("expected valid contact, got %v", err)
	}
	if c.Status != ContactStatusNew {
		t.Errorf("expected default status=new, got %q", c.Status)
	}
}

// TestContactValidate_ReportsAllViolations verifies that a payload violating
// several rules at once gets every violation reported, not just the first.
func TestContactValidate_ReportsAllViolations(t *testing.T) {
	c := &Contact{FullName: "", Email: "bad", Message: ""}
	c.ApplyDefaults()
	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	fields := violationFields(t, err)
	if fields["fullName"] != RuleRequired {
		t.Errorf("expected fullName/required violation, got %v", fields)
	}
	if fields["email"] != RuleFormat {
		t.Errorf("expected email/format violation, got %v", fields)
	}
	if fields["message"] != RuleRequired {
		t.Errorf("expected message/required violation, got %v", fields)
	}
}

func TestContactValidate_EmailPattern(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "a_b-c@mail.example.org"}
	invalid := []string{"bad", "@example.com", "a@", "a b@example.com", "a@example"}

	for _, email := range valid {
		c := &Contact{FullName: "A", Email: email, Message: "hi", Status: ContactStatusNew}
		if err := c.Validate(); err != nil {
			t.Errorf("expected %q to be accepted, got %v", email, err)
		}
	}
	for _, email := range invalid {
		c := &Contact{FullName: "A", Email: email, Message: "hi", Status: ContactStatusNew}
		if c.Validate() == nil {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}

func TestContactValidate_MessageTooLong(t *testing.T) {
	c := &Contact{
		FullName: "A",
		Email:    "a@example.com",
		Message:  strings.Repeat("x", 2001),
		Status:   ContactStatusNew,
	}
	fields := violationFields(t, c.Validate())
	if fields["message"] != RuleMaxLen {
		t.Errorf("expected message/maxlength violation, got %v", fields)
	}

	c.Message = strings.Repeat("x", 2000)
	if err := c.Validate(); err != nil {
		t.Errorf("expected 2000-char message to be accepted, got %v", err)
	}
}

// TestContactValidate_MaxLenCountsRunes verifies limits apply per character,
// not per byte.
func TestContactValidate_MaxLenCountsRunes(t *testing.T) {
	c := &Contact{
		FullName: strings.Repeat("あ", 100),
		Email:    "a@example.com",
		Message:  "hi",
		Status:   ContactStatusNew,
	}
	if err := c.Validate(); err != nil {
		t.Errorf("expected 100-rune name to be accepted, got %v", err)
	}
}

func TestContactValidate_StatusEnumClosed(t *testing.T) {
	c := &Contact{FullName: "A", Email: "a@example.com", Message: "hi", Status: "archived"}
	fields := violationFields(t, c.Validate())
	if fields["status"] != RuleEnum {
		t.Errorf("expected status/enum violation, got %v", fields)
	}

	for _, s := range []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied} {
		c.Status = s
		if err := c.Validate(); err != nil {
			t.Errorf("expected status %q to be accepted, got %v", s, err)
		}
	}
}

func TestProjectValidate_Valid(t *testing.T) {
	p := &Project{Title: "Site relaunch", Description: "Full rebuild", Category: "web"}
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		t.Errorf("expected valid project, got %v", err)
	}
	if p.Status != ProjectStatusActive {
		t.Errorf("expected default status=active, got %q", p.Status)
	}
	if p.Technologies == nil {
		t.Error("expected defaulted technologies to be an empty slice, not nil")
	}
}

func TestProjectValidate_RequiredFields(t *testing.T) {
	p := &Project{Status: ProjectStatusActive}
	fields := violationFields(t, p.Validate())
	for _, f := range []string{"title", "description", "category"} {
		if fields[f] != RuleRequired {
			t.Errorf("expected %s/required violation, got %v", f, fields)
		}
	}
}

func TestProjectValidate_TitleTooLong(t *testing.T) {
	p := &Project{
		Title:       strings.Repeat("t", 201),
		Description: "d",
		Category:    "c",
		Status:      ProjectStatusActive,
	}
	fields := violationFields(t, p.Validate())
	if fields["title"] != RuleMaxLen {
		t.Errorf("expected title/maxlength violation, got %v", fields)
	}
}

func TestProjectValidate_StatusEnumClosed(t *testing.T) {
	p := &Project{Title: "t", Description: "d", Category: "c", Status: "archived"}
	fields := violationFields(t, p.Validate())
	if fields["status"] != RuleEnum {
		t.Errorf("expected status/enum violation, got %v", fields)
	}

	for _, s := range []string{ProjectStatusActive, ProjectStatusInProgress, ProjectStatusCompleted} {
		p.Status = s
		if err := p.Validate(); err != nil {
			t.Errorf("expected status %q to be accepted, got %v", s, err)
		}
	}
}

// TestValidationError_MessageJoinsViolations verifies the envelope error text
// is deterministic and cites each broken rule.
func TestValidationError_MessageJoinsViolations(t *testing.T) {
	c := &Contact{FullName: "", Email: "bad", Message: "", Status: ContactStatusNew}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"full name", "valid email", "message"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error message to mention %q, got %q", want, msg)
		}
	}
}
