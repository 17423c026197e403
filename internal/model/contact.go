package model

import "time"

// Contact statuses. These tokens are part of the wire contract: the admin
// dashboard filters and displays by the literal strings.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

const (
	maxFullNameLen    = 100
	maxCompanyNameLen = 200
	maxMessageLen     = 2000
)

// Contact is a message submitted via the public contact form.
type Contact struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	CompanyName string    `json:"companyName,omitempty"`
	Email       string    `json:"email"`
	ProjectType string    `json:"projectType,omitempty"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ApplyDefaults fills fields the form is allowed to omit.
func (c *Contact) ApplyDefaults() {
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
}

// Validate checks every constraint and returns a *ValidationError listing all
// violations, or nil if the contact is valid.
func (c *Contact) Validate() error {
	var v violations
	v.required("fullName", c.FullName, "Please provide your full name")
	v.maxLen("fullName", c.FullName, maxFullNameLen)
	v.maxLen("companyName", c.CompanyName, maxCompanyNameLen)
	v.required("email", c.Email, "Please provide your email")
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		v.add("email", RuleFormat, "Please provide a valid email address")
	}
	v.required("message", c.Message, "Please provide a message")
	v.maxLen("message", c.Message, maxMessageLen)
	v.enum("status", c.Status, ContactStatusNew, ContactStatusRead, ContactStatusReplied)
	return v.err()
}
