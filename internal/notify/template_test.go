package notify

import (
	"strings"
	"testing"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewLeadMessage_FullSubmission(t *testing.T) {
	msg := NewLeadMessage("admin@example.com", &domain.LeadNotificationRequest{
		Name:         "Alice",
		Email:        "alice@example.com",
		Phone:        "555-0100",
		Company:      "Acme",
		ProjectType:  "E-commerce",
		BudgetRange:  "$1,000 - $5,000",
		Timeline:     "1 month",
		Features:     []string{"Responsive Design", "Payment Processing"},
		Requirements: "Must integrate with our ERP",
	})

	assert.Equal(t, "admin@example.com", msg.To)
	assert.Equal(t, "alice@example.com", msg.ReplyTo)
	assert.Equal(t, "New Lead: Alice (Acme)", msg.Subject)

	for _, want := range []string{
		"Name: Alice", "Email: alice@example.com", "Phone: 555-0100",
		"Company: Acme", "Project Type: E-commerce",
		"Budget Range: $1,000 - $5,000", "Timeline: 1 month",
		"Responsive Design", "Payment Processing",
		"Must integrate with our ERP",
	} {
		assert.Contains(t, msg.Body, want)
	}
	assert.Contains(t, msg.HTML, "<td>Acme</td>")
	assert.Contains(t, msg.HTML, "<li>Payment Processing</li>")
}

func TestNewLeadMessage_MinimalSubmission(t *testing.T) {
	msg := NewLeadMessage("admin@example.com", &domain.LeadNotificationRequest{
		Name:  "Bob",
		Email: "bob@example.com",
	})

	assert.Equal(t, "New Lead: Bob", msg.Subject, "no company suffix without a company")

	// Absent optional fields produce no row at all
	assert.NotContains(t, msg.Body, "Phone:")
	assert.NotContains(t, msg.Body, "Company:")
	assert.NotContains(t, msg.Body, "Project Type:")
	assert.NotContains(t, msg.Body, "Desired Features")
	assert.NotContains(t, msg.Body, "Additional Requirements")
	assert.NotContains(t, msg.HTML, "Phone")
}

func TestNewLeadMessage_EscapesHTML(t *testing.T) {
	msg := NewLeadMessage("admin@example.com", &domain.LeadNotificationRequest{
		Name:         "Mallory",
		Email:        "m@example.com",
		Requirements: "<script>alert(1)</script>",
	})

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestNewContactMessage(t *testing.T) {
	msg := NewContactMessage("admin@example.com", &domain.ContactRequest{
		Name:    "Carol",
		Email:   "carol@example.com",
		Subject: "Partnership",
		Message: "Let's talk next week.",
	})

	assert.Equal(t, "Contact Form: Partnership", msg.Subject)
	assert.Equal(t, "carol@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Body, "Let's talk next week.")
}

func TestNewContactMessage_DefaultSubject(t *testing.T) {
	msg := NewContactMessage("admin@example.com", &domain.ContactRequest{
		Name:    "Dan",
		Email:   "dan@example.com",
		Message: "Hello",
	})

	assert.Equal(t, "Contact Form: New Message", msg.Subject)
	assert.False(t, strings.Contains(msg.Body, "Subject:"))
}
