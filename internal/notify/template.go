package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
)

// Email body builders for the intake and contact forms. Optional fields are
// rendered only when present; an absent field produces no row at all.

// NewLeadMessage builds the notification for a project-intake submission
func NewLeadMessage(adminEmail string, req *domain.LeadNotificationRequest) Message {
	subject := "New Lead: " + req.Name
	if req.Company != "" {
		subject += fmt.Sprintf(" (%s)", req.Company)
	}

	var text strings.Builder
	text.WriteString("New Lead Submission\n\n")
	writeTextField(&text, "Name", req.Name)
	writeTextField(&text, "Email", req.Email)
	writeTextField(&text, "Phone", req.Phone)
	writeTextField(&text, "Company", req.Company)
	writeTextField(&text, "Project Type", req.ProjectType)
	writeTextField(&text, "Budget Range", req.BudgetRange)
	writeTextField(&text, "Timeline", req.Timeline)
	if len(req.Features) > 0 {
		text.WriteString("\nDesired Features:\n")
		for _, f := range req.Features {
			fmt.Fprintf(&text, "  - %s\n", f)
		}
	}
	if req.Requirements != "" {
		text.WriteString("\nAdditional Requirements:\n")
		text.WriteString(req.Requirements)
		text.WriteString("\n")
	}

	var htm strings.Builder
	htm.WriteString("<h2>New Lead Submission</h2>\n<table>\n")
	writeHTMLRow(&htm, "Name", req.Name)
	writeHTMLRow(&htm, "Email", req.Email)
	writeHTMLRow(&htm, "Phone", req.Phone)
	writeHTMLRow(&htm, "Company", req.Company)
	writeHTMLRow(&htm, "Project Type", req.ProjectType)
	writeHTMLRow(&htm, "Budget Range", req.BudgetRange)
	writeHTMLRow(&htm, "Timeline", req.Timeline)
	htm.WriteString("</table>\n")
	if len(req.Features) > 0 {
		htm.WriteString("<h3>Desired Features</h3>\n<ul>\n")
		for _, f := range req.Features {
			fmt.Fprintf(&htm, "<li>%s</li>\n", html.EscapeString(f))
		}
		htm.WriteString("</ul>\n")
	}
	if req.Requirements != "" {
		htm.WriteString("<h3>Additional Requirements</h3>\n")
		fmt.Fprintf(&htm, "<p>%s</p>\n", html.EscapeString(req.Requirements))
	}

	return Message{
		To:      adminEmail,
		ReplyTo: req.Email,
		Subject: subject,
		Body:    text.String(),
		HTML:    htm.String(),
	}
}

// NewContactMessage builds the notification for a contact-form submission
func NewContactMessage(adminEmail string, req *domain.ContactRequest) Message {
	subject := "Contact Form: New Message"
	if req.Subject != "" {
		subject = "Contact Form: " + req.Subject
	}

	var text strings.Builder
	text.WriteString("New Contact Form Submission\n\n")
	writeTextField(&text, "Name", req.Name)
	writeTextField(&text, "Email", req.Email)
	writeTextField(&text, "Phone", req.Phone)
	writeTextField(&text, "Subject", req.Subject)
	text.WriteString("\nMessage:\n")
	text.WriteString(req.Message)
	text.WriteString("\n")

	var htm strings.Builder
	htm.WriteString("<h2>New Contact Form Submission</h2>\n<table>\n")
	writeHTMLRow(&htm, "Name", req.Name)
	writeHTMLRow(&htm, "Email", req.Email)
	writeHTMLRow(&htm, "Phone", req.Phone)
	writeHTMLRow(&htm, "Subject", req.Subject)
	htm.WriteString("</table>\n<h3>Message</h3>\n")
	fmt.Fprintf(&htm, "<p>%s</p>\n", html.EscapeString(req.Message))

	return Message{
		To:      adminEmail,
		ReplyTo: req.Email,
		Subject: subject,
		Body:    text.String(),
		HTML:    htm.String(),
	}
}

func writeTextField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func writeHTMLRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>\n",
		html.EscapeString(label), html.EscapeString(value))
}
