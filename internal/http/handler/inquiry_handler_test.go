package handler_test

import (
	"net/http"
	"testing"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyLead_MinimalFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/leads", map[string]interface{}{
		"name":  "Bob Minimal",
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeBody[domain.NotificationResultDTO](t, rec)
	assert.Equal(t, "recording", result.Provider)
	assert.NotEmpty(t, result.Message)

	require.Len(t, env.sender.messages, 1)
	msg := env.sender.messages[0]
	assert.Equal(t, "New Lead: Bob Minimal", msg.Subject)
	assert.Equal(t, "bob@example.com", msg.ReplyTo)
	assert.NotContains(t, msg.Body, "Company:")

	// Notify-only: nothing lands in the leads table
	leads := decodeBody[[]domain.LeadDTO](t, env.do(t, http.MethodGet, "/api/clients", nil))
	assert.Empty(t, leads)
}

func TestNotifyLead_RequiresNameAndEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/leads", map[string]interface{}{
		"company": "Acme",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[domain.ErrorResponse](t, rec)
	fields := make(map[string]bool)
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.Empty(t, env.sender.messages)
}

func TestNotifyLead_DeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	env.sender.fail = true

	rec := env.do(t, http.MethodPost, "/api/leads", map[string]interface{}{
		"name":  "Bob Minimal",
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody[domain.ErrorResponse](t, rec)
	assert.NotEmpty(t, body.Message)
}

func TestNotifyContact(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Carol Caller",
		"email":   "carol@example.com",
		"subject": "Partnership",
		"message": "Let's talk next week.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, env.sender.messages, 1)
	assert.Equal(t, "Contact Form: Partnership", env.sender.messages[0].Subject)
}

func TestNotifyContact_RequiresMessage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":  "Carol Caller",
		"email": "carol@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.sender.messages)
}
