package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "ReplyFlow", "https://app.replyflow.io", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "from@example.com", svc.fromEmail)
	assert.Equal(t, "ReplyFlow", svc.fromName)
	assert.Equal(t, "https://app.replyflow.io", svc.baseURL)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("from@example.com", "ReplyFlow", "https://app.replyflow.io", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendWelcomeEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "ReplyFlow", "https://app.replyflow.io", "")

	err := svc.SendWelcomeEmail("user@example.com", "Test User")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendTrialEndingSoonEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "ReplyFlow", "https://app.replyflow.io", "")

	err := svc.SendTrialEndingSoonEmail("user@example.com", "Test User", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendPasswordResetEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "ReplyFlow", "https://app.replyflow.io", "")

	err := svc.SendPasswordResetEmail("user@example.com", "Test User", "token-123")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendRawEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "ReplyFlow", "https://app.replyflow.io", "")

	err := svc.SendRawEmail("user@example.com", "Test User", "Subject", "<p>Body</p>", "Body")
	assert.NoError(t, err, "Console mode should not error")
}
