package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseMarkCompleted(t *testing.T) {
	p := Purchase{
		StripeSessionID: "cs_test_123",
		CustomerEmail:   PendingCustomerEmail,
		Status:          PurchaseStatusPending,
	}

	require.NoError(t, p.MarkCompleted("buyer@example.com"))
	assert.Equal(t, PurchaseStatusCompleted, p.Status)
	assert.Equal(t, "buyer@example.com", p.CustomerEmail)
}

func TestPurchaseMarkCompleted_KeepsEmailWhenMissing(t *testing.T) {
	p := Purchase{CustomerEmail: PendingCustomerEmail, Status: PurchaseStatusPending}

	require.NoError(t, p.MarkCompleted(""))
	assert.Equal(t, PurchaseStatusCompleted, p.Status)
	assert.Equal(t, PendingCustomerEmail, p.CustomerEmail)
}

func TestPurchaseMarkCompleted_NeverRevertsToPending(t *testing.T) {
	p := Purchase{CustomerEmail: "buyer@example.com", Status: PurchaseStatusCompleted}

	err := p.MarkCompleted("other@example.com")
	require.ErrorIs(t, err, ErrPurchaseAlreadyCompleted)
	assert.Equal(t, PurchaseStatusCompleted, p.Status)
	assert.Equal(t, "buyer@example.com", p.CustomerEmail)
}
