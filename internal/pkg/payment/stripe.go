// Package payment provides a lightweight Stripe API client for the checkout
// flow. Uses raw HTTP calls (no SDK) to keep the dependency surface small.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// EventCheckoutCompleted is the event type that confirms a paid session.
const EventCheckoutCompleted = "checkout.session.completed"

// signatureMaxAge bounds webhook timestamp skew (replay protection).
const signatureMaxAge = 5 * time.Minute

// ErrNotConfigured is returned when the Stripe keys are missing.
var ErrNotConfigured = errors.New("stripe: not configured")

// CheckoutParams describes the hosted checkout session to create.
type CheckoutParams struct {
	ProductName string
	Description string
	ImageURL    string
	Amount      int64 // currency minor units
	Currency    string
	PlanName    string // stored as session metadata
	SuccessURL  string
	CancelURL   string
}

// Session is the created hosted checkout session.
type Session struct {
	ID  string
	URL string
}

// WebhookEventObject is the data.object of a checkout webhook event.
type WebhookEventObject struct {
	ID              string            `json:"id"`
	CustomerDetails *CustomerDetails  `json:"customer_details"`
	Metadata        map[string]string `json:"metadata"`
}

// CustomerDetails carries the confirmed payer identity.
type CustomerDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// WebhookEvent is a parsed Stripe webhook event.
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object WebhookEventObject `json:"object"`
	} `json:"data"`
}

// Client is the payment processor interface used by the checkout handlers.
type Client interface {
	// CreateCheckoutSession creates a hosted checkout session.
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (Session, error)
	// VerifyWebhookSignature validates the Stripe-Signature header.
	VerifyWebhookSignature(payload []byte, sigHeader string) error
	// ParseWebhookEvent decodes a webhook payload.
	ParseWebhookEvent(payload []byte) (WebhookEvent, error)
}

// RealClient talks to the Stripe REST API over raw HTTP.
type RealClient struct {
	SecretKey     string
	WebhookSecret string // whsec_...
	httpClient    *http.Client
}

// NewClient creates a RealClient.
func NewClient(secretKey, webhookSecret string) *RealClient {
	return &RealClient{
		SecretKey:     secretKey,
		WebhookSecret: webhookSecret,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateCheckoutSession creates a one-time-payment checkout session and
// returns its id and hosted URL.
func (c *RealClient) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (Session, error) {
	if c.SecretKey == "" {
		return Session{}, ErrNotConfigured
	}

	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}

	data := url.Values{}
	data.Set("mode", "payment")
	data.Set("payment_method_types[0]", "card")
	data.Set("line_items[0][price_data][currency]", currency)
	data.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.Amount, 10))
	data.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.Description != "" {
		data.Set("line_items[0][price_data][product_data][description]", params.Description)
	}
	if params.ImageURL != "" {
		data.Set("line_items[0][price_data][product_data][images][0]", params.ImageURL)
	}
	data.Set("line_items[0][quantity]", "1")
	data.Set("success_url", params.SuccessURL)
	data.Set("cancel_url", params.CancelURL)
	if params.PlanName != "" {
		data.Set("metadata[plan]", params.PlanName)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.stripe.com/v1/checkout/sessions",
		strings.NewReader(data.Encode()))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.SecretKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, err
	}
	defer resp.Body.Close()

	var session struct {
		ID    string `json:"id"`
		URL   string `json:"url"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, err
	}
	if session.Error != nil {
		return Session{}, fmt.Errorf("stripe checkout error: %s", session.Error.Message)
	}
	if session.ID == "" {
		return Session{}, errors.New("stripe checkout: empty session id in response")
	}
	return Session{ID: session.ID, URL: session.URL}, nil
}

// VerifyWebhookSignature validates the Stripe-Signature header
// (t=<ts>,v1=<hmac-sha256>) against the webhook secret.
func (c *RealClient) VerifyWebhookSignature(payload []byte, sigHeader string) error {
	if c.WebhookSecret == "" {
		return ErrNotConfigured
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(sigHeader, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return errors.New("stripe: invalid signature header format")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return errors.New("stripe: invalid timestamp in signature header")
	}
	if skew := time.Since(time.Unix(ts, 0)); skew > signatureMaxAge || skew < -signatureMaxAge {
		return errors.New("stripe: webhook timestamp outside tolerance (replay attack protection)")
	}

	mac := hmac.New(sha256.New, []byte(c.WebhookSecret))
	mac.Write([]byte(timestamp + "." + string(payload)))
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return errors.New("stripe: signature verification failed")
}

// ParseWebhookEvent decodes the webhook payload.
func (c *RealClient) ParseWebhookEvent(payload []byte) (WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return WebhookEvent{}, err
	}
	return event, nil
}
