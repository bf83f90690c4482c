package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2/log"

	"github.com/vantascaling/website/internal/pkg/config"
)

// Embed colors used by the chat channel.
const (
	ColorInfo    = 0x00d4ff // Vanta blue
	ColorSuccess = 0x00ff00
)

// maxFieldLength is the chat webhook's per-field value limit.
const maxFieldLength = 1024

// EventField is one key/value pair of a chat event.
type EventField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Event is a structured summary of something that happened (a submission, a
// scheduled call, a completed purchase) destined for the chat webhook.
type Event struct {
	Title  string
	Color  int
	Fields []EventField
	Footer string
}

// EmailSender delivers a single HTML mail.
type EmailSender interface {
	Send(to, subject, body string) error
}

// Notifier dispatches best-effort notifications to the chat webhook and to
// the transactional mailer. Every failure is logged and swallowed; a
// downstream outage must never fail the originating request.
type Notifier struct {
	webhookURL string
	client     *http.Client
	mailer     EmailSender
	adminEmail string
}

// NewNotifier builds a Notifier from explicit configuration.
func NewNotifier(cfg config.Config, mailer EmailSender) *Notifier {
	return &Notifier{
		webhookURL: cfg.ChatWebhookURL,
		client:     &http.Client{Timeout: cfg.OutboundTimeout},
		mailer:     mailer,
		adminEmail: cfg.AdminEmail,
	}
}

// AdminEmail is the recipient for admin-facing notification mail.
func (n *Notifier) AdminEmail() string {
	return n.adminEmail
}

// NotifyChat posts the event to the chat webhook. The returned error is for
// the dispatcher's log line only; callers never propagate it.
func (n *Notifier) NotifyChat(event Event) error {
	if n.webhookURL == "" {
		log.Debug("[Notify] chat webhook not configured, skipping")
		return nil
	}

	for i := range event.Fields {
		if len(event.Fields[i].Value) > maxFieldLength {
			event.Fields[i].Value = truncateField(event.Fields[i].Value)
		}
	}

	payload := map[string]any{
		"embeds": []map[string]any{{
			"title":     event.Title,
			"color":     event.Color,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"fields":    event.Fields,
			"footer":    map[string]string{"text": event.Footer},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal chat event: %w", err)
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post chat event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chat webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// truncateField cuts an over-long field value to the webhook limit without
// splitting a multi-byte rune at the cut point.
func truncateField(value string) string {
	cut := value[:maxFieldLength-3]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut + "..."
}

// NotifyEmail sends one mail through the transactional mailer. Same
// best-effort contract as NotifyChat.
func (n *Notifier) NotifyEmail(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("email recipient missing")
	}
	return n.mailer.Send(to, subject, body)
}
