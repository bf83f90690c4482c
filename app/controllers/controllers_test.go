package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vantascaling/website/app/models"
	"github.com/vantascaling/website/app/repository"
	"github.com/vantascaling/website/internal/pkg/config"
	"github.com/vantascaling/website/internal/pkg/middleware"
	"github.com/vantascaling/website/internal/pkg/notify"
	"github.com/vantascaling/website/internal/pkg/payment"
)

const testAdminKey = "test-admin-key"

type sentMail struct {
	To      string
	Subject string
}

type chanMailer struct {
	mails chan sentMail
}

func (m *chanMailer) Send(to, subject, body string) error {
	m.mails <- sentMail{To: to, Subject: subject}
	return nil
}

// fakePaymentClient satisfies payment.Client without talking to Stripe.
type fakePaymentClient struct {
	session   payment.Session
	createErr error
	verifyErr error
}

func (f *fakePaymentClient) CreateCheckoutSession(ctx context.Context, params payment.CheckoutParams) (payment.Session, error) {
	if f.createErr != nil {
		return payment.Session{}, f.createErr
	}
	return f.session, nil
}

func (f *fakePaymentClient) VerifyWebhookSignature(payload []byte, sigHeader string) error {
	return f.verifyErr
}

func (f *fakePaymentClient) ParseWebhookEvent(payload []byte) (payment.WebhookEvent, error) {
	var event payment.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return payment.WebhookEvent{}, err
	}
	return event, nil
}

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	repos    *repository.Repositories
	chatHits chan []byte
	mails    chan sentMail
}

func newTestEnv(t *testing.T, payments payment.Client) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ContactMessage{},
		&models.Appointment{},
		&models.Purchase{},
	))
	repos := repository.NewRepositories(db)

	chatHits := make(chan []byte, 16)
	chatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		chatHits <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(chatSrv.Close)

	mails := make(chan sentMail, 16)
	cfg := config.Config{
		ChatWebhookURL:  chatSrv.URL,
		AdminEmail:      "admin@example.com",
		OutboundTimeout: 2 * time.Second,
	}
	notifier := notify.NewNotifier(cfg, &chanMailer{mails: mails})
	dispatcher := notify.NewDispatcher(2, 32)
	dispatcher.Start()
	t.Cleanup(dispatcher.Stop)

	intake := NewIntakeController(repos, notifier, dispatcher)
	checkout := NewCheckoutController(repos.Purchase, payments, notifier, dispatcher, "http://localhost:3000")
	admin := NewAdminController(repos)

	app := fiber.New()
	app.Post("/api/contact", intake.HandleContactSubmit)
	app.Post("/api/schedule", intake.HandleScheduleSubmit)
	app.Post("/api/create-checkout-session", checkout.HandleCreateCheckoutSession)
	app.Post("/api/webhook", checkout.HandleCheckoutWebhook)
	adminGroup := app.Group("/api/admin", middleware.AdminKeyAuth(testAdminKey))
	adminGroup.Get("/contacts", admin.HandleAdminContacts)
	adminGroup.Get("/appointments", admin.HandleAdminAppointments)
	adminGroup.Get("/purchases", admin.HandleAdminPurchases)

	return &testEnv{app: app, db: db, repos: repos, chatHits: chatHits, mails: mails}
}

func newJSONRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) waitChat(t *testing.T) []byte {
	t.Helper()
	select {
	case hit := <-e.chatHits:
		return hit
	case <-time.After(2 * time.Second):
		t.Fatal("no chat notification was attempted")
		return nil
	}
}

// requireNoNotifications gives the dispatcher a moment to drain, then asserts
// nothing reached the chat webhook or the mailer.
func (e *testEnv) requireNoNotifications(t *testing.T) {
	t.Helper()
	time.Sleep(200 * time.Millisecond)
	select {
	case hit := <-e.chatHits:
		t.Fatalf("unexpected chat notification: %s", hit)
	default:
	}
	select {
	case m := <-e.mails:
		t.Fatalf("unexpected email to %s: %s", m.To, m.Subject)
	default:
	}
}

func (e *testEnv) waitMail(t *testing.T) sentMail {
	t.Helper()
	select {
	case m := <-e.mails:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("no email was attempted")
		return sentMail{}
	}
}
