package controllers

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vantascaling/website/app/models"
	"github.com/vantascaling/website/app/repository"
	"github.com/vantascaling/website/internal/pkg/mail"
	"github.com/vantascaling/website/internal/pkg/notify"
	"github.com/vantascaling/website/internal/pkg/payment"
)

// checkoutPlan is one purchasable package.
type checkoutPlan struct {
	Name        string
	Product     string
	Description string
	ImageURL    string
	Amount      int64 // currency minor units
}

const defaultPlanID = "trial-surge"

var checkoutPlans = map[string]checkoutPlan{
	"trial-surge": {
		Name:        "Trial Surge",
		Product:     "Trial Surge - Vanta Scaling",
		Description: "Try-before-you-scale: Strategy call, audit, 3-day campaign, 1 week support",
		ImageURL:    "https://vantascaling.com/logo.png",
		Amount:      19700, // $197.00
	},
}

// CheckoutController brokers hosted checkout sessions and the payment
// confirmation webhook.
type CheckoutController struct {
	purchases  repository.PurchaseRepository
	payments   payment.Client
	notifier   *notify.Notifier
	dispatcher *notify.Dispatcher
	baseURL    string
}

// NewCheckoutController wires the checkout handlers.
func NewCheckoutController(purchases repository.PurchaseRepository, payments payment.Client, notifier *notify.Notifier, dispatcher *notify.Dispatcher, baseURL string) *CheckoutController {
	return &CheckoutController{
		purchases:  purchases,
		payments:   payments,
		notifier:   notifier,
		dispatcher: dispatcher,
		baseURL:    baseURL,
	}
}

// HandleCreateCheckoutSession creates a hosted checkout session upstream and
// records the pending purchase. The upstream call runs first: if the local
// insert then fails we return a 500 and log the session id, so an orphaned
// upstream session is always discoverable from the logs.
func (ct *CheckoutController) HandleCreateCheckoutSession(c *fiber.Ctx) error {
	var body struct {
		Plan string `json:"plan"`
	}
	// Body is optional; an empty POST buys the default plan.
	_ = c.BodyParser(&body)

	planID := strings.TrimSpace(body.Plan)
	if planID == "" {
		planID = defaultPlanID
	}
	plan, ok := checkoutPlans[planID]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown plan"})
	}

	origin := strings.TrimSpace(c.Get(fiber.HeaderOrigin))
	if origin == "" {
		origin = ct.baseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	session, err := ct.payments.CreateCheckoutSession(ctx, payment.CheckoutParams{
		ProductName: plan.Product,
		Description: plan.Description,
		ImageURL:    plan.ImageURL,
		Amount:      plan.Amount,
		Currency:    "usd",
		PlanName:    plan.Name,
		SuccessURL:  origin + "/success.html?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/plans.html",
	})
	if err != nil {
		log.Printf("stripe error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create checkout session"})
	}

	purchase := &models.Purchase{
		StripeSessionID: session.ID,
		CustomerEmail:   models.PendingCustomerEmail,
		Amount:          plan.Amount,
		PlanName:        plan.Name,
		Status:          models.PurchaseStatusPending,
	}
	if err := ct.purchases.Create(purchase); err != nil {
		log.Printf("failed to record pending purchase for session %s: %v", session.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record purchase"})
	}

	return c.JSON(fiber.Map{"sessionId": session.ID, "url": session.URL})
}

// HandleCheckoutWebhook receives the payment processor's signed callback.
// Signature failures are rejected with no state change. Once the signature
// checks out the processor always gets a success acknowledgment, even for
// events we ignore, so it stops retrying.
func (ct *CheckoutController) HandleCheckoutWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	signature := strings.TrimSpace(c.Get("Stripe-Signature"))

	if err := ct.payments.VerifyWebhookSignature(rawBody, signature); err != nil {
		log.Printf("webhook signature rejected: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_signature"})
	}

	event, err := ct.payments.ParseWebhookEvent(rawBody)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_payload"})
	}

	if event.Type == payment.EventCheckoutCompleted {
		ct.completePurchase(event)
	}

	return c.JSON(fiber.Map{"received": true})
}

func (ct *CheckoutController) completePurchase(event payment.WebhookEvent) {
	sessionID := event.Data.Object.ID
	var customerEmail string
	if event.Data.Object.CustomerDetails != nil {
		customerEmail = event.Data.Object.CustomerDetails.Email
	}

	purchase, err := ct.purchases.MarkCompleted(sessionID, customerEmail)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Anomaly: the processor confirmed a session we never recorded.
		log.Printf("completed checkout for unknown session %s", sessionID)
		return
	case errors.Is(err, models.ErrPurchaseAlreadyCompleted):
		// Duplicate webhook delivery, already handled.
		return
	case err != nil:
		log.Printf("failed to complete purchase for session %s: %v", sessionID, err)
		return
	}

	ct.dispatcher.Enqueue("purchase-chat", func() error {
		return ct.notifier.NotifyChat(notify.Event{
			Title: "💰 New " + purchase.PlanName + " Purchase!",
			Color: notify.ColorSuccess,
			Fields: []notify.EventField{
				{Name: "📧 Customer Email", Value: purchase.CustomerEmail, Inline: true},
				{Name: "💵 Amount", Value: mail.FormatAmount(purchase.Amount), Inline: true},
				{Name: "📦 Package", Value: purchase.PlanName, Inline: true},
				{Name: "🆔 Session ID", Value: purchase.StripeSessionID},
			},
			Footer: "Vanta Scaling Purchase",
		})
	})
	ct.dispatcher.Enqueue("purchase-admin-mail", func() error {
		subject, body := mail.PurchaseAdminMail(purchase.CustomerEmail, purchase.PlanName, purchase.Amount, purchase.StripeSessionID)
		return ct.notifier.NotifyEmail(ct.notifier.AdminEmail(), subject, body)
	})
	if customerEmail != "" {
		ct.dispatcher.Enqueue("purchase-customer-mail", func() error {
			subject, body := mail.PurchaseCustomerMail()
			return ct.notifier.NotifyEmail(customerEmail, subject, body)
		})
	}
}
