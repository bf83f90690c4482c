package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/vantascaling/website/app/controllers"
	"github.com/vantascaling/website/internal/pkg/middleware"
)

// ApiRouter installs the JSON API: form intake, checkout, the payment
// webhook, and the key-guarded admin reads.
type ApiRouter struct {
	Intake   *controllers.IntakeController
	Checkout *controllers.CheckoutController
	Admin    *controllers.AdminController

	AdminAPIKey string
}

func (h *ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api")

	// Public form endpoints are rate limited; the processor webhook is not,
	// retried deliveries must never be throttled away.
	forms := api.Group("", limiter.New())
	forms.Post("/contact", h.Intake.HandleContactSubmit)
	forms.Post("/schedule", h.Intake.HandleScheduleSubmit)
	forms.Post("/create-checkout-session", h.Checkout.HandleCreateCheckoutSession)

	// Signature-verified in the controller.
	api.Post("/webhook", h.Checkout.HandleCheckoutWebhook)

	admin := api.Group("/admin", middleware.AdminKeyAuth(h.AdminAPIKey))
	admin.Get("/contacts", h.Admin.HandleAdminContacts)
	admin.Get("/appointments", h.Admin.HandleAdminAppointments)
	admin.Get("/purchases", h.Admin.HandleAdminPurchases)
}

// NewApiRouter bundles the controllers into a route group.
func NewApiRouter(intake *controllers.IntakeController, checkout *controllers.CheckoutController, admin *controllers.AdminController, adminAPIKey string) *ApiRouter {
	return &ApiRouter{
		Intake:      intake,
		Checkout:    checkout,
		Admin:       admin,
		AdminAPIKey: adminAPIKey,
	}
}
