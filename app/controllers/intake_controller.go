package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vantascaling/website/app/repository"
	"github.com/vantascaling/website/internal/pkg/forms"
	"github.com/vantascaling/website/internal/pkg/mail"
	"github.com/vantascaling/website/internal/pkg/notify"
)

// IntakeController handles the form submission endpoints. Each request runs
// validate -> persist -> notify -> respond; the two notification channels are
// queued on the dispatcher and never block the response.
type IntakeController struct {
	repos      *repository.Repositories
	notifier   *notify.Notifier
	dispatcher *notify.Dispatcher
}

// NewIntakeController wires the intake handlers.
func NewIntakeController(repos *repository.Repositories, notifier *notify.Notifier, dispatcher *notify.Dispatcher) *IntakeController {
	return &IntakeController{repos: repos, notifier: notifier, dispatcher: dispatcher}
}

// HandleContactSubmit processes the contact form.
func (ct *IntakeController) HandleContactSubmit(c *fiber.Ctx) error {
	var form forms.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := form.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "fields": errs})
	}

	contact := form.ToModel()
	if err := ct.repos.Contact.Create(contact); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save contact"})
	}

	ct.dispatcher.Enqueue("contact-chat", func() error {
		return ct.notifier.NotifyChat(notify.Event{
			Title: "📬 New Contact Form Submission",
			Color: notify.ColorInfo,
			Fields: []notify.EventField{
				{Name: "👤 Name", Value: contact.Name, Inline: true},
				{Name: "📧 Email", Value: contact.Email, Inline: true},
				{Name: "💬 Message", Value: contact.Message},
			},
			Footer: "Vanta Scaling Contact Form",
		})
	})
	ct.dispatcher.Enqueue("contact-admin-mail", func() error {
		subject, body := mail.ContactAdminMail(contact.Name, contact.Email, contact.Message)
		return ct.notifier.NotifyEmail(ct.notifier.AdminEmail(), subject, body)
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you for contacting us. We'll respond within 24 hours.",
	})
}

// HandleScheduleSubmit processes the strategy call scheduling form.
func (ct *IntakeController) HandleScheduleSubmit(c *fiber.Ctx) error {
	var form forms.AppointmentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := form.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "fields": errs})
	}

	appointment := form.ToModel()
	if err := ct.repos.Appointment.Create(appointment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to schedule appointment"})
	}

	website := appointment.Website
	if website == "" {
		website = "Not provided"
	}
	notes := appointment.Notes
	if notes == "" {
		notes = "No additional notes"
	}

	ct.dispatcher.Enqueue("appointment-chat", func() error {
		return ct.notifier.NotifyChat(notify.Event{
			Title: "📅 New Strategy Call Scheduled",
			Color: notify.ColorInfo,
			Fields: []notify.EventField{
				{Name: "👤 Name", Value: appointment.Name, Inline: true},
				{Name: "📧 Email", Value: appointment.Email, Inline: true},
				{Name: "🌐 Website", Value: website, Inline: true},
				{Name: "📆 Date", Value: appointment.PreferredDate, Inline: true},
				{Name: "🕐 Time", Value: appointment.PreferredTime, Inline: true},
				{Name: "📝 Notes", Value: notes},
			},
			Footer: "Vanta Scaling Strategy Call",
		})
	})
	ct.dispatcher.Enqueue("appointment-admin-mail", func() error {
		subject, body := mail.AppointmentAdminMail(
			appointment.Name, appointment.Email, appointment.Website,
			appointment.PreferredDate, appointment.PreferredTime, appointment.Notes)
		return ct.notifier.NotifyEmail(ct.notifier.AdminEmail(), subject, body)
	})
	ct.dispatcher.Enqueue("appointment-customer-mail", func() error {
		subject, body := mail.AppointmentCustomerMail(
			appointment.Name, appointment.PreferredDate, appointment.PreferredTime)
		return ct.notifier.NotifyEmail(appointment.Email, subject, body)
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Your strategy call has been scheduled! Check your email for confirmation.",
	})
}
