package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vantascaling/website/app/repository"
)

// AdminController serves the admin read endpoints. Authentication is applied
// by the router via middleware.AdminKeyAuth.
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController wires the admin handlers.
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{repos: repos}
}

// HandleAdminContacts lists all contact messages, newest first.
func (ct *AdminController) HandleAdminContacts(c *fiber.Ctx) error {
	contacts, err := ct.repos.Contact.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch contacts"})
	}
	return c.JSON(contacts)
}

// HandleAdminAppointments lists all appointments, newest first.
func (ct *AdminController) HandleAdminAppointments(c *fiber.Ctx) error {
	appointments, err := ct.repos.Appointment.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch appointments"})
	}
	return c.JSON(appointments)
}

// HandleAdminPurchases lists all purchases, newest first.
func (ct *AdminController) HandleAdminPurchases(c *fiber.Ctx) error {
	purchases, err := ct.repos.Purchase.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch purchases"})
	}
	return c.JSON(purchases)
}
