package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vantascaling/website/app/controllers"
	"github.com/vantascaling/website/app/repository"
	"github.com/vantascaling/website/internal/pkg/config"
	"github.com/vantascaling/website/internal/pkg/database"
	"github.com/vantascaling/website/internal/pkg/env"
	"github.com/vantascaling/website/internal/pkg/mail"
	"github.com/vantascaling/website/internal/pkg/notify"
	"github.com/vantascaling/website/internal/pkg/payment"
	"github.com/vantascaling/website/internal/pkg/router"
)

func main() {
	env.SetupEnvFile()
	cfg := config.Load()

	app, dispatcher := NewApplication(cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		_ = app.Shutdown()
	}()

	if err := app.Listen(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Print(err)
	}
	dispatcher.Stop()
}

func NewApplication(cfg config.Config) (*fiber.App, *notify.Dispatcher) {
	database.SetupDatabase(cfg.DatabasePath)
	repos := repository.NewFactory(database.GetDB()).GetRepositories()

	mailer := mail.NewMailer(cfg.SMTP)
	notifier := notify.NewNotifier(cfg, mailer)
	dispatcher := notify.NewDispatcher(notify.DefaultWorkers, notify.DefaultQueueSize)
	dispatcher.Start()

	payments := payment.NewClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	app := fiber.New(fiber.Config{})
	app.Use(recover.New(), logger.New())

	// fiber metrics, behind the admin key
	if cfg.AdminAPIKey != "" {
		app.Get("/metrics", basicauth.New(basicauth.Config{
			Users: map[string]string{"admin": cfg.AdminAPIKey},
		}), monitor.New())
	}

	// static marketing pages
	app.Static("/", "./public")

	intake := controllers.NewIntakeController(repos, notifier, dispatcher)
	checkout := controllers.NewCheckoutController(repos.Purchase, payments, notifier, dispatcher, cfg.BaseURL)
	admin := controllers.NewAdminController(repos)

	router.InstallRouter(app, router.NewApiRouter(intake, checkout, admin, cfg.AdminAPIKey))

	return app, dispatcher
}
