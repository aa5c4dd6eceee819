package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Users     *UserHandler
	Auth      *AuthHandler
	Sales     *SalesHandler
	Dashboard *DashboardHandler
	Ping      func() error
}

// RegisterRoutes installs the single canonical route table. requireAuth
// guards the session endpoint only.
func RegisterRoutes(app *fiber.App, h Handlers, requireAuth fiber.Handler) {
	app.Get("/healthz", health(h.Ping))

	// Accounts
	app.Get("/users", h.Users.GetUsers)
	app.Post("/users", h.Users.CreateUser)
	app.Get("/user/:id", h.Users.GetUser)
	app.Get("/users/:id", h.Users.GetUser)
	app.Post("/login", h.Auth.Login)
	app.Get("/me", requireAuth, h.Users.Me)

	// Sales
	app.Get("/api/penjualan", h.Sales.GetDailySummary)
	app.Get("/api/penjualan/download-pdf", h.Sales.DownloadPDF)

	// Stock
	app.Get("/barang-masuk-today", h.Dashboard.GetInboundToday)
	app.Get("/barang-keluar-today", h.Dashboard.GetOutboundToday)
	app.Get("/chart-weekly", h.Dashboard.GetWeeklyChart)
}

func health(ping func() error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			if err := ping(); err != nil {
				log.Printf("healthz: %v", err)
				return c.Status(503).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
