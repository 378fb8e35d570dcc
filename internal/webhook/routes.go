package webhook

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Health)
	app.Post("/chat", h.Chat)
	app.Post("/sms", h.SMS)
	app.Post("/fulfillment", h.Fulfillment)
}
