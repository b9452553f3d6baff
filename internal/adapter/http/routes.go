package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// RegisterRoutes wires the REST surface onto the app. Everything under
// /api/resumes, /api/ai and /api/email requires a bearer token.
func RegisterRoutes(app *fiber.App, h *Handler, authmw *AuthMiddleware) {
	app.Use(cors.New())

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)

	resumes := api.Group("/resumes", authmw.Require)
	resumes.Post("/", h.CreateResume)
	resumes.Get("/", h.ListResumes)
	resumes.Get("/:id", h.GetResume)
	resumes.Put("/:id", h.UpdateResume)
	resumes.Delete("/:id", h.DeleteResume)

	aiGroup := api.Group("/ai", authmw.Require)
	aiGroup.Post("/parse", h.ParseResume)
	aiGroup.Post("/score", h.ScoreResume)
	aiGroup.Post("/summary", h.Summary)
	aiGroup.Post("/cover-letter", h.CoverLetter)
	aiGroup.Post("/optimize", h.Optimize)

	api.Post("/email/send", authmw.Require, h.SendResume)
}
