package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokushiworks/exam_bank/handlers"
)

func ExamRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	exams := api.Group("/exams")

	questions := exams.Group("/questions")
	questions.Post("/ingest", handlers.IngestQuestions)
	questions.Get("", handlers.QueryQuestions)

	exams.Post("/reconcile", handlers.ReconcileAccuracy)

	exams.Get("/years", handlers.ListYears)
	exams.Delete("/years/:year", handlers.DeleteYear)

	exams.Get("/categories", handlers.ListCategories)
	exams.Get("/stats", handlers.GetStats)
}
