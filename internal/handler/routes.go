package handler

import (
	"rangeiq/internal/middleware"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	User    *UserHandler
	Catalog *CatalogHandler
	Quiz    *QuizHandler
	Daily   *DailyHandler
	Stats   *StatsHandler
}

// RegisterRoutes mounts the API on router. submitLimiter guards the submission
// routes and may be nil.
func RegisterRoutes(router fiber.Router, h Handlers, authService service.AuthService, submitLimiter fiber.Handler) {
	vm := middleware.NewValidationMiddleware()
	auth := middleware.UserAuth(authService)
	submit := func(handler fiber.Handler) []fiber.Handler {
		if submitLimiter == nil {
			return []fiber.Handler{auth, handler}
		}
		return []fiber.Handler{submitLimiter, auth, handler}
	}

	router.Get("/health", h.Stats.Health)

	users := router.Group("/users")
	users.Post("/", h.User.CreateUser)
	users.Get("/:id", auth, h.User.GetUser)
	users.Get("/:id/attempts", auth, vm.ValidateUserIDParam("id"), vm.ValidatePagination(), h.User.GetUserAttempts)

	router.Get("/scenarios", h.Catalog.ListScenarios)
	router.Get("/scenarios/:id", h.Catalog.GetScenario)

	router.Post("/quiz/submit", submit(h.Quiz.SubmitAnswer)...)

	router.Get("/ranges", h.Catalog.ListRanges)
	router.Post("/ranges/submit", submit(h.Quiz.SubmitRange)...)
	router.Get("/ranges/:id", h.Catalog.GetRange)

	router.Get("/concepts", h.Catalog.ListConcepts)
	router.Get("/concepts/:id", h.Catalog.GetConcept)

	router.Get("/daily", h.Daily.GetDaily)
	router.Get("/daily/check/:userId", auth, h.Daily.CheckCompletion)
	router.Post("/daily/submit", submit(h.Daily.SubmitDaily)...)

	router.Get("/stats/:userId", auth, h.Stats.GetStats)
}
