// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	facultyHandler *handlers.FacultyHandler,
	programHandler *handlers.ProgramHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Faculties. Static segments such as /search win over {id}.
		r.Get("/faculties", facultyHandler.ListFaculties)
		r.Post("/faculties", facultyHandler.RegisterFaculty)
		r.Get("/faculties/search", facultyHandler.SearchFaculty)
		r.Get("/faculties/{id}", facultyHandler.GetFaculty)
		r.Put("/faculties/{id}", facultyHandler.UpdateFaculty)
		r.Delete("/faculties/{id}", facultyHandler.DeleteFaculty)
		r.Put("/faculties/{id}/dean", facultyHandler.ChangeDean)
		r.Put("/faculties/{id}/activate", facultyHandler.ActivateFaculty)
		r.Put("/faculties/{id}/deactivate", facultyHandler.DeactivateFaculty)
		r.Get("/faculties/{id}/programs", facultyHandler.ListFacultyPrograms)

		// Programs.
		r.Get("/programs", programHandler.ListPrograms)
		r.Post("/programs", programHandler.RegisterProgram)
		r.Get("/programs/{id}", programHandler.GetProgram)
		r.Put("/programs/{id}", programHandler.UpdateProgram)
		r.Delete("/programs/{id}", programHandler.DeleteProgram)
		r.Put("/programs/{id}/duration", programHandler.ChangeDuration)
		r.Put("/programs/{id}/faculty", programHandler.ChangeFaculty)
		r.Put("/programs/{id}/activate", programHandler.ActivateProgram)
		r.Put("/programs/{id}/deactivate", programHandler.DeactivateProgram)
	})

	return r
}
