package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	// routes without a body, never signed
	router.Group(func(r chi.Router) {
		r.Get("/api/users/", h.listUsers)
		r.Get("/api/users/{userID}/verify", h.verifyUser)
		r.Get("/api/guests/", h.listGuests)
		r.Get("/api/finance/", h.listFinance)
		r.Get("/api/tasks/", h.listTasks)

		r.Delete("/api/guests/{guestID}", h.deleteGuest)
	})

	// routes with a body, signed when a hash key is configured
	router.Group(func(r chi.Router) {
		r.Use(h.withBodyHash)

		r.Post("/api/users/", h.addUser)
		r.Post("/api/guests/", h.addGuest)
		r.Patch("/api/guests/{guestID}/status", h.updateGuestStatus)
		r.Post("/api/finance/", h.addFinanceEntry)
		r.Post("/api/tasks/", h.addTask)
		r.Patch("/api/tasks/{taskID}/complete", h.setTaskCompletion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
