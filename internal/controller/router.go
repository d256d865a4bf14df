package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (c *controller) Mux() http.Handler {
	r := chi.NewRouter()

	r.Use(c.requestIdMw)
	r.Use(c.requestLoggingMw)

	r.Route("/api", func(r chi.Router) {
		r.With(c.registerRateLimitMw).Post("/register", c.register)
		r.Get("/workouts", c.listWorkouts)
		r.Post("/videos", c.addVideo)
	})

	r.HandleFunc("/ws/watch", c.watch)

	return r
}
