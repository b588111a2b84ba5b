package routes

import (
	"github.com/go-chi/chi/v5"

	"mentorConnect/httpHandlers"
)

func ConfigureRoutes(r chi.Router, h *httpHandlers.Handlers, limiter *httpHandlers.RateLimiter) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/test", h.HandleTest)

		r.Route("/auth", func(r chi.Router) {
			r.With(limiter.Middleware).Post("/register", h.HandleRegister)
			r.With(limiter.Middleware).Post("/login", h.HandleLogin)
			r.With(h.JWTMiddleware).Get("/profile", h.HandleGetProfile)
		})

		r.Route("/mentor", func(r chi.Router) {
			r.Get("/", h.HandleGetMentors)
			r.Get("/{id}", h.HandleGetMentorByID)
			r.Group(func(r chi.Router) {
				r.Use(h.JWTMiddleware)
				r.Post("/become", h.HandleBecomeMentor)
				r.Post("/contact", h.HandleContactMentor)
				r.Post("/recommend", h.HandleRecommendMentors)
				r.Post("/{id}/reviews", h.HandleAddMentorReview)
			})
		})

		r.Route("/meetings", func(r chi.Router) {
			r.Get("/availability/{mentorId}/{date}", h.HandleGetMentorAvailability)
			r.Group(func(r chi.Router) {
				r.Use(h.JWTMiddleware)
				r.With(limiter.Middleware).Post("/book", h.HandleBookMeeting)
				r.Get("/", h.HandleGetUserMeetings)
				r.Put("/{id}/confirm", h.HandleConfirmMeeting)
				r.Put("/{id}/cancel", h.HandleCancelMeeting)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(h.JWTMiddleware)
			r.Get("/", h.HandleGetNotifications)
			r.Put("/{id}/read", h.HandleMarkNotificationRead)
		})
	})
}
