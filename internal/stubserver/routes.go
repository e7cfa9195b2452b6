package stubserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// confirmPath is the target of the link a real backend would e-mail on
// sign-up and resend.
const confirmPath = "/sessions/confirm"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/sessions", func(r chi.Router) {
		r.Post("/login_with_email", h.loginWithEmail)
		r.Post("/resend_confirmation", h.resendConfirmation)
		r.Post("/sign_up_email", h.signUpEmail)
		r.Get("/confirm", h.confirmEmail)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
