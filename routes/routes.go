package routes

import (
	"net/http"

	"github.com/dinklabs/dinkpass/handlers"
	"github.com/dinklabs/dinkpass/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes wires the HTTP surface onto the router.
func SetupRoutes(
	router chi.Router,
	eventHandler *handlers.EventHandler,
	registrationHandler *handlers.RegistrationHandler,
	chargeHandler *handlers.ChargeHandler,
	resolveHandler *handlers.ResolveHandler,
	webSocketHandler *handlers.WebSocketHandler,
	metricsHandler http.Handler,
	jwtSecret []byte,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", metricsHandler)

	router.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListHandler)
		r.Get("/{eventID}", eventHandler.GetByIDHandler)

		r.Get("/{eventID}/registrations", registrationHandler.ListHandler)
		r.Post("/{eventID}/registrations", registrationHandler.RegisterHandler)

		// Creating an event requires a connected wallet session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Post("/", eventHandler.CreateHandler)
		})
	})

	router.Post("/charges", chargeHandler.CreateHandler)
	router.Get("/resolve", resolveHandler.ResolveHandler)
	router.Get("/ws/events/{eventID}", webSocketHandler.ServeWs)
}
