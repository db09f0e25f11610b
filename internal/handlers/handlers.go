package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/spintracker/docs"
	authhandlers "github.com/GlebRadaev/spintracker/internal/handlers/auth"
	sessionhandlers "github.com/GlebRadaev/spintracker/internal/handlers/sessions"
	spinhandlers "github.com/GlebRadaev/spintracker/internal/handlers/spins"
	"github.com/GlebRadaev/spintracker/internal/service"
	"github.com/GlebRadaev/spintracker/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	CreateSession(w http.ResponseWriter, r *http.Request)
	ListSessions(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	CloseSession(w http.ResponseWriter, r *http.Request)
	DeleteSession(w http.ResponseWriter, r *http.Request)
}

type SpinHandler interface {
	AddSpin(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	SessionHandler SessionHandler
	SpinHandler    SpinHandler
	Tokens         auth.TokenValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		SessionHandler: sessionhandlers.New(s.SessionService),
		SpinHandler:    spinhandlers.New(s.SpinService),
		Tokens:         s.Tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Tokens))
			r.Get("/user", h.AuthHandler.Me)
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", h.SessionHandler.CreateSession)
				r.Get("/", h.SessionHandler.ListSessions)
				r.Get("/{id}", h.SessionHandler.GetSession)
				r.Delete("/{id}", h.SessionHandler.DeleteSession)
				r.Put("/{id}/close", h.SessionHandler.CloseSession)
				r.Post("/{id}/spins", h.SpinHandler.AddSpin)
			})
		})
	})

	return r
}
