package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	domainauth "github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/middleware"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/token"
)

type RouterDeps struct {
	TokenService  token.Service
	AuthService   domainauth.AuthService
	Auth          AuthHandler
	Category      CategoryHandler
	Request       RequestHandler
	Credit        CreditHandler
	PublicHoliday PublicHolidayHandler
	Calendar      CalendarHandler
	User          UserHandler
	Settings      SettingsHandler
	OAuth         OAuthHandler
	Notification  NotificationHandler
	FrontendURL   string
	Environment   string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "holidays-app"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"healthy"}`))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Get("/session", deps.Auth.Session)
			r.Post("/logout", deps.Auth.Logout)
		})

		// The callback arrives from Google without a session cookie.
		r.Get("/oauth/google/callback", deps.OAuth.GoogleCallback)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(deps.TokenService.JWTAuth(), token.FromRequest))
			r.Use(middleware.SessionRequired(deps.AuthService))

			r.Get("/auth/me", deps.Auth.Me)
			r.Get("/categories", deps.Category.List)

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", deps.Request.Create)
				r.Get("/my", deps.Request.My)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/all", deps.Request.All)
					r.Get("/pending", deps.Request.Pending)
					r.Put("/{id}/approve", deps.Request.Approve)
					r.Put("/{id}/reject", deps.Request.Reject)
				})
			})

			r.Route("/credits", func(r chi.Router) {
				r.Get("/my", deps.Credit.My)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/user/{user_id}", deps.Credit.ByUser)
					r.Get("/all", deps.Credit.All)
					r.Post("/", deps.Credit.Assign)
					r.Put("/adjust", deps.Credit.Adjust)
					r.Put("/expiration", deps.Credit.SetExpiration)
				})
			})

			r.Route("/public-holidays", func(r chi.Router) {
				r.Get("/", deps.PublicHoliday.List)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Post("/", deps.PublicHoliday.Create)
					r.Delete("/{id}", deps.PublicHoliday.Delete)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/events", deps.Calendar.Events)
				r.Get("/upcoming", deps.Calendar.Upcoming)
			})

			r.Get("/notifications/stream", deps.Notification.Stream)

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.HROnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", deps.User.List)
					r.Post("/", deps.User.Create)
					r.Put("/{id}/role", deps.User.UpdateRole)
					r.Delete("/{id}", deps.User.Delete)
				})

				r.Get("/settings", deps.Settings.Get)
				r.Put("/settings", deps.Settings.Update)

				r.Get("/oauth/google/login", deps.OAuth.GoogleLogin)
				r.Post("/oauth/google/disconnect", deps.OAuth.GoogleDisconnect)
			})
		})
	})

	return r
}
