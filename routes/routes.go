package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/yoapunto/yoapunto-api/docs"
	"github.com/yoapunto/yoapunto-api/handlers"
	"github.com/yoapunto/yoapunto-api/middleware"
	"github.com/yoapunto/yoapunto-api/services"
)

type Deps struct {
	ClubHandler     *handlers.ClubHandler
	GameHandler     *handlers.GameHandler
	AccountHandler  *handlers.AccountHandler
	ClubGameHandler *handlers.ClubGameHandler
	AuthHandler     *handlers.AuthHandler
	StatsHandler    *handlers.StatsHandler
	EventsHandler   *handlers.EventsHandler
	AuthService     services.AuthService
}

// Setup builds the full router: health and swagger at the root, the API
// under /api/v1.
func Setup(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", handlers.HealthCheck)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	requireAccount := middleware.RequireAccount(deps.AuthService)
	optionalAccount := middleware.OptionalAccount(deps.AuthService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stats", deps.StatsHandler.GetStats)
		// Public feed; a bearer token is still resolved into the context
		// when present.
		r.With(optionalAccount).Get("/events", deps.EventsHandler.Subscribe)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.Refresh)
			r.Post("/logout", deps.AuthHandler.Logout)
		})

		r.Route("/clubs", func(r chi.Router) {
			r.Post("/", deps.ClubHandler.CreateClub)
			r.Get("/", deps.ClubHandler.ListClubs)
			r.Get("/{club_id}", deps.ClubHandler.GetClub)
			r.Put("/{club_id}", deps.ClubHandler.UpdateClub)
			r.Delete("/{club_id}", deps.ClubHandler.DeactivateClub)
			r.With(requireAccount).Post("/{club_id}/thumbnail", deps.ClubHandler.UploadThumbnail)

			r.Route("/{club_id}/games", func(r chi.Router) {
				r.Get("/", deps.ClubGameHandler.ListClubGames)
				r.Post("/{game_id}", deps.ClubGameHandler.AddGameToClub)
				r.Get("/{game_id}", deps.ClubGameHandler.GetClubGame)
				r.Delete("/{game_id}", deps.ClubGameHandler.RemoveGameFromClub)
			})
		})

		r.Route("/games", func(r chi.Router) {
			r.Post("/", deps.GameHandler.CreateGame)
			r.Get("/", deps.GameHandler.ListGames)
			r.Get("/{game_id}", deps.GameHandler.GetGame)
			r.Put("/{game_id}", deps.GameHandler.UpdateGame)
			r.Delete("/{game_id}", deps.GameHandler.DeactivateGame)
			r.With(requireAccount).Post("/{game_id}/thumbnail", deps.GameHandler.UploadThumbnail)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", deps.AccountHandler.CreateAccount)
			r.Get("/", deps.AccountHandler.ListAccounts)
			r.Get("/club/{club_id}", deps.AccountHandler.ListAccountsByClub)
			r.Get("/{id}", deps.AccountHandler.GetAccount)
			r.Put("/{id}", deps.AccountHandler.UpdateAccount)
			r.Put("/{id}/password", deps.AccountHandler.UpdatePassword)
			r.Delete("/{id}", deps.AccountHandler.DeactivateAccount)
		})
	})

	return r
}
