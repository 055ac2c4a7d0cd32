package routes

import (
	"github.com/AldereteMatias1/Asistencia-Futbol/handlers"
	"github.com/AldereteMatias1/Asistencia-Futbol/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Config struct {
	AdminKey           string
	AdminKeyHash       string
	CORSAllowedOrigins []string
}

func SetupRoutes(
	router *chi.Mux,
	cfg Config,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	participationHandler *handlers.ParticipationHandler,
	rankingHandler *handlers.RankingHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Api-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Las lecturas son públicas; toda escritura exige la x-api-key de admin.
	router.Use(middleware.AdminWrite(cfg.AdminKey, cfg.AdminKeyHash))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.List)
		r.Post("/", playerHandler.Create)
		r.Get("/{id}", playerHandler.Get)
		r.Patch("/{id}", playerHandler.Update)
		r.Delete("/{id}", playerHandler.Deactivate)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.List)
		r.Post("/", matchHandler.Create)
		r.Get("/{id}", matchHandler.Get)
		r.Patch("/{id}", matchHandler.Update)
		r.Post("/{id}/start", matchHandler.Start)
		r.Post("/{id}/finish", matchHandler.Finish)
		r.Post("/{id}/cancel", matchHandler.Cancel)

		r.Route("/{matchID}/participations", func(r chi.Router) {
			r.Post("/", participationHandler.Register)
			r.Post("/withdraw", participationHandler.Withdraw)
			r.Post("/reactivate", participationHandler.Reactivate)
			r.Patch("/team", participationHandler.ChangeTeam)
		})
	})

	router.Route("/stats", func(r chi.Router) {
		r.Get("/attendance", rankingHandler.Attendance)
		r.Get("/withdrawals", rankingHandler.Withdrawals)
		r.Get("/winners", rankingHandler.Winners)
		r.Get("/overview", rankingHandler.Overview)
	})

	router.Get("/ws/matches/{id}", webSocketHandler.Subscribe)
}
