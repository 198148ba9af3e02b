package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/AdonesMapula/atay/internal/config"
	pgrepo "github.com/AdonesMapula/atay/internal/repo/postgres"
	authsvc "github.com/AdonesMapula/atay/internal/services/adminauth"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	mediasvc "github.com/AdonesMapula/atay/internal/services/media"
	modsvc "github.com/AdonesMapula/atay/internal/services/moderation"
	"github.com/AdonesMapula/atay/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService       *authsvc.Service
	ModerationService *modsvc.Service
	CatalogService    *catalogsvc.Service
	MediaService      *mediasvc.Service
	PurchaseRepo      *pgrepo.PurchaseRepo
	Logger            *zap.Logger
	Config            config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.ModerationService)
	moderationHandler := handlers.NewModerationHandler(deps.ModerationService, deps.MediaService, deps.Config.Moderation.PageSize)
	eventsHandler := handlers.NewEventsHandler(deps.CatalogService)
	ticketsHandler := handlers.NewTicketsHandler(deps.CatalogService)
	shopHandler := handlers.NewShopHandler(deps.CatalogService)
	emceesHandler := handlers.NewEmceesHandler(deps.CatalogService)
	playlistHandler := handlers.NewPlaylistHandler(deps.CatalogService)
	mediaHandler := handlers.NewMediaHandler(deps.MediaService, deps.Config.Media.MaxUploadBytes)
	dashboardHandler := handlers.NewDashboardHandler(deps.CatalogService, deps.PurchaseRepo)
	authMW := AuthMiddleware(deps.AuthService, deps.Logger)

	r.Get("/healthz", healthHandler.Handle)

	r.Route("/admin/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.With(authMW).Post("/logout", authHandler.Logout)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authMW)

		r.Get("/dashboard", dashboardHandler.Handle)

		r.Route("/purchases", func(r chi.Router) {
			r.Get("/staged", moderationHandler.Staged)
			r.Post("/confirm", moderationHandler.Confirm)
			r.Post("/cancel", moderationHandler.Cancel)
			r.Get("/{kind}", moderationHandler.List)
			r.Post("/{kind}/refresh", moderationHandler.Refresh)
			r.Post("/{kind}/{id}/stage", moderationHandler.Stage)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventsHandler.List)
			r.Post("/", eventsHandler.Create)
			r.Put("/{id}", eventsHandler.Update)
			r.Delete("/{id}", eventsHandler.Delete)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", ticketsHandler.List)
			r.Post("/", ticketsHandler.Create)
			r.Put("/{id}", ticketsHandler.Update)
			r.Delete("/{id}", ticketsHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", shopHandler.List)
			r.Post("/", shopHandler.Create)
			r.Put("/{id}", shopHandler.Update)
			r.Delete("/{id}", shopHandler.Delete)
		})

		r.Route("/emcees", func(r chi.Router) {
			r.Get("/", emceesHandler.List)
			r.Post("/", emceesHandler.Create)
			r.Put("/{id}", emceesHandler.Update)
			r.Delete("/{id}", emceesHandler.Delete)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Get("/", playlistHandler.List)
			r.Post("/", playlistHandler.Create)
			r.Put("/{id}", playlistHandler.Update)
			r.Delete("/{id}", playlistHandler.Delete)
		})

		r.Route("/media", func(r chi.Router) {
			r.Post("/{category}", mediaHandler.Upload)
			r.Get("/url", mediaHandler.SignURL)
			r.Delete("/", mediaHandler.Delete)
		})
	})
}
