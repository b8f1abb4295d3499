package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/store-publisher/internal/pkg/application/config"
	"github.com/diwise/store-publisher/internal/pkg/application/services/categories"
	"github.com/diwise/store-publisher/internal/pkg/application/services/store"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/store-publisher/internal/pkg/presentation/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type publisherAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(ctx context.Context, r chi.Router, settings *config.Settings, datastore database.Datastore, tokens auth.TokenSource, defaultImageB64 string) (API, error) {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"text/html", "application/json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("store-publisher", otelchi.WithChiRoutes(r)))

	a := &publisherAPI{
		router: r,
		log:    log,
	}

	client := store.NewClient(settings.StoreURL, tokens)
	categorySvc := categories.NewCategoryService(client, tokens)
	storeSvc := store.NewStoreService(settings.SiteURL, client, tokens, datastore)

	renderer, err := handlers.NewFormRenderer()
	if err != nil {
		return nil, err
	}

	publish := handlers.NewPublishHandler(log, datastore, categorySvc, storeSvc, tokens, renderer, defaultImageB64)

	r.Get("/dataset/{id}/publish", publish)
	r.Post("/dataset/{id}/publish", publish)

	a.addProbeHandlers(r)

	return a, nil
}

func (a *publisherAPI) Start(port string) error {
	a.log.Info().Msgf("Starting store-publisher on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *publisherAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
