package main

import (
	"context"
	"flag"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/store-publisher/internal/pkg/application/config"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/store-publisher/internal/pkg/presentation"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

var settingsFileName string

func openSettingsFile(ctx context.Context, path string) *os.File {
	log := logging.GetFromContext(ctx)
	settingsFile, err := os.Open(path)
	if err != nil {
		log.Fatal().Msgf("failed to open the settings file %s.", path)
	}
	return settingsFile
}

func main() {
	serviceName := "store-publisher"
	serviceVersion := buildinfo.SourceVersion()

	godotenv.Load()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&settingsFileName, "settings", "/opt/diwise/config/storepublisher.yaml", "A yaml file containing the site and store urls")
	flag.Parse()

	settingsFile := openSettingsFile(ctx, settingsFileName)
	defer settingsFile.Close()

	settings, err := config.Load(settingsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load settings")
	}

	defaultImageB64, err := config.LoadDefaultImage(settings.DefaultImagePath)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load the default offering image")
	}

	user := env.GetVariableOrDie(log, "STORE_PUBLISHER_USER", "user to publish offerings as")
	clientID := env.GetVariableOrDie(log, "OAUTH_CLIENT_ID", "oauth client id")
	clientSecret := env.GetVariableOrDie(log, "OAUTH_CLIENT_SECRET", "oauth client secret")
	scope := env.GetVariableOrDefault(log, "OAUTH_SCOPE", "all")
	tokenURL := env.GetVariableOrDie(log, "OAUTH_TOKEN_URL", "oauth token endpoint")

	tokens := auth.NewOAuthTokenSource(user, clientID, clientSecret, scope, tokenURL)

	databaseFile := env.GetVariableOrDefault(log, "DATASETS_SQLITE_FILE", "file::memory:?cache=shared")

	db, err := database.NewDatabaseConnection(database.NewSQLiteConnector(databaseFile), ctx)
	if err != nil {
		log.Fatal().Msgf("failed to connect to database, shutting down... %s", err.Error())
	}

	port := os.Getenv("SERVICE_PORT")
	if port == "" {
		port = "8880"
	}

	r := chi.NewRouter()

	app, err := presentation.NewAPI(ctx, r, settings, db, tokens, defaultImageB64)
	if err != nil {
		log.Fatal().Msgf("failed to set up the api: %s", err.Error())
	}

	err = app.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
