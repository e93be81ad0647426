// Command api serves the HTTP API either as a long-running net/http server
// or as an AWS Lambda function behind API Gateway (HTTP API, payload v2).
//
// @title       go-lambda-api
// @version     1.0
// @description An example Gin API for AWS Lambda with uniform JSON error payloads.
// @BasePath    /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-lambda-api/docs"
	"github.com/tbourn/go-lambda-api/internal/config"
	httpapi "github.com/tbourn/go-lambda-api/internal/http"
	"github.com/tbourn/go-lambda-api/internal/observability"
	"github.com/tbourn/go-lambda-api/internal/sysutil"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appVersion := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, appVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	r := newEngine(cfg, appVersion)

	log.Info().
		Str("runtime", cfg.Runtime).
		Str("version", appVersion).
		Str("base_path", cfg.APIBasePath).
		Msg("starting")

	switch cfg.Runtime {
	case config.RuntimeLambda:
		runLambda(r, cfg, shutdownOTel)
	default:
		if err := runHTTP(ctx, r, cfg, shutdownOTel); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}
}

// newEngine builds the Gin engine with all routes registered. The OpenAPI
// document is rendered with the configured base path and version.
func newEngine(cfg config.Config, appVersion string) *gin.Engine {
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	docs.SwaggerInfo.Version = appVersion

	r := gin.New()
	httpapi.RegisterRoutes(r, cfg, docs.SwaggerInfo.ReadDoc)
	return r
}
