package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-lambda-api/internal/config"
	"github.com/tbourn/go-lambda-api/internal/observability"
)

type apiGatewayHandler func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// lambdaHandler adapts the engine to API Gateway HTTP API events. Spans are
// flushed after every invocation because the environment may be frozen
// before the batcher exports them.
func lambdaHandler(r *gin.Engine) apiGatewayHandler {
	adapter := ginadapter.NewV2(r)
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		resp, err := adapter.ProxyWithContext(ctx, req)
		if ferr := observability.ForceFlush(ctx); ferr != nil {
			log.Warn().Err(ferr).Msg("span flush failed")
		}
		return resp, err
	}
}

// runLambda hands control to the Lambda runtime. It does not return.
func runLambda(r *gin.Engine, cfg config.Config, shutdownOTel func(context.Context) error) {
	lambda.StartWithOptions(lambdaHandler(r),
		lambda.WithEnableSIGTERM(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := shutdownOTel(ctx); err != nil {
				log.Warn().Err(err).Msg("otel shutdown failed")
			}
		}),
	)
}
