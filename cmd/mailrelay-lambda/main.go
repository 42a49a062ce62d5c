// Command mailrelay-lambda runs the send handler behind an API Gateway
// proxy integration.
package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dmitrymomot/mailrelay/internal/app"
	"github.com/dmitrymomot/mailrelay/internal/config"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("mailrelay-lambda: %v", err)
	}

	// Built once per cold start; warm invocations reuse the provider client.
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("mailrelay-lambda: %v", err)
	}

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := a.Handler.HandleAPIGateway(ctx, req)
		_ = logger.Flush(ctx, sentryFlushTimeout)
		return resp, err
	})
}
