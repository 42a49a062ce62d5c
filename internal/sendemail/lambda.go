package sendemail

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrymomot/mailrelay/middlewares"
)

// HandleAPIGateway adapts Handle to an API Gateway proxy integration.
// The returned error is always nil: every failure is reported in the response.
func (h *Handler) HandleAPIGateway(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if id := req.RequestContext.RequestID; id != "" {
		ctx = middlewares.WithRequestID(ctx, id)
	}

	if req.HTTPMethod == http.MethodOptions {
		return toProxyResponse(PreflightEnvelope()), nil
	}

	body := req.Body
	if req.IsBase64Encoded && body != "" {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return toProxyResponse(h.reject(ctx, &requestError{Message: msgInvalidJSON, Details: err.Error()})), nil
		}
		body = string(decoded)
	}

	return toProxyResponse(h.Handle(ctx, body)), nil
}

func toProxyResponse(env Envelope) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: env.StatusCode,
		Headers:    env.Headers,
		Body:       env.Body,
	}
}
