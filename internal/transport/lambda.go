package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/vyper/kintai/internal/handlers"
	"github.com/vyper/kintai/internal/models"
	"go.uber.org/zap"
)

// lambdaRequest is an API Gateway proxy request whose body may also arrive as
// a JSON object when the function is invoked directly.
type lambdaRequest struct {
	events.APIGatewayProxyRequest
	Body json.RawMessage `json:"body"`
}

// EventFromAPIGateway converts an API Gateway proxy request.
func EventFromAPIGateway(req events.APIGatewayProxyRequest) models.Event {
	headers := make(map[string]string, len(req.Headers)+len(req.MultiValueHeaders))
	for key, values := range req.MultiValueHeaders {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}
	for key, value := range req.Headers {
		headers[key] = value
	}

	return models.Event{
		Headers:         headers,
		Body:            req.Body,
		IsBase64Encoded: req.IsBase64Encoded,
	}
}

// EventFromLambdaPayload converts a raw invocation payload. A string body is
// handled as API Gateway delivers it; an object body becomes StructuredBody.
func EventFromLambdaPayload(payload json.RawMessage) (models.Event, error) {
	var req lambdaRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return models.Event{}, fmt.Errorf("error decoding invocation payload: %w", err)
	}

	raw := bytes.TrimSpace(req.Body)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &req.APIGatewayProxyRequest.Body); err != nil {
			return models.Event{}, fmt.Errorf("error decoding body: %w", err)
		}
	case raw[0] == '{':
		event := EventFromAPIGateway(req.APIGatewayProxyRequest)
		event.StructuredBody = raw
		return event, nil
	default:
		return models.Event{}, fmt.Errorf("unsupported body type: %s", raw)
	}

	return EventFromAPIGateway(req.APIGatewayProxyRequest), nil
}

// ToAPIGateway converts a dispatcher response for API Gateway.
func ToAPIGateway(resp models.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}

// NewLambdaHandler adapts the dispatcher to an API Gateway proxy integration.
// Failures are expressed as status codes, so the returned error is always nil.
func NewLambdaHandler(d *handlers.Dispatcher, logger *zap.Logger) func(context.Context, json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
		reqLogger := RequestLogger(logger, "lambda")

		event, err := EventFromLambdaPayload(payload)
		if err != nil {
			reqLogger.Error("error reading invocation", zap.Error(err))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: "Bad Request"}, nil
		}

		return ToAPIGateway(d.Dispatch(ctx, event, reqLogger)), nil
	}
}
