package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/models"
	"go.uber.org/zap"
)

// SignatureHeader only has its presence checked; the signature itself is not verified.
const SignatureHeader = "X-Slack-Signature"

// request is the decoded shape of an inbound body.
type request interface {
	isRequest()
}

type commandRequest struct {
	command slack.SlashCommand
}

type submissionRequest struct {
	callback slack.InteractionCallback
}

type unknownRequest struct{}

func (commandRequest) isRequest()    {}
func (submissionRequest) isRequest() {}
func (unknownRequest) isRequest()    {}

// Dispatcher routes inbound events to the slash command or view submission handler.
type Dispatcher struct {
	cfg *config.Config
	now func() time.Time
}

// NewDispatcher creates a Dispatcher using the wall clock.
func NewDispatcher(cfg *config.Config) *Dispatcher {
	return &Dispatcher{cfg: cfg, now: time.Now}
}

// WithClock replaces the clock used for the form's default date and the
// submission timestamp.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// Dispatch handles one inbound event end to end.
func (d *Dispatcher) Dispatch(ctx context.Context, event models.Event, logger *zap.Logger) models.Response {
	if !hasSignatureHeader(event.Headers) {
		logger.Warn("rejecting request", zap.Error(ErrAuthRejected))
		return jsonStringResponse(http.StatusForbidden, "Invalid request")
	}

	logger.Debug("received event",
		zap.Any("headers", event.Headers),
		zap.String("body", event.Body),
		zap.Bool("is_base64_encoded", event.IsBase64Encoded),
		zap.ByteString("structured_body", event.StructuredBody),
	)

	values, err := decodeBody(event, logger)
	if err != nil {
		logger.Warn("error decoding body", zap.Error(err))
		return textResponse(http.StatusBadRequest, "Bad Request")
	}

	logger.Debug("decoded body", zap.Any("values", values))

	req, err := classify(values, d.cfg.SlashCommand)
	if err != nil {
		logger.Warn("error parsing payload", zap.Error(err))
		return textResponse(http.StatusBadRequest, "Invalid Slack Interaction Callback")
	}

	switch r := req.(type) {
	case commandRequest:
		return HandleSlashCommand(ctx, r.command, d.now(), d.cfg, logger)
	case submissionRequest:
		return HandleViewSubmission(ctx, &r.callback, d.now(), d.cfg, logger)
	default:
		logger.Info("ignoring request", zap.Error(ErrUnrecognizedRequest))
		return jsonStringResponse(http.StatusOK, "Unknown request type")
	}
}

func hasSignatureHeader(headers map[string]string) bool {
	for key := range headers {
		if strings.EqualFold(key, SignatureHeader) {
			return true
		}
	}
	return false
}

// decodeBody reads the form fields out of an event. A string body is
// base64-decoded when flagged and parsed as a form; pairs that fail to parse
// are logged and dropped. A body delivered as a JSON object is read as
// structured fields instead.
func decodeBody(event models.Event, logger *zap.Logger) (url.Values, error) {
	if len(event.StructuredBody) > 0 {
		return structuredValues(event.StructuredBody)
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, fmt.Errorf("error decoding base64 body: %w", err)
		}
		body = string(decoded)
	}

	// ParseQuery keeps every pair it could decode alongside the error.
	values, err := url.ParseQuery(body)
	if err != nil {
		logger.Warn("ignoring undecodable form fields", zap.Error(err))
	}
	return values, nil
}

// structuredValues flattens a JSON object into form values. Strings and string
// lists are kept as-is; anything else (a nested payload object) is kept as its
// JSON encoding.
func structuredValues(data []byte) (url.Values, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("error parsing JSON body: %w", err)
	}

	values := url.Values{}
	for key, raw := range fields {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			values.Set(key, s)
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			values[key] = list
			continue
		}
		values.Set(key, string(raw))
	}
	return values, nil
}

func classify(values url.Values, slashCommand string) (request, error) {
	if values.Has("command") && values.Get("command") == slashCommand {
		return commandRequest{command: slashCommandFromValues(values)}, nil
	}

	if values.Has("payload") {
		var callback slack.InteractionCallback
		if err := json.Unmarshal([]byte(values.Get("payload")), &callback); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if callback.Type == slack.InteractionTypeViewSubmission {
			return submissionRequest{callback: callback}, nil
		}
	}

	return unknownRequest{}, nil
}

func slashCommandFromValues(values url.Values) slack.SlashCommand {
	return slack.SlashCommand{
		Token:       values.Get("token"),
		TeamID:      values.Get("team_id"),
		TeamDomain:  values.Get("team_domain"),
		ChannelID:   values.Get("channel_id"),
		ChannelName: values.Get("channel_name"),
		UserID:      values.Get("user_id"),
		UserName:    values.Get("user_name"),
		Command:     values.Get("command"),
		Text:        values.Get("text"),
		ResponseURL: values.Get("response_url"),
		TriggerID:   values.Get("trigger_id"),
		APIAppID:    values.Get("api_app_id"),
	}
}
