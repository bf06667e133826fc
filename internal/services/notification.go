package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/models"
)

// ErrNotificationFailed matches every DeliveryError.
var ErrNotificationFailed = errors.New("notification delivery failed")

// maxErrorBody caps how much of a failed webhook response is kept for logging.
const maxErrorBody = 4096

// DeliveryError describes a webhook call that did not return 2xx.
// StatusCode is zero when no response was received.
type DeliveryError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: no response: %v", ErrNotificationFailed, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrNotificationFailed, e.StatusCode, e.Body)
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrNotificationFailed
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

type notificationMessage struct {
	Blocks []slack.Block `json:"blocks"`
}

// PostReportNotification sends the report to the configured webhook once.
// Any non-2xx status or transport failure is returned as a *DeliveryError.
func PostReportNotification(ctx context.Context, sub models.Submission, submittedAt string, cfg *config.Config) error {
	jsonBody, err := json.Marshal(notificationMessage{Blocks: FormatReportBlocks(sub, submittedAt)})
	if err != nil {
		return fmt.Errorf("error marshaling notification: %w", err)
	}

	ctx, cancel := withTimeout(ctx, cfg.HTTPTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.WebhookURL, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return &DeliveryError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &DeliveryError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
