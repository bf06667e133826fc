package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/models"
	"github.com/vyper/kintai/internal/services"
	"go.uber.org/zap"
)

// HandleViewSubmission relays a submitted report to the webhook and DMs the
// submitter the outcome. The modal is cleared on every path, including a
// submission missing required fields.
func HandleViewSubmission(ctx context.Context, callback *slack.InteractionCallback, now time.Time, cfg *config.Config, logger *zap.Logger) models.Response {
	logger.Info("handling form submission", zap.String("user_id", callback.User.ID))

	sub, err := services.ExtractSubmission(callback)
	if err != nil {
		logger.Error("invalid view submission", zap.Error(err))
		if callback.User.ID != "" {
			if err := services.SendErrorMessage(ctx, callback.User.ID, cfg); err != nil {
				logger.Error("error sending error message", zap.Error(err))
			}
		}
		return clearViewResponse()
	}

	if err := services.PostReportNotification(ctx, sub, services.FormatSubmittedAt(now), cfg); err != nil {
		logger.Error("webhook delivery failed", deliveryFields(err)...)

		if err := services.SendErrorMessage(ctx, sub.UserID, cfg); err != nil {
			logger.Error("error sending error message", zap.String("user_id", sub.UserID), zap.Error(err))
		}
		return clearViewResponse()
	}

	logger.Info("report delivered",
		zap.String("user_id", sub.UserID),
		zap.String("date", sub.Date),
		zap.String("report_type", sub.ReportTypeValue),
	)

	if err := services.SendCompletionMessage(ctx, sub, cfg); err != nil {
		logger.Error("error sending completion message", zap.String("user_id", sub.UserID), zap.Error(err))
	}

	return clearViewResponse()
}

func deliveryFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var deliveryErr *services.DeliveryError
	if !errors.As(err, &deliveryErr) {
		return fields
	}
	if deliveryErr.StatusCode == 0 {
		return append(fields, zap.String("status", "no response"))
	}
	return append(fields,
		zap.Int("status", deliveryErr.StatusCode),
		zap.String("response_body", deliveryErr.Body),
	)
}
