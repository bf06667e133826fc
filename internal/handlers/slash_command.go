package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/models"
	"github.com/vyper/kintai/internal/services"
	"go.uber.org/zap"
)

// HandleSlashCommand processes the /kintai slash command and opens the report
// form. Slack expects an empty 200 right away, so a views.open failure is
// only logged.
func HandleSlashCommand(ctx context.Context, cmd slack.SlashCommand, now time.Time, cfg *config.Config, logger *zap.Logger) models.Response {
	logger.Info("handling slash command",
		zap.String("command", cmd.Command),
		zap.String("user_name", cmd.UserName),
	)

	if err := services.OpenModal(ctx, cmd.TriggerID, services.FormatDate(now), cfg); err != nil {
		logger.Error("error opening modal", zap.String("trigger_id", cmd.TriggerID), zap.Error(err))
	}

	return textResponse(http.StatusOK, "")
}
