package services

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/models"
)

// ErrorMessageText is sent when the report could not be delivered. It never
// includes report contents.
const ErrorMessageText = "勤怠報告の送信中にエラーが発生しました。管理者にご連絡ください。"

// SendCompletionMessage DMs the submitter a confirmation echoing the report.
func SendCompletionMessage(ctx context.Context, sub models.Submission, cfg *config.Config) error {
	return sendDM(ctx, sub.UserID, FormatCompletionMessage(sub), cfg)
}

// SendErrorMessage DMs the submitter the fixed delivery failure text.
func SendErrorMessage(ctx context.Context, userID string, cfg *config.Config) error {
	return sendDM(ctx, userID, ErrorMessageText, cfg)
}

func sendDM(ctx context.Context, userID, text string, cfg *config.Config) error {
	ctx, cancel := withTimeout(ctx, cfg.HTTPTimeout)
	defer cancel()

	_, _, err := cfg.SlackAPI.PostMessageContext(ctx, userID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to send DM to user %s: %w", userID, err)
	}
	return nil
}
