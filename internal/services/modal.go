package services

import (
	"context"
	"fmt"
	"time"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/config"
	"github.com/vyper/kintai/internal/models"
)

// BuildReportModal builds the attendance report form with the date picker
// preset to today.
func BuildReportModal(today string) slack.ModalViewRequest {
	datePicker := slack.NewDatePickerBlockElement(models.DateActionID)
	datePicker.InitialDate = today
	datePicker.Placeholder = plainText("日付を選択")

	dateSection := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, "*取得日*", false, false),
		nil,
		slack.NewAccessory(datePicker),
		slack.SectionBlockOptionBlockID(models.DateBlockID),
	)

	options := make([]*slack.OptionBlockObject, 0, len(models.ReportTypes))
	for _, rt := range models.ReportTypes {
		options = append(options, slack.NewOptionBlockObject(rt.Value, plainText(rt.Label), nil))
	}
	reportTypeSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		plainText("報告種類を選択"),
		models.ReportTypeActionID,
		options...,
	)
	reportTypeBlock := slack.NewInputBlock(models.ReportTypeBlockID, plainText("報告種類"), nil, reportTypeSelect)

	detailsInput := slack.NewPlainTextInputBlockElement(plainText("詳細な情報を入力してください（任意）"), models.DetailsActionID)
	detailsInput.Multiline = true
	detailsBlock := slack.NewInputBlock(models.DetailsBlockID, plainText("詳細"), nil, detailsInput)
	detailsBlock.Optional = true

	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: models.ReportCallbackID,
		Title:      plainText("勤怠報告"),
		Submit:     plainText("送信"),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{dateSection, reportTypeBlock, detailsBlock},
		},
	}
}

// OpenModal opens the report form using the views.open API
func OpenModal(ctx context.Context, triggerID, today string, cfg *config.Config) error {
	ctx, cancel := withTimeout(ctx, cfg.HTTPTimeout)
	defer cancel()

	if _, err := cfg.SlackAPI.OpenViewContext(ctx, triggerID, BuildReportModal(today)); err != nil {
		return fmt.Errorf("error opening modal: %w", err)
	}
	return nil
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

// withTimeout bounds ctx by d; a non-positive d leaves it unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
