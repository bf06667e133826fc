package services

import (
	"fmt"
	"time"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/models"
)

// JST is the fixed UTC+9 offset used for every date shown to users.
var JST = time.FixedZone("JST", 9*60*60)

// FormatDate formats t as a calendar date in JST.
// Example: 2024-05-31T15:30:00Z -> "2024-06-01"
func FormatDate(t time.Time) string {
	return t.In(JST).Format("2006-01-02")
}

// FormatSubmittedAt formats t in JST with minute precision.
// Example: 2024-05-31T15:30:45Z -> "2024-06-01 00:30"
func FormatSubmittedAt(t time.Time) string {
	return t.In(JST).Format("2006-01-02 15:04")
}

// FormatReportBlocks creates the Block Kit message posted to the webhook
func FormatReportBlocks(sub models.Submission, submittedAt string) []slack.Block {
	return []slack.Block{
		slack.NewHeaderBlock(plainText("勤怠報告が提出されました")),
		slack.NewSectionBlock(
			nil,
			[]*slack.TextBlockObject{
				labeledField("提出者", sub.UserName),
				labeledField("申請日", submittedAt),
				labeledField("取得日", sub.Date),
				labeledField("報告種類", sub.ReportTypeLabel),
				labeledField("詳細", sub.Details),
			},
			nil,
		),
	}
}

// FormatCompletionMessage is the DM text confirming a delivered report.
func FormatCompletionMessage(sub models.Submission) string {
	return fmt.Sprintf(
		"勤怠報告が正常に送信されました。\n\n取得日: %s, 報告種類: %s, 詳細: %s",
		sub.Date,
		sub.ReportTypeLabel,
		sub.Details,
	)
}

func labeledField(label, value string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*%s:*\n%s", label, value), false, false)
}
