package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/models"
)

// ErrMalformedSubmission is returned when a view_submission lacks a field the
// report form marks as required.
var ErrMalformedSubmission = errors.New("malformed submission")

// ExtractSubmission reads the report fields out of a view_submission callback.
// A blank detail is replaced with models.NoDetails.
func ExtractSubmission(callback *slack.InteractionCallback) (models.Submission, error) {
	sub := models.Submission{
		UserName: callback.User.Name,
		UserID:   callback.User.ID,
	}

	if callback.View.State == nil || callback.View.State.Values == nil {
		return sub, fmt.Errorf("%w: view state is missing", ErrMalformedSubmission)
	}
	values := callback.View.State.Values

	if sub.UserID == "" {
		return sub, fmt.Errorf("%w: user id is missing", ErrMalformedSubmission)
	}

	date, ok := values[models.DateBlockID][models.DateActionID]
	if !ok || date.SelectedDate == "" {
		return sub, fmt.Errorf("%w: %s.%s has no selected date", ErrMalformedSubmission, models.DateBlockID, models.DateActionID)
	}
	sub.Date = date.SelectedDate

	reportType, ok := values[models.ReportTypeBlockID][models.ReportTypeActionID]
	if !ok || reportType.SelectedOption.Value == "" {
		return sub, fmt.Errorf("%w: %s.%s has no selected option", ErrMalformedSubmission, models.ReportTypeBlockID, models.ReportTypeActionID)
	}
	sub.ReportTypeValue = reportType.SelectedOption.Value
	if reportType.SelectedOption.Text != nil {
		sub.ReportTypeLabel = reportType.SelectedOption.Text.Text
	}
	if sub.ReportTypeLabel == "" {
		sub.ReportTypeLabel = ReportTypeLabel(sub.ReportTypeValue)
	}

	sub.Details = models.NoDetails
	if details, ok := values[models.DetailsBlockID][models.DetailsActionID]; ok && strings.TrimSpace(details.Value) != "" {
		sub.Details = details.Value
	}

	if sub.UserName == "" {
		sub.UserName = fmt.Sprintf("<@%s>", sub.UserID)
	}

	return sub, nil
}

// ReportTypeLabel returns the display label for a report type value, or the
// value itself when it is not one of models.ReportTypes.
func ReportTypeLabel(value string) string {
	for _, rt := range models.ReportTypes {
		if rt.Value == value {
			return rt.Label
		}
	}
	return value
}
