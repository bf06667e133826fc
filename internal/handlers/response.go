package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/vyper/kintai/internal/models"
)

// jsonStringResponse encodes message as a bare JSON string body.
func jsonStringResponse(statusCode int, message string) models.Response {
	body, _ := json.Marshal(message)
	return models.Response{StatusCode: statusCode, Body: string(body)}
}

func textResponse(statusCode int, body string) models.Response {
	return models.Response{StatusCode: statusCode, Body: body}
}

// clearViewResponse closes the modal.
func clearViewResponse() models.Response {
	body, _ := json.Marshal(slack.NewClearViewSubmissionResponse())
	return models.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
