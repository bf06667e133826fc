package function

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GenerateSlackSignature generates a Slack-style v0 signature for testing
func GenerateSlackSignature(secret, body string, timestamp int64) string {
	sig := fmt.Sprintf("v0:%d:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(sig))
	return "v0=" + hex.EncodeToString(h.Sum(nil))
}

// CreateSlackRequest creates a form POST carrying Slack's signature headers
func CreateSlackRequest(body, signingSecret string) *http.Request {
	timestamp := time.Now().Unix()
	signature := GenerateSlackSignature(signingSecret, body, timestamp)

	req := &http.Request{
		Method: http.MethodPost,
		Header: http.Header{
			"Content-Type":              {"application/x-www-form-urlencoded"},
			"X-Slack-Request-Timestamp": {strconv.FormatInt(timestamp, 10)},
			"X-Slack-Signature":         {signature},
		},
		Body: io.NopCloser(strings.NewReader(body)),
	}

	return req
}

// SlashCommandBody returns a form body for the given command
func SlashCommandBody(command string) string {
	return url.Values{
		"command":    {command},
		"trigger_id": {"12345.67890.abcdef"},
		"user_id":    {"U12345678"},
		"user_name":  {"testuser"},
	}.Encode()
}

// ViewSubmissionBody wraps a view_submission payload in a form body
func ViewSubmissionBody(payload string) string {
	return url.Values{"payload": {payload}}.Encode()
}

// ValidViewSubmissionPayload returns a report submission with details
func ValidViewSubmissionPayload() string {
	return `{
		"type": "view_submission",
		"user": {
			"id": "U12345678",
			"name": "testuser"
		},
		"view": {
			"callback_id": "kintai_report",
			"state": {
				"values": {
					"date_block": {
						"date_picker": {
							"type": "datepicker",
							"selected_date": "2024-06-03"
						}
					},
					"report_type_block": {
						"report_type": {
							"type": "static_select",
							"selected_option": {
								"text": {
									"type": "plain_text",
									"text": "有給休暇(午前休)"
								},
								"value": "paid_leave_am"
							}
						}
					},
					"details_block": {
						"details": {
							"type": "plain_text_input",
							"value": "役所手続きのため"
						}
					}
				}
			}
		}
	}`
}

// ValidViewSubmissionPayloadNoDetails returns a payload without the optional details
func ValidViewSubmissionPayloadNoDetails() string {
	return `{
		"type": "view_submission",
		"user": {
			"id": "U12345678",
			"name": "testuser"
		},
		"view": {
			"callback_id": "kintai_report",
			"state": {
				"values": {
					"date_block": {
						"date_picker": {
							"type": "datepicker",
							"selected_date": "2024-06-01"
						}
					},
					"report_type_block": {
						"report_type": {
							"type": "static_select",
							"selected_option": {
								"text": {
									"type": "plain_text",
									"text": "体調不良"
								},
								"value": "sick"
							}
						}
					}
				}
			}
		}
	}`
}

// InvalidJSONPayload returns malformed JSON
func InvalidJSONPayload() string {
	return `{"type": "view_submission", "user": {invalid json`
}
