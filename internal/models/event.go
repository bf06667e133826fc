package models

import "encoding/json"

// Event is one inbound request, independent of the runtime that delivered it.
type Event struct {
	Headers         map[string]string
	Body            string
	IsBase64Encoded bool
	// StructuredBody is set when the runtime delivered the body as a JSON
	// object instead of a string. Body is ignored when it is present.
	StructuredBody json.RawMessage
}

// Response is what the dispatcher hands back to the runtime adapter.
type Response struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}
