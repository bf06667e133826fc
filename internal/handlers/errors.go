package handlers

import "errors"

var (
	// ErrAuthRejected means the request carried no Slack signature header.
	ErrAuthRejected = errors.New("missing slack signature header")

	// ErrUnrecognizedRequest means the body was neither the configured slash
	// command nor a view_submission payload.
	ErrUnrecognizedRequest = errors.New("unrecognized request")

	// ErrInvalidPayload means the payload field was not a valid interaction callback.
	ErrInvalidPayload = errors.New("invalid slack interaction callback")
)
