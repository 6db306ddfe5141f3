package editor

import (
	"errors"
	"net/http"
	"strings"

	"github.com/iammuttaqi/gemini-nano-banana/internal/providers/genai"
)

// FailureKind is a coarse classification of why an edit did not produce a
// usable result.
type FailureKind string

const (
	FailureValidation    FailureKind = "validation"
	FailureIO            FailureKind = "io"
	FailureAuthorization FailureKind = "authorization"
	FailureProtocol      FailureKind = "protocol"
	FailureTransport     FailureKind = "transport"
)

// User-facing messages are a fixed mapping table, deliberately decoupled from
// upstream error text so that provider wording changes never leak into
// clients or harden into an accidental API contract. Authorization gets its
// own actionable message; every other runtime failure collapses into one
// generic retry message because the caller cannot act differently on them.
const (
	MsgInstructionRequired = "An editing instruction is required."
	MsgImageRequired       = "An image is required."
	MsgImageUnreadable     = "The selected image could not be read."
	MsgAuthorization       = "API key is invalid or missing required permissions."
	MsgTryAgain            = "Failed to edit the image. Please try again."
)

// Failure is the classified error surfaced to callers. The wrapped cause is
// for logs only and is never part of the user-facing message.
type Failure struct {
	Kind    FailureKind
	Message string
	cause   error
}

func (f *Failure) Error() string {
	if f.cause != nil {
		return string(f.Kind) + ": " + f.cause.Error()
	}
	return string(f.Kind) + ": " + f.Message
}

func (f *Failure) Unwrap() error {
	return f.cause
}

func newFailure(kind FailureKind, message string, cause error) *Failure {
	return &Failure{Kind: kind, Message: message, cause: cause}
}

// AsFailure extracts a *Failure from an error chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// classify maps a raw remote-call error onto the failure taxonomy. Credential
// rejections are recognized either structurally (401/403 from the API) or by
// the "permission"/"API key" wording some transports surface instead of a
// status code. Everything else is a transport failure with the generic
// message.
func classify(err error) *Failure {
	if f, ok := AsFailure(err); ok {
		return f
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return newFailure(FailureAuthorization, MsgAuthorization, err)
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "permission") || strings.Contains(msg, "api key") {
		return newFailure(FailureAuthorization, MsgAuthorization, err)
	}

	return newFailure(FailureTransport, MsgTryAgain, err)
}
