package handlers

import (
	"net/http"

	"github.com/iammuttaqi/gemini-nano-banana/internal/editor"
	"github.com/iammuttaqi/gemini-nano-banana/internal/middleware"
)

// maxUploadBytes bounds the multipart parse, not the image itself; anything
// past this never reaches the encoder. The remote service enforces its own
// payload limit and that surfaces as a classified failure.
const maxUploadBytes = 32 << 20

type editResponse struct {
	Image     string `json:"image,omitempty"`
	Text      string `json:"text,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// EditImage accepts a multipart form with an "image" file and an
// "instruction" field, runs the edit, and returns the result as a data URL
// and/or descriptive text. Exactly one of result or error body is written.
func (a *App) EditImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "expected a multipart form with an image and an instruction")
		return
	}

	instruction := r.FormValue("instruction")

	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", editor.MsgImageRequired)
		return
	}
	defer file.Close()

	encoded, err := editor.Encode(file, header.Header.Get("Content-Type"))
	if err != nil {
		a.failure(w, r, err)
		return
	}

	result, err := a.Editor.Edit(r.Context(), editor.EditRequest{
		Image:       encoded,
		Instruction: instruction,
	})
	if err != nil {
		a.failure(w, r, err)
		return
	}

	a.json(w, http.StatusOK, editResponse{
		Image:     result.Image,
		Text:      result.Text,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}

// failure translates a classified editor failure into the HTTP envelope. The
// stable message comes from the failure itself; the diagnostic cause was
// already logged at the adapter boundary and is not repeated to the client.
func (a *App) failure(w http.ResponseWriter, r *http.Request, err error) {
	f, ok := editor.AsFailure(err)
	if !ok {
		a.Logger.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("handlers: unclassified edit error")
		a.error(w, http.StatusInternalServerError, "internal", editor.MsgTryAgain)
		return
	}

	status, code := http.StatusInternalServerError, "internal"
	switch f.Kind {
	case editor.FailureValidation, editor.FailureIO:
		status, code = http.StatusBadRequest, "bad_request"
	case editor.FailureAuthorization:
		status, code = http.StatusUnauthorized, "unauthorized"
	case editor.FailureProtocol, editor.FailureTransport:
		status, code = http.StatusBadGateway, "upstream_error"
	}
	a.error(w, status, code, f.Message)
}
