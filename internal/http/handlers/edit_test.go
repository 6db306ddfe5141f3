package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iammuttaqi/gemini-nano-banana/internal/editor"
	"github.com/iammuttaqi/gemini-nano-banana/internal/infra"
)

type stubEditor struct {
	result  *editor.EditResult
	err     error
	lastReq editor.EditRequest
	calls   int
}

func (s *stubEditor) Edit(ctx context.Context, req editor.EditRequest) (*editor.EditResult, error) {
	s.calls++
	s.lastReq = req
	return s.result, s.err
}

func newTestApp(edit EditService) *App {
	return NewApp(infra.Logger(zerolog.New(io.Discard)), edit)
}

func multipartBody(t *testing.T, instruction string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if instruction != "" {
		if err := mw.WriteField("instruction", instruction); err != nil {
			t.Fatalf("write instruction: %v", err)
		}
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", "photo.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return envelope.Error.Code, envelope.Error.Message
}

func TestEditImageSuccess(t *testing.T) {
	stub := &stubEditor{result: &editor.EditResult{Image: "data:image/png;base64,ZWRpdGVk", Text: "done"}}
	app := newTestApp(stub)

	body, contentType := multipartBody(t, "Vintage Film", []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/v1/edits", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	app.EditImage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
	}
	var resp editResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Image != "data:image/png;base64,ZWRpdGVk" || resp.Text != "done" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if stub.lastReq.Instruction != "Vintage Film" {
		t.Fatalf("instruction not forwarded: %q", stub.lastReq.Instruction)
	}
	if stub.lastReq.Image.Data == "" {
		t.Fatal("image payload not forwarded")
	}
	if strings.HasPrefix(stub.lastReq.Image.Data, "data:") {
		t.Fatal("payload must carry no data-URI prefix")
	}
}

func TestEditImageMissingFile(t *testing.T) {
	stub := &stubEditor{}
	app := newTestApp(stub)

	body, contentType := multipartBody(t, "Vintage Film", nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/edits", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	app.EditImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	if stub.calls != 0 {
		t.Fatal("editor must not be invoked without a file")
	}
}

func TestEditImageNotMultipart(t *testing.T) {
	app := newTestApp(&stubEditor{})

	req := httptest.NewRequest(http.MethodPost, "/v1/edits", strings.NewReader(`{"instruction":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.EditImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestEditImageFailureMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &editor.Failure{Kind: editor.FailureValidation, Message: editor.MsgInstructionRequired}, http.StatusBadRequest, "bad_request"},
		{"authorization", &editor.Failure{Kind: editor.FailureAuthorization, Message: editor.MsgAuthorization}, http.StatusUnauthorized, "unauthorized"},
		{"protocol", &editor.Failure{Kind: editor.FailureProtocol, Message: editor.MsgTryAgain}, http.StatusBadGateway, "upstream_error"},
		{"transport", &editor.Failure{Kind: editor.FailureTransport, Message: editor.MsgTryAgain}, http.StatusBadGateway, "upstream_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubEditor{err: tt.err})

			body, contentType := multipartBody(t, "restyle", []byte("fake-png"))
			req := httptest.NewRequest(http.MethodPost, "/v1/edits", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			app.EditImage(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d want %d", rec.Code, tt.wantStatus)
			}
			code, _ := decodeError(t, rec)
			if code != tt.wantCode {
				t.Fatalf("code: got %q want %q", code, tt.wantCode)
			}
		})
	}
}

func TestEditImageAuthorizationMessageIsDistinct(t *testing.T) {
	app := newTestApp(&stubEditor{err: &editor.Failure{Kind: editor.FailureAuthorization, Message: editor.MsgAuthorization}})

	body, contentType := multipartBody(t, "restyle", []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/v1/edits", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	app.EditImage(rec, req)

	_, msg := decodeError(t, rec)
	if msg != editor.MsgAuthorization {
		t.Fatalf("message: got %q want %q", msg, editor.MsgAuthorization)
	}
	if msg == editor.MsgTryAgain {
		t.Fatal("authorization message must differ from the generic retry message")
	}
}
