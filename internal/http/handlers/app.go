package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iammuttaqi/gemini-nano-banana/internal/editor"
	"github.com/iammuttaqi/gemini-nano-banana/internal/infra"
)

// EditService is the slice of the editor the HTTP layer depends on.
type EditService interface {
	Edit(ctx context.Context, req editor.EditRequest) (*editor.EditResult, error)
}

// App bundles the dependencies shared by all handlers.
type App struct {
	Logger infra.Logger
	Editor EditService
}

func NewApp(logger infra.Logger, edit EditService) *App {
	return &App{Logger: logger, Editor: edit}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}
