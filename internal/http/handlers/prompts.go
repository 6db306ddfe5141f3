package handlers

import (
	"net/http"

	"github.com/iammuttaqi/gemini-nano-banana/internal/providers/prompt"
)

// Prompts lists the quick-edit instruction presets, with labels localized
// from the X-Locale header and then Accept-Language.
func (a *App) Prompts(w http.ResponseWriter, r *http.Request) {
	presets := prompt.Presets(r.Header.Get("X-Locale"), r.Header.Get("Accept-Language"))
	a.json(w, http.StatusOK, map[string]any{"items": presets})
}
