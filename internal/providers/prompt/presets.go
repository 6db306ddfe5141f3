package prompt

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Preset is a ready-made editing instruction a client can offer as a one-tap
// option. Instruction text is always English (it is model input, not UI
// copy); only the label is localized.
type Preset struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Instruction string `json:"instruction"`
}

type presetDef struct {
	id          string
	labels      map[language.Tag]string
	instruction string
}

var supported = []language.Tag{language.English, language.Indonesian}

var matcher = language.NewMatcher(supported)

var presetDefs = []presetDef{
	{
		id: "vintage-film",
		labels: map[language.Tag]string{
			language.English:    "vintage film",
			language.Indonesian: "film jadul",
		},
		instruction: "Give this photo a vintage film look with warm faded colors, soft grain, and a subtle vignette.",
	},
	{
		id: "watercolor",
		labels: map[language.Tag]string{
			language.English:    "watercolor",
			language.Indonesian: "cat air",
		},
		instruction: "Repaint this photo as a delicate watercolor painting with soft washes and visible paper texture.",
	},
	{
		id: "synthwave",
		labels: map[language.Tag]string{
			language.English:    "synthwave",
			language.Indonesian: "synthwave",
		},
		instruction: "Restyle this photo with a retro synthwave aesthetic: neon magenta and cyan lighting, chrome accents, and a sunset grid horizon.",
	},
	{
		id: "anime",
		labels: map[language.Tag]string{
			language.English:    "anime",
			language.Indonesian: "anime",
		},
		instruction: "Redraw this photo in a clean hand-drawn anime style with cel shading and expressive lighting.",
	},
	{
		id: "renaissance",
		labels: map[language.Tag]string{
			language.English:    "renaissance portrait",
			language.Indonesian: "lukisan renaisans",
		},
		instruction: "Transform this photo into a Renaissance oil painting with dramatic chiaroscuro lighting and rich earthy tones.",
	},
	{
		id: "studio-light",
		labels: map[language.Tag]string{
			language.English:    "studio lighting",
			language.Indonesian: "cahaya studio",
		},
		instruction: "Relight this photo as a professional studio shot: soft key light, gentle fill, and a clean neutral backdrop.",
	},
}

// Presets returns the quick-edit presets with labels localized for the best
// match among the given locale hints (e.g. an X-Locale header value followed
// by Accept-Language). Unknown or empty hints fall back to English.
func Presets(hints ...string) []Preset {
	tag := match(hints)
	titler := cases.Title(tag)

	out := make([]Preset, len(presetDefs))
	for i, def := range presetDefs {
		label, ok := def.labels[tag]
		if !ok {
			label = def.labels[language.English]
		}
		out[i] = Preset{
			ID:          def.id,
			Label:       titler.String(label),
			Instruction: def.instruction,
		}
	}
	return out
}

func match(hints []string) language.Tag {
	nonEmpty := make([]string, 0, len(hints))
	for _, h := range hints {
		if h != "" {
			nonEmpty = append(nonEmpty, h)
		}
	}
	if len(nonEmpty) == 0 {
		return language.English
	}
	_, index := language.MatchStrings(matcher, nonEmpty...)
	return supported[index]
}
