package prompt

import "testing"

func TestPresetsDefaultToEnglish(t *testing.T) {
	presets := Presets()
	if len(presets) == 0 {
		t.Fatal("expected at least one preset")
	}
	for _, p := range presets {
		if p.ID == "" || p.Label == "" || p.Instruction == "" {
			t.Fatalf("preset has empty field: %+v", p)
		}
	}
	if presets[0].ID != "vintage-film" {
		t.Fatalf("preset order changed: got %q first", presets[0].ID)
	}
	if presets[0].Label != "Vintage Film" {
		t.Fatalf("expected title-cased English label, got %q", presets[0].Label)
	}
}

func TestPresetsLocalizeLabels(t *testing.T) {
	presets := Presets("id-ID")
	if presets[0].Label != "Film Jadul" {
		t.Fatalf("expected Indonesian label, got %q", presets[0].Label)
	}
	// Instructions are model input and stay English regardless of locale.
	en := Presets("en")
	if presets[0].Instruction != en[0].Instruction {
		t.Fatal("instruction text must not vary by locale")
	}
}

func TestPresetsMatchAcceptLanguageFallback(t *testing.T) {
	presets := Presets("", "id, en;q=0.8")
	if presets[0].Label != "Film Jadul" {
		t.Fatalf("expected Accept-Language match, got %q", presets[0].Label)
	}
}

func TestPresetsUnknownLocaleFallsBack(t *testing.T) {
	presets := Presets("xx-klingon")
	if presets[0].Label != "Vintage Film" {
		t.Fatalf("expected English fallback, got %q", presets[0].Label)
	}
}
