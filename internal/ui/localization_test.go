package ui

import (
	"testing"

	"github.com/mindguard/dashboard/internal/model"
)

func TestLocalizationDefaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeySubtitle); got != "Real-Time Emotional State" {
		t.Errorf("Unexpected subtitle %q", got)
	}
	if got := l.GetText(model.MoodCalm); got != "Calm" {
		t.Errorf("Unexpected mood label %q", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("pt")
	if got := l.GetText(model.EntryHistory); got != "Histórico" {
		t.Errorf("Expected Portuguese history label, got %q", got)
	}

	// Unknown languages keep the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language to stay pt, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system language to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalizationCoversEveryLanguage(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for _, lang := range []string{"en", "ru", "pt"} {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Language %s has no texts", lang)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestGetTexts(t *testing.T) {
	l := NewLocalization()

	got := l.GetTexts(model.NavItems())
	expected := []string{"Dashboard", "Alerts", "History"}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d texts, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Text %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}
