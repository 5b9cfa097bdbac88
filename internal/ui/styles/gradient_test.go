package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	tests := []string{"", "d", "datecombo", "tarih seçici", "日付"}

	for _, text := range tests {
		got := ApplyBoldGradient(text, lipgloss.Color("#a78bfa"), lipgloss.Color("#f1a208"))
		if plain := ansi.Strip(got); plain != text {
			t.Errorf("ApplyBoldGradient(%q) stripped = %q", text, plain)
		}
	}
}

func TestApplyBoldGradient_NonHexFallsBack(t *testing.T) {
	got := ApplyBoldGradient("datecombo", lipgloss.Color("212"), lipgloss.Color("#f1a208"))

	if plain := ansi.Strip(got); plain != "datecombo" {
		t.Errorf("stripped = %q, want %q", plain, "datecombo")
	}
}

func TestTitleGradient(t *testing.T) {
	if plain := ansi.Strip(TitleGradient("Help")); plain != "Help" {
		t.Errorf("TitleGradient stripped = %q, want %q", plain, "Help")
	}
}
