package avatar

import (
	"regexp"
	"strings"
	"testing"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Günther Jauch":       "GJ",
		"walter röhrich":      "WR",
		"ändreas  ernst":      "ÄE",
		"single":              "S",
		"":                    "",
		"Anna Maria Schmidt ": "AMS",
	}
	for name, want := range cases {
		if got := Initials(name); got != want {
			t.Fatalf("%q: expected %q, got %q", name, want, got)
		}
	}
}

func TestColorIsZeroPadded(t *testing.T) {
	g := New(func(int) int { return 0x00beef })
	if got := g.Color(); got != "#00beef" {
		t.Fatalf("expected #00beef, got %q", got)
	}

	valid := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	random := New(nil)
	for i := 0; i < 100; i++ {
		if c := random.Color(); !valid.MatchString(c) {
			t.Fatalf("invalid colour %q", c)
		}
	}
}

func TestSVG(t *testing.T) {
	g := New(func(int) int { return 0xf28034 })
	got := g.SVG("Günther Jauch")
	want := `<svg width="100%" height="100%" viewBox="0 0 100 100"><circle cx="50" cy="50" r="40" fill="#f28034"></circle><text x="50" y="60" font-family="Arial" font-size="24" fill="white" text-anchor="middle">GJ</text></svg>`
	if got != want {
		t.Fatalf("unexpected markup:\n%s", got)
	}
}

func TestMonogramEscapes(t *testing.T) {
	got := Monogram("<B", "#000000")
	if strings.Contains(got, "<B") || !strings.Contains(got, "&lt;B") {
		t.Fatalf("expected escaped initials, got %s", got)
	}
}
