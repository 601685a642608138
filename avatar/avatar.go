// Package avatar draws the round initials avatars used for users and
// contacts.
package avatar

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/Bios-Marcel/join/views"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxColor = 0xffffff

// Generator renders avatars with a random background colour.
type Generator struct {
	intN func(n int) int
}

// New returns a generator. A nil intN uses math/rand.
func New(intN func(n int) int) *Generator {
	if intN == nil {
		intN = rand.Intn
	}
	return &Generator{intN: intN}
}

// SVG renders the avatar for name.
func (g *Generator) SVG(name string) string {
	return Monogram(Initials(name), g.Color())
}

// Color returns a random "#rrggbb" colour.
func (g *Generator) Color() string {
	return fmt.Sprintf("#%06x", g.intN(maxColor))
}

// Monogram renders initials on a circle of the given colour.
func Monogram(initials, color string) string {
	return views.Avatar(initials, color)
}

// Initials takes the first letter of every space separated word and
// upper-cases the result.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		if word == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return cases.Upper(language.Und).String(b.String())
}
