package battleship

import (
	"strings"
	"unicode"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeShot upper-cases the raw input line with full case
// mapping, so "ß1" becomes "SS1".
func NormalizeShot(raw string) string {
	return cases.Upper(language.Und).String(strings.TrimSuffix(raw, "\r"))
}

// ParseShot decodes a normalized label such as "C3" into zero-based
// coordinates. Format is checked before bounds.
func ParseShot(shot string) (Coordinates, error) {
	runes := []rune(shot)
	if len(runes) != 2 || !unicode.IsLetter(runes[0]) || !unicode.IsDigit(runes[1]) {
		return Coordinates{}, cerr.ErrInvalidShotFormat(shot)
	}

	coords := NewCoordinates(int(runes[1]-'1'), int(runes[0]-'A'))
	if !coords.IsInGrid() {
		return Coordinates{}, cerr.ErrRowOrColOutOfGridBound(coords.Row, coords.Col)
	}

	return coords, nil
}

func (c Coordinates) Label() string {
	return string([]rune{rune('A' + c.Col), rune('1' + c.Row)})
}
