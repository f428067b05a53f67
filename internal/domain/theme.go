package domain

import (
	"fmt"
	"strings"
)

// Theme selects the light or dark palette. It is resolved once at startup and
// passed explicitly to whatever renders output.
type Theme struct {
	Dark bool
}

// Palette holds the colours a renderer needs. Values are colour names or hex codes.
type Palette struct {
	ButtonBackground string
	ButtonText       string
	Text             string
	Muted            string
	Danger           string
}

// ParseTheme converts "light" or "dark" (case-insensitive) into a Theme.
// An empty string selects the light theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return Theme{}, nil
	case "dark":
		return Theme{Dark: true}, nil
	default:
		return Theme{}, fmt.Errorf("%w: unknown theme %q (want light or dark)", ErrValidation, s)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	return Theme{Dark: !t.Dark}
}

// String returns "dark" or "light".
func (t Theme) String() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// Palette returns the colours for t.
func (t Theme) Palette() Palette {
	if t.Dark {
		return Palette{
			ButtonBackground: "#FFFF00",
			ButtonText:       "#000000",
			Text:             "#FFFFFF",
			Muted:            "#AAAAAA",
			Danger:           "#FF6666",
		}
	}
	return Palette{
		ButtonBackground: "#ADD8E6",
		ButtonText:       "#FFFFFF",
		Text:             "#333333",
		Muted:            "#666666",
		Danger:           "#FF6666",
	}
}
