package theme

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	baseGrid   = 4
	baseMotion = 100 * time.Millisecond
)

const (
	fontDisplay = "'Bebas Neue', sans-serif"
	fontInter   = "'Inter', sans-serif"
	fontQuote   = "'Comic Neue', sans-serif"
)

// Resolve builds the token set for mode. Every call returns fresh tables, so
// switching modes replaces the whole set rather than patching it.
// mode must be ModeLight or ModeDark.
func Resolve(mode Mode) Tokens {
	return Tokens{
		mode:       mode,
		space:      spaceScale(),
		motion:     motionScale(),
		colors:     colorTable(mode),
		typography: typeScale(),
	}
}

func spaceScale() map[SpaceStep]int {
	return map[SpaceStep]int{
		Space4XS: baseGrid * 1,
		Space3XS: baseGrid * 2,
		Space2XS: baseGrid * 3,
		SpaceXS:  baseGrid * 4,
		SpaceS:   baseGrid * 6,
		SpaceM:   baseGrid * 8,
		SpaceL:   baseGrid * 12,
		SpaceXL:  baseGrid * 16,
	}
}

func motionScale() map[MotionStep]time.Duration {
	return map[MotionStep]time.Duration{
		MotionShort:  baseMotion * 2,
		MotionMedium: baseMotion * 3,
		MotionLong:   baseMotion * 5,
	}
}

// Achromatic grayscale plus one feedback colour.
func colorTable(mode Mode) map[ColorSlot]lipgloss.Color {
	if mode == ModeLight {
		return map[ColorSlot]lipgloss.Color{
			SurfacePrimary:   "#FFFFFF",
			SurfaceSecondary: "#F0F0F0",
			SurfaceTertiary:  "#E0E0E0",
			ContentPrimary:   "#1A1A1A",
			ContentSecondary: "#4D4D4D",
			ContentTertiary:  "#808080",
			FeedbackFocus:    "#3B82F6",
		}
	}
	return map[ColorSlot]lipgloss.Color{
		SurfacePrimary:   "#121212",
		SurfaceSecondary: "#1E1E1E",
		SurfaceTertiary:  "#2C2C2C",
		ContentPrimary:   "#E0E0E0",
		ContentSecondary: "#BDBDBD",
		ContentTertiary:  "#888888",
		FeedbackFocus:    "#60A5FA",
	}
}

// Material-style type scale.
func typeScale() map[FontFamily]map[FontSize]Font {
	return map[FontFamily]map[FontSize]Font{
		FamilyDisplay: {
			SizeL: {Family: fontDisplay, Size: 96, LineHeight: 100, Weight: 400, LetterSpacing: -1.5},
			SizeM: {Family: fontDisplay, Size: 60, LineHeight: 64, Weight: 400, LetterSpacing: -0.5},
			SizeS: {Family: fontDisplay, Size: 48, LineHeight: 52, Weight: 400, LetterSpacing: 0},
		},
		FamilyHeadline: {
			SizeL: {Family: fontInter, Size: 34, LineHeight: 40, Weight: 700, LetterSpacing: 0.25},
			SizeM: {Family: fontInter, Size: 24, LineHeight: 32, Weight: 700, LetterSpacing: 0.15},
			SizeS: {Family: fontInter, Size: 20, LineHeight: 28, Weight: 700, LetterSpacing: 0.1},
		},
		FamilyTitle: {
			SizeL: {Family: fontInter, Size: 20, LineHeight: 28, Weight: 500, LetterSpacing: 0.15},
			SizeM: {Family: fontInter, Size: 16, LineHeight: 24, Weight: 500, LetterSpacing: 0.15},
			SizeS: {Family: fontInter, Size: 14, LineHeight: 20, Weight: 500, LetterSpacing: 0.1},
		},
		FamilyLabel: {
			SizeL: {Family: fontInter, Size: 14, LineHeight: 20, Weight: 500, LetterSpacing: 0.1},
			SizeM: {Family: fontInter, Size: 12, LineHeight: 16, Weight: 500, LetterSpacing: 0.5},
			SizeS: {Family: fontInter, Size: 11, LineHeight: 16, Weight: 500, LetterSpacing: 0.5},
		},
		FamilyBody: {
			SizeL: {Family: fontInter, Size: 16, LineHeight: 24, Weight: 400, LetterSpacing: 0.5},
			SizeM: {Family: fontInter, Size: 14, LineHeight: 20, Weight: 400, LetterSpacing: 0.25},
			SizeS: {Family: fontInter, Size: 12, LineHeight: 16, Weight: 400, LetterSpacing: 0.4},
		},
		FamilyQuote: {
			SizeM: {Family: fontQuote, Size: 24, LineHeight: 32, Weight: 700, LetterSpacing: 0.15},
		},
	}
}

// TextStyle maps a font tuple and colour slot onto a terminal style. A
// terminal has one face and one size, so only weight survives as bold.
func (t Tokens) TextStyle(font Font, slot ColorSlot) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Color(slot)).
		Bold(font.Weight >= 700)
}

// CapsOnly reports whether the font's typeface only has capitals, in which
// case terminal text set in it is upper-cased.
func (f Font) CapsOnly() bool {
	return strings.Contains(f.Family, "Bebas Neue")
}

// Transform applies the typeface's case to s.
func (f Font) Transform(s string) string {
	if f.CapsOnly() {
		return strings.ToUpper(s)
	}
	return s
}
