// Package theme resolves the design tokens for a light or dark mode.
package theme

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects the colour table a theme is resolved with.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts user input into a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return 0, fmt.Errorf("unknown theme mode %q (want light or dark)", value)
	}
}

// SpaceStep names a step on the 4px spacing grid.
type SpaceStep string

const (
	Space4XS SpaceStep = "4xs"
	Space3XS SpaceStep = "3xs"
	Space2XS SpaceStep = "2xs"
	SpaceXS  SpaceStep = "xs"
	SpaceS   SpaceStep = "s"
	SpaceM   SpaceStep = "m"
	SpaceL   SpaceStep = "l"
	SpaceXL  SpaceStep = "xl"
)

// MotionStep names a step on the 100ms motion grid.
type MotionStep string

const (
	MotionShort  MotionStep = "short"
	MotionMedium MotionStep = "medium"
	MotionLong   MotionStep = "long"
)

// ColorSlot is a semantic colour path.
type ColorSlot string

const (
	SurfacePrimary   ColorSlot = "Color/Base/Surface/1"
	SurfaceSecondary ColorSlot = "Color/Base/Surface/2"
	SurfaceTertiary  ColorSlot = "Color/Base/Surface/3"
	ContentPrimary   ColorSlot = "Color/Base/Content/1"
	ContentSecondary ColorSlot = "Color/Base/Content/2"
	ContentTertiary  ColorSlot = "Color/Base/Content/3"
	FeedbackFocus    ColorSlot = "Color/Feedback/Focus/1"
)

// FontFamily names a row of the type scale.
type FontFamily string

const (
	FamilyDisplay  FontFamily = "display"
	FamilyHeadline FontFamily = "headline"
	FamilyTitle    FontFamily = "title"
	FamilyLabel    FontFamily = "label"
	FamilyBody     FontFamily = "body"
	FamilyQuote    FontFamily = "quote"
)

// FontSize names a column of the type scale.
type FontSize string

const (
	SizeL FontSize = "l"
	SizeM FontSize = "m"
	SizeS FontSize = "s"
)

// Font is a fixed typography tuple. Metrics are in px.
type Font struct {
	Family        string
	Size          float64
	LineHeight    float64
	Weight        int
	LetterSpacing float64
}

// Tokens is an immutable set of design tokens for one mode.
// Accessors return copies; the tables themselves are never exposed.
type Tokens struct {
	mode       Mode
	space      map[SpaceStep]int
	motion     map[MotionStep]time.Duration
	colors     map[ColorSlot]lipgloss.Color
	typography map[FontFamily]map[FontSize]Font
}

// Mode reports the mode the tokens were resolved with.
func (t Tokens) Mode() Mode {
	return t.mode
}

// Space returns the px value for a spacing step, or 0 when unknown.
func (t Tokens) Space(step SpaceStep) int {
	return t.space[step]
}

// Duration returns the duration for a motion step, or 0 when unknown.
func (t Tokens) Duration(step MotionStep) time.Duration {
	return t.motion[step]
}

// Color returns the colour for a semantic slot, or an empty colour when unknown.
func (t Tokens) Color(slot ColorSlot) lipgloss.Color {
	return t.colors[slot]
}

// Font looks up a typography tuple.
func (t Tokens) Font(family FontFamily, size FontSize) (Font, bool) {
	sizes, ok := t.typography[family]
	if !ok {
		return Font{}, false
	}
	font, ok := sizes[size]
	return font, ok
}

// SpaceSteps lists the spacing steps from smallest to largest.
func SpaceSteps() []SpaceStep {
	return []SpaceStep{Space4XS, Space3XS, Space2XS, SpaceXS, SpaceS, SpaceM, SpaceL, SpaceXL}
}

// MotionSteps lists the motion steps from shortest to longest.
func MotionSteps() []MotionStep {
	return []MotionStep{MotionShort, MotionMedium, MotionLong}
}

// ColorSlots lists every semantic colour slot.
func ColorSlots() []ColorSlot {
	return []ColorSlot{
		SurfacePrimary, SurfaceSecondary, SurfaceTertiary,
		ContentPrimary, ContentSecondary, ContentTertiary,
		FeedbackFocus,
	}
}

// TypeScale lists every family with the sizes it defines.
func TypeScale() map[FontFamily][]FontSize {
	full := []FontSize{SizeL, SizeM, SizeS}
	return map[FontFamily][]FontSize{
		FamilyDisplay:  full,
		FamilyHeadline: full,
		FamilyTitle:    full,
		FamilyLabel:    full,
		FamilyBody:     full,
		FamilyQuote:    {SizeM},
	}
}
