package theme

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReturnsCompleteTables(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		t.Run(mode.String(), func(t *testing.T) {
			tokens := Resolve(mode)
			require.Equal(t, mode, tokens.Mode())

			require.Len(t, SpaceSteps(), 8)
			for _, step := range SpaceSteps() {
				assert.NotZero(t, tokens.Space(step), "space %s", step)
			}

			require.Len(t, MotionSteps(), 3)
			for _, step := range MotionSteps() {
				assert.NotZero(t, tokens.Duration(step), "motion %s", step)
			}

			require.Len(t, ColorSlots(), 7)
			for _, slot := range ColorSlots() {
				assert.NotEmpty(t, string(tokens.Color(slot)), "color %s", slot)
			}

			scale := TypeScale()
			require.Len(t, scale, 6)
			for family, sizes := range scale {
				for _, size := range sizes {
					font, ok := tokens.Font(family, size)
					require.True(t, ok, "font %s.%s", family, size)
					assert.NotEmpty(t, font.Family)
					assert.Positive(t, font.Size)
					assert.Positive(t, font.LineHeight)
				}
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	a := Resolve(ModeDark)
	b := Resolve(ModeDark)
	require.Equal(t, a, b)
}

func TestSpacingFollowsFourPixelGrid(t *testing.T) {
	tokens := Resolve(ModeLight)
	expected := []int{4, 8, 12, 16, 24, 32, 48, 64}
	for i, step := range SpaceSteps() {
		require.Equal(t, expected[i], tokens.Space(step), "step %s", step)
		require.Zero(t, tokens.Space(step)%4)
	}
}

func TestMotionFollowsHundredMillisecondGrid(t *testing.T) {
	tokens := Resolve(ModeLight)
	require.Equal(t, 200*time.Millisecond, tokens.Duration(MotionShort))
	require.Equal(t, 300*time.Millisecond, tokens.Duration(MotionMedium))
	require.Equal(t, 500*time.Millisecond, tokens.Duration(MotionLong))
}

func TestColorsDifferPerMode(t *testing.T) {
	light := Resolve(ModeLight)
	dark := Resolve(ModeDark)

	require.Equal(t, lipgloss.Color("#FFFFFF"), light.Color(SurfacePrimary))
	require.Equal(t, lipgloss.Color("#121212"), dark.Color(SurfacePrimary))
	require.Equal(t, lipgloss.Color("#1E1E1E"), dark.Color(SurfaceSecondary))
	require.Equal(t, lipgloss.Color("#60A5FA"), dark.Color(FeedbackFocus))
}

func TestTokensAreNotSharedBetweenResolves(t *testing.T) {
	first := Resolve(ModeDark)
	first.colors[SurfacePrimary] = "#000000"

	second := Resolve(ModeDark)
	require.Equal(t, lipgloss.Color("#121212"), second.Color(SurfacePrimary))
}

func TestFontLookupMissing(t *testing.T) {
	tokens := Resolve(ModeDark)

	_, ok := tokens.Font(FamilyQuote, SizeL)
	require.False(t, ok)

	_, ok = tokens.Font("caption", SizeM)
	require.False(t, ok)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "light", want: ModeLight},
		{input: "Dark", want: ModeDark},
		{input: " dark ", want: ModeDark},
		{input: "sepia", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFontCaseTransform(t *testing.T) {
	tokens := Resolve(ModeDark)

	display, _ := tokens.Font(FamilyDisplay, SizeL)
	require.True(t, display.CapsOnly())
	require.Equal(t, "STATE LAYER", display.Transform("State Layer"))

	body, _ := tokens.Font(FamilyBody, SizeL)
	require.False(t, body.CapsOnly())
	require.Equal(t, "State Layer", body.Transform("State Layer"))
}

func TestTextStyleBoldFollowsWeight(t *testing.T) {
	tokens := Resolve(ModeDark)

	headline, _ := tokens.Font(FamilyHeadline, SizeL)
	require.True(t, tokens.TextStyle(headline, ContentPrimary).GetBold())

	body, _ := tokens.Font(FamilyBody, SizeL)
	style := tokens.TextStyle(body, ContentSecondary)
	require.False(t, style.GetBold())
	require.Equal(t, lipgloss.TerminalColor(lipgloss.Color("#BDBDBD")), style.GetForeground())
}
