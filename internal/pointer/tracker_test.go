package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnterSetsPositionAndActivates(t *testing.T) {
	tr := NewTracker()
	tr.Enter(40, 25)

	require.True(t, tr.Active())
	require.Equal(t, Sample{X: 40, Y: 25}, tr.Sample())
}

func TestEnterTwiceKeepsLatestPosition(t *testing.T) {
	tr := NewTracker()

	transitions := 0
	tr.OnActivate(func(bool) { transitions++ })

	tr.Enter(10, 10)
	tr.Enter(30, 70)

	require.True(t, tr.Active())
	require.Equal(t, Sample{X: 30, Y: 70}, tr.Sample())
	require.Equal(t, 1, transitions)
}

func TestEnterPublishesPositionBeforeActivation(t *testing.T) {
	tr := NewTracker()

	var observed Sample
	tr.OnActivate(func(active bool) {
		if active {
			observed = tr.Sample()
		}
	})

	tr.Enter(120, 80)
	require.Equal(t, Sample{X: 120, Y: 80}, observed)
}

func TestReentryNeverPassesThroughOrigin(t *testing.T) {
	tr := NewTracker()

	var xs, ys []float64
	tr.X().OnChange(func(v float64) { xs = append(xs, v) })
	tr.Y().OnChange(func(v float64) { ys = append(ys, v) })

	tr.Enter(50, 50)
	tr.Leave()
	require.Equal(t, Sample{X: 50, Y: 50}, tr.Sample())

	tr.Enter(200, 300)
	require.Equal(t, Sample{X: 200, Y: 300}, tr.Sample())

	assert.NotContains(t, xs, 0.0)
	assert.NotContains(t, ys, 0.0)
}

func TestMoveDoesNotChangeActivation(t *testing.T) {
	tr := NewTracker()

	transitions := 0
	tr.OnActivate(func(bool) { transitions++ })

	tr.Move(5, 6)
	require.False(t, tr.Active())
	require.Equal(t, Sample{X: 5, Y: 6}, tr.Sample())

	tr.Enter(5, 6)
	tr.Move(7, 8)
	require.True(t, tr.Active())
	require.Equal(t, 1, transitions)
}

func TestLeaveRetainsPosition(t *testing.T) {
	tr := NewTracker()

	var states []bool
	tr.OnActivate(func(active bool) { states = append(states, active) })

	tr.Enter(9, 9)
	tr.Leave()
	tr.Leave()

	require.False(t, tr.Active())
	require.Equal(t, Sample{X: 9, Y: 9}, tr.Sample())
	require.Equal(t, []bool{true, false}, states)
}

func TestTouchUsesFirstPointOnly(t *testing.T) {
	tr := NewTracker()

	tr.TouchStart([]TouchPoint{{X: 1, Y: 2}, {X: 100, Y: 200}})
	require.True(t, tr.Active())
	require.Equal(t, Sample{X: 1, Y: 2}, tr.Sample())

	tr.TouchMove([]TouchPoint{{X: 3, Y: 4}, {X: 300, Y: 400}})
	require.Equal(t, Sample{X: 3, Y: 4}, tr.Sample())

	tr.TouchEnd()
	require.False(t, tr.Active())
	require.Equal(t, Sample{X: 3, Y: 4}, tr.Sample())
}

func TestEmptyTouchEventsAreIgnored(t *testing.T) {
	tr := NewTracker()
	tr.Enter(15, 25)

	moves := 0
	tr.X().OnChange(func(float64) { moves++ })
	tr.Y().OnChange(func(float64) { moves++ })

	tr.TouchMove(nil)
	tr.TouchMove([]TouchPoint{})

	require.True(t, tr.Active())
	require.Equal(t, Sample{X: 15, Y: 25}, tr.Sample())
	require.Zero(t, moves)

	tr.Leave()
	tr.TouchStart(nil)
	require.False(t, tr.Active())
}

func TestMouseAndTouchLastWriterWins(t *testing.T) {
	tr := NewTracker()

	tr.Enter(10, 10)
	tr.TouchMove([]TouchPoint{{X: 60, Y: 70}})
	require.Equal(t, Sample{X: 60, Y: 70}, tr.Sample())

	tr.Move(11, 12)
	require.Equal(t, Sample{X: 11, Y: 12}, tr.Sample())

	tr.TouchEnd()
	require.False(t, tr.Active())
}
