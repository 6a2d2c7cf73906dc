package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func runUntilIdle(s *Sheet, limit int) {
	for i := 0; i < limit && s.Animating(); i++ {
		s.Tick(Frame())
	}
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 100.0, Interpolate(100, 30, 0, SheetDuration))
	assert.Equal(t, 30.0, Interpolate(100, 30, SheetDuration, SheetDuration))
	assert.InDelta(t, 65.0, Interpolate(100, 30, SheetDuration/2, SheetDuration), 0.001)
	assert.Equal(t, 30.0, Interpolate(100, 30, time.Second, 0))
}

func TestEaseInOutIsMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Equal(t, 1.0, prev)
}

func TestShakeSequence(t *testing.T) {
	assert.Equal(t, 0.0, ShakeOffset(0))
	assert.Equal(t, 10.0, ShakeOffset(ShakeStep))
	assert.Equal(t, -10.0, ShakeOffset(2*ShakeStep))
	assert.Equal(t, 0.0, ShakeOffset(3*ShakeStep))
	assert.InDelta(t, 0.0, ShakeOffset(ShakeStep+ShakeStep/2), 0.001)

	assert.False(t, ShakeDone(2*ShakeStep))
	assert.True(t, ShakeDone(3*ShakeStep))
}

func TestSheetOpensToThirtyPercent(t *testing.T) {
	s := NewSheet(1000)
	assert.False(t, s.Visible())
	assert.Equal(t, 1000.0, s.Top())

	s.Open()
	assert.True(t, s.Visible())
	s.Tick(SheetDuration / 2)
	assert.InDelta(t, 650.0, s.Top(), 0.001)
	s.Tick(SheetDuration / 2)

	assert.False(t, s.Animating())
	assert.Equal(t, 300.0, s.Top())
}

func TestSheetCloses(t *testing.T) {
	s := NewSheet(1000)
	s.Open()
	s.Tick(SheetDuration)

	s.Close()
	s.Tick(SheetDuration)
	assert.False(t, s.Visible())
	assert.Equal(t, 1000.0, s.Top())
}

func TestSmallDragSpringsBack(t *testing.T) {
	s := NewSheet(1000)
	s.Open()
	s.Tick(SheetDuration)

	s.Drag(5)
	assert.Equal(t, 300.0, s.Top(), "movement under the start threshold is ignored")

	s.Drag(120)
	assert.Equal(t, 420.0, s.Top())
	s.Drag(-50)
	assert.Equal(t, 420.0, s.Top(), "upward drags do not lift the sheet")

	s.Drag(120)
	s.Release()
	assert.True(t, s.Animating())
	runUntilIdle(&s, 10*FPS)

	assert.True(t, s.Visible())
	assert.Equal(t, 300.0, s.Top())
}

func TestLongDragCloses(t *testing.T) {
	s := NewSheet(1000)
	s.Open()
	s.Tick(SheetDuration)

	s.Drag(200)
	s.Release()
	runUntilIdle(&s, 10*FPS)

	assert.False(t, s.Visible())
	assert.Equal(t, 1000.0, s.Top())
}

func TestResizeKeepsRestingPositions(t *testing.T) {
	s := NewSheet(1000)
	s.Resize(500)
	assert.Equal(t, 500.0, s.Top())

	s.Open()
	s.Tick(SheetDuration)
	s.Resize(2000)
	assert.Equal(t, 600.0, s.Top())
}
