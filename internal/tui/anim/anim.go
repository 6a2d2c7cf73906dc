// Package anim drives the profile screen's bottom sheet and call-to-action shake.
// Positions are in nominal pixels; one terminal row is RowHeight pixels.
package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	FPS       = 60
	RowHeight = 16.0

	SheetDuration      = 300 * time.Millisecond
	SheetOpenFraction  = 0.3   // open sheet top, as a fraction of screen height
	DragStartThreshold = 10.0  // vertical movement before a drag is recognised
	DragCloseThreshold = 150.0 // release beyond this closes the sheet

	ShakeStep = 100 * time.Millisecond
)

// ShakeOffsets is the horizontal offset sequence of one shake, ShakeStep apart
var ShakeOffsets = []float64{10, -10, 0}

// Frame is the duration of one animation frame
func Frame() time.Duration {
	return time.Second / FPS
}

// EaseInOut maps linear progress in [0,1] onto a symmetric ease curve
func EaseInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 2 * t * t
	default:
		return 1 - math.Pow(-2*t+2, 2)/2
	}
}

// Interpolate returns the eased position between from and to after elapsed
func Interpolate(from, to float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return to
	}
	if elapsed <= 0 {
		return from
	}
	return from + (to-from)*EaseInOut(float64(elapsed)/float64(duration))
}

// ShakeOffset returns the offset at elapsed time into one shake
func ShakeOffset(elapsed time.Duration) float64 {
	if elapsed < 0 {
		return 0
	}
	step := int(elapsed / ShakeStep)
	if step >= len(ShakeOffsets) {
		return 0
	}
	prev := 0.0
	if step > 0 {
		prev = ShakeOffsets[step-1]
	}
	return Interpolate(prev, ShakeOffsets[step], elapsed-time.Duration(step)*ShakeStep, ShakeStep)
}

// ShakeDone reports whether a shake started elapsed ago has finished
func ShakeDone(elapsed time.Duration) bool {
	return elapsed >= time.Duration(len(ShakeOffsets))*ShakeStep
}

type sheetPhase int

const (
	sheetHidden sheetPhase = iota
	sheetOpening
	sheetOpen
	sheetDragging
	sheetSpringing
	sheetClosing
)

// Sheet is a bottom sheet that slides up from below the screen
type Sheet struct {
	screen float64
	top    float64
	phase  sheetPhase

	from, to float64
	elapsed  time.Duration

	drag   float64
	spring harmonica.Spring
	vel    float64
}

// NewSheet creates a hidden sheet for a screen of the given height
func NewSheet(screenHeight float64) Sheet {
	return Sheet{
		screen: screenHeight,
		top:    screenHeight,
		spring: harmonica.NewSpring(harmonica.FPS(FPS), 6.0, 0.55),
	}
}

// Resize changes the screen height, keeping a hidden sheet off screen
func (s *Sheet) Resize(screenHeight float64) {
	switch s.phase {
	case sheetHidden:
		s.top = screenHeight
	case sheetOpen:
		s.top = screenHeight * SheetOpenFraction
	}
	s.screen = screenHeight
}

// OpenTop is the resting top position of an open sheet
func (s Sheet) OpenTop() float64 {
	return s.screen * SheetOpenFraction
}

// Top returns the current top position
func (s Sheet) Top() float64 {
	return s.top
}

// Visible reports whether any part of the sheet is on screen or animating
func (s Sheet) Visible() bool {
	return s.phase != sheetHidden
}

// Animating reports whether Tick still has work to do
func (s Sheet) Animating() bool {
	return s.phase == sheetOpening || s.phase == sheetClosing || s.phase == sheetSpringing
}

// Open slides the sheet up to its resting position
func (s *Sheet) Open() {
	s.startTiming(s.OpenTop(), sheetOpening)
}

// Close slides the sheet back below the screen
func (s *Sheet) Close() {
	if s.phase == sheetHidden {
		return
	}
	s.startTiming(s.screen, sheetClosing)
}

func (s *Sheet) startTiming(to float64, phase sheetPhase) {
	s.from, s.to = s.top, to
	s.elapsed = 0
	s.vel = 0
	s.phase = phase
}

// Drag applies the total vertical movement dy since the gesture began.
// Movement within DragStartThreshold is ignored and upward drags are clamped.
func (s *Sheet) Drag(dy float64) {
	if s.phase != sheetOpen && s.phase != sheetDragging && s.phase != sheetSpringing {
		return
	}
	if s.phase != sheetDragging && math.Abs(dy) <= DragStartThreshold {
		return
	}
	s.phase = sheetDragging
	s.drag = dy
	if dy > 0 {
		s.top = s.OpenTop() + dy
	}
}

// Release ends a drag, closing past DragCloseThreshold and springing back otherwise
func (s *Sheet) Release() {
	if s.phase != sheetDragging {
		return
	}
	dy := s.drag
	s.drag = 0
	if dy > DragCloseThreshold {
		s.Close()
		return
	}
	s.phase = sheetSpringing
	s.vel = 0
}

// Tick advances the animation by dt
func (s *Sheet) Tick(dt time.Duration) {
	switch s.phase {
	case sheetOpening, sheetClosing:
		s.elapsed += dt
		s.top = Interpolate(s.from, s.to, s.elapsed, SheetDuration)
		if s.elapsed >= SheetDuration {
			if s.phase == sheetOpening {
				s.phase = sheetOpen
			} else {
				s.phase = sheetHidden
			}
		}
	case sheetSpringing:
		target := s.OpenTop()
		for frames := max(1, int(dt/Frame())); frames > 0; frames-- {
			s.top, s.vel = s.spring.Update(s.top, s.vel, target)
		}
		if math.Abs(s.top-target) < 0.5 && math.Abs(s.vel) < 0.5 {
			s.top = target
			s.vel = 0
			s.phase = sheetOpen
		}
	}
}
