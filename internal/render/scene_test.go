package render

import (
	"testing"
	"time"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
)

func TestSceneRecordsDial(t *testing.T) {
	start := time.Unix(10, 0)
	s := NewScene(120, 80)
	s.SetClock(func() time.Time { return start })

	sel, err := dial.New(s, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Circles) != 14 || len(s.Lines) != 1 || len(s.Paths) != 1 {
		t.Errorf("recorded %d circles, %d lines, %d paths", len(s.Circles), len(s.Lines), len(s.Paths))
	}
	if s.Rotated {
		t.Error("no rotation before a click")
	}

	if _, err := sel.Click(dial.Pointer{ClientX: 60, ClientY: 79}); err != nil {
		t.Fatal(err)
	}
	if !s.Rotated || s.Target != 180 || s.Duration != config.TransitionDuration {
		t.Errorf("rotation = %v %v %v", s.Rotated, s.Target, s.Duration)
	}
	if s.Pivot != (dial.Point{X: 60, Y: 40}) {
		t.Errorf("Pivot = %+v", s.Pivot)
	}
	if s.Text != "180 Degree" {
		t.Errorf("Text = %q", s.Text)
	}
	if !s.Animating(start) || s.Animating(start.Add(time.Second)) {
		t.Error("animation window mismatch")
	}
	if got := s.Rotation(start.Add(time.Second)); got != 180 {
		t.Errorf("settled rotation = %v", got)
	}
}
