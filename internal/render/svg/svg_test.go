package svg

import (
	"bytes"
	"strings"
	"testing"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
	"angle-selector.klederson.com/internal/render"
)

func newScene(t *testing.T) (*render.Scene, *dial.Selector) {
	t.Helper()
	scene := render.NewScene(200, 200)
	sel, err := dial.New(scene, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return scene, sel
}

func TestWriteSVGStructure(t *testing.T) {
	scene, _ := newScene(t)
	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Errorf("not a single svg element:\n%s", out)
	}
	if n := strings.Count(out, `fill="steelblue"`); n != 12 {
		t.Errorf("tick circles = %d, want 12", n)
	}
	if n := strings.Count(out, "<circle"); n != 14 {
		t.Errorf("circles = %d, want 14", n)
	}
	if n := strings.Count(out, "<line"); n != 1 {
		t.Errorf("lines = %d, want 1", n)
	}
	if n := strings.Count(out, "<path"); n != 1 {
		t.Errorf("paths = %d, want 1", n)
	}
	if !strings.Contains(out, `height="200" width="200"`) {
		t.Error("svg size missing")
	}
	if !strings.Contains(out, `<g transform="translate(100,100)">`) {
		t.Error("tick group not translated to center")
	}
	if !strings.Contains(out, `transform="translate(95,0)"`) {
		t.Error("tick 0 not at radius - 5")
	}
	if !strings.Contains(out, `x1="100" y1="100" x2="100" y2="0"`) {
		t.Error("needle not from center to top")
	}
	if strings.Contains(out, "rotate(") {
		t.Error("arrow should not be rotated before a click")
	}
}

func TestWriteHTMLAfterClick(t *testing.T) {
	scene, sel := newScene(t)
	if _, err := sel.Click(dial.Pointer{ClientX: 200, ClientY: 100}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, scene); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, `<div class="angleselector-dialcontainer"><svg`) {
		t.Errorf("container missing:\n%s", out)
	}
	if !strings.Contains(out, `<div class="angleselector-display">90 Degree</div>`) {
		t.Error("display element missing")
	}
	if !strings.Contains(out, `transform="rotate(90 100,100)" style="transition: transform 300ms;"`) {
		t.Errorf("arrow rotation missing:\n%s", out)
	}
	if strings.Index(out, "angleselector-display") < strings.Index(out, "</svg>") {
		t.Error("display must follow the dial")
	}
}

func TestPathData(t *testing.T) {
	got := pathData([]dial.Point{{X: 0, Y: -2}, {X: 1, Y: 1}, {X: -1, Y: 1}})
	if got != "M0,-2L1,1 -1,1Z" {
		t.Errorf("pathData = %q", got)
	}
	if pathData(nil) != "" {
		t.Error("empty path")
	}
}
