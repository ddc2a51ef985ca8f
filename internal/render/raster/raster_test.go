package raster

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
	"angle-selector.klederson.com/internal/render"
)

func newScene(t *testing.T) (*render.Scene, *dial.Selector) {
	t.Helper()
	scene := render.NewScene(100, 100)
	sel, err := dial.New(scene, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return scene, sel
}

func TestDrawSize(t *testing.T) {
	scene, _ := newScene(t)
	img := Draw(scene)
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 100+ReadoutHeight {
		t.Errorf("bounds = %v, want 100x%d", b, 100+ReadoutHeight)
	}
}

func TestDrawColors(t *testing.T) {
	scene, _ := newScene(t)
	img := Draw(scene)

	c := img.RGBAAt(50, 50)
	if c.R < 150 || c.G > 60 {
		t.Errorf("center pixel = %+v, want red", c)
	}

	// Tick 0 is centered at (95, 50).
	tick := img.RGBAAt(95, 50)
	if tick.B <= tick.R {
		t.Errorf("tick pixel = %+v, want steel blue", tick)
	}

	corner := img.RGBAAt(2, 2)
	if corner.R < 250 || corner.G < 250 || corner.B < 250 {
		t.Errorf("corner pixel = %+v, want background", corner)
	}
}

func TestDrawRotatedNeedle(t *testing.T) {
	scene, sel := newScene(t)
	if _, err := sel.Click(dial.Pointer{ClientX: 100, ClientY: 50}); err != nil {
		t.Fatal(err)
	}
	img := Draw(scene)

	// The needle now points right; the old upward spot is clear.
	right := img.RGBAAt(75, 50)
	if right.R < 200 || right.G > 200 {
		t.Errorf("needle pixel = %+v, want red tint", right)
	}
	up := img.RGBAAt(50, 25)
	if up.G < 240 {
		t.Errorf("upward pixel = %+v, want background", up)
	}
}

func TestEncodePNG(t *testing.T) {
	scene, _ := newScene(t)
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(scene), config.FormatPNG); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}
}

func TestEncodeWebP(t *testing.T) {
	scene, _ := newScene(t)
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(scene), config.FormatWebP); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) {
		t.Error("webp output missing RIFF header")
	}
}

func TestEncodeUnknown(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Draw(render.NewScene(10, 10)), config.FormatSVG); err == nil {
		t.Error("expected error for svg in raster encoder")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path, expected string
	}{
		{"dial.png", config.FormatPNG},
		{"dial.WEBP", config.FormatWebP},
		{"dial", config.FormatPNG},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.expected {
			t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestSave(t *testing.T) {
	scene, _ := newScene(t)
	path := filepath.Join(t.TempDir(), "out", "dial.png")
	if err := Save(path, scene, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a png: %v", err)
	}
}

func TestSaveFormat(t *testing.T) {
	scene, _ := newScene(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		format  string
		riff    bool
		wantErr bool
	}{
		{"extension webp", "a.webp", "", true, false},
		{"explicit webp", "a.img", config.FormatWebP, true, false},
		{"explicit png", "b.img", config.FormatPNG, false, false},
		{"conflicting extension", "c.png", config.FormatWebP, false, true},
		{"vector format", "d.png", config.FormatSVG, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			err := Save(path, scene, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if _, statErr := os.Stat(path); statErr == nil {
					t.Error("file written despite the error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if got := bytes.HasPrefix(data, []byte("RIFF")); got != tt.riff {
				t.Errorf("RIFF prefix = %v, want %v", got, tt.riff)
			}
		})
	}
}
