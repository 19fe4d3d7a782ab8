package main

import "testing"

func TestModeSupports(t *testing.T) {
	cases := []struct {
		mode *Mode
		path string
		want bool
	}{
		{modeToHeic, "a.jpg", true},
		{modeToHeic, "a.JPG", true},
		{modeToHeic, "photo.jpeg", true},
		{modeToHeic, "scan.tiff", true},
		{modeToHeic, "anim.gif", true},
		{modeToHeic, "pic.bmp", true},
		{modeToHeic, "x.heic", false},
		{modeToHeic, "noext", false},
		{modeToJpeg, "x.heic", true},
		{modeToJpeg, "x.HEIC", true},
		{modeToJpeg, "a.jpg", false},
		{modeToAvif, "b.png", true},
		{modeToAvif, "x.heic", false},
	}
	for _, tc := range cases {
		if got := tc.mode.Supports(tc.path); got != tc.want {
			t.Errorf("%s.Supports(%q) = %v, want %v", tc.mode.Name, tc.path, got, tc.want)
		}
	}
}

func TestModeOutputName(t *testing.T) {
	cases := []struct {
		mode *Mode
		src  string
		want string
	}{
		{modeToHeic, "/in/photo.jpg", "photo.heic"},
		{modeToHeic, "archive.v1.png", "archive.v1.heic"},
		{modeToJpeg, "/in/pic.heic", "pic.jpg"},
		{modeToAvif, "shot.jpeg", "shot.avif"},
	}
	for _, tc := range cases {
		if got := tc.mode.OutputName(tc.src); got != tc.want {
			t.Errorf("%s.OutputName(%q) = %q, want %q", tc.mode.Name, tc.src, got, tc.want)
		}
	}
}

func TestModeFor(t *testing.T) {
	if m, err := ModeFor("HEIC"); err != nil || m != modeToHeic {
		t.Errorf("ModeFor(HEIC) = %v, %v", m, err)
	}
	if _, err := ModeFor("bmp"); err == nil {
		t.Error("ModeFor(bmp) should fail")
	}
}
