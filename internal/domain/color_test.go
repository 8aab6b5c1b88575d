package domain

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#AABBCC", "#aabbcc", false},
		{"aabbcc", "#aabbcc", false},
		{" #112233 ", "#112233", false},
		{"#fff", "#ffffff", false},
		{"#12345", "", true},
		{"#1234567", "", true},
		{"#gggggg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if c.Hex() != tt.want {
				t.Errorf("ParseHex(%q).Hex() = %s, want %s", tt.in, c.Hex(), tt.want)
			}
		})
	}
}

func TestColor_ZeroValue(t *testing.T) {
	var c Color
	if !c.IsZero() {
		t.Error("zero Color should be unset")
	}
	if c.Hex() != "" {
		t.Errorf("zero Color Hex() = %q, want empty", c.Hex())
	}
}

func TestFromHSL_PrimaryColors(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "#ff0000"},
		{120, 1, 0.5, "#00ff00"},
		{240, 1, 0.5, "#0000ff"},
		{360, 1, 0.5, "#ff0000"},
		{0, 0, 0, "#000000"},
		{0, 0, 1, "#ffffff"},
	}

	for _, tt := range tests {
		if got := FromHSL(tt.h, tt.s, tt.l).Hex(); got != tt.want {
			t.Errorf("FromHSL(%v,%v,%v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestResetSliders(t *testing.T) {
	got := ResetSliders(MustParseHex("#ff0000"))
	want := Sliders{Hue: 0, Saturation: 1, Lightness: 0.5}
	if got != want {
		t.Errorf("ResetSliders(#ff0000) = %+v, want %+v", got, want)
	}

	got = ResetSliders(MustParseHex("#808080"))
	if got.Saturation != 0 || got.Lightness != 0.5 {
		t.Errorf("ResetSliders(#808080) = %+v", got)
	}
}

func TestSliders_With(t *testing.T) {
	s := Sliders{Hue: 10, Saturation: 0.2, Lightness: 0.3}

	s2 := s.With(Saturation, 0.9)
	if s2.Saturation != 0.9 || s.Saturation != 0.2 {
		t.Errorf("With() = %+v, original %+v", s2, s)
	}
	if s2.Get(Hue) != 10 || s2.Get(Lightness) != 0.3 {
		t.Errorf("With() changed other channels: %+v", s2)
	}
}

func TestChannel_Validate(t *testing.T) {
	tests := []struct {
		ch      Channel
		v       float64
		wantErr bool
	}{
		{Hue, 0, false},
		{Hue, 360, false},
		{Hue, 361, true},
		{Hue, -1, true},
		{Saturation, 0.5, false},
		{Saturation, 1.01, true},
		{Lightness, 1, false},
		{Lightness, -0.1, true},
	}

	for _, tt := range tests {
		err := tt.ch.Validate(tt.v)
		if tt.wantErr != (err != nil) {
			t.Errorf("%s.Validate(%v) error = %v, wantErr %v", tt.ch, tt.v, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidValue) {
			t.Errorf("%s.Validate(%v) error = %v, want ErrInvalidValue", tt.ch, tt.v, err)
		}
	}
}

func TestParseChannel(t *testing.T) {
	tests := map[string]Channel{
		"hue":        Hue,
		"H":          Hue,
		"saturation": Saturation,
		"s":          Saturation,
		"lightness":  Lightness,
		"brightness": Lightness,
	}
	for in, want := range tests {
		got, err := ParseChannel(in)
		if err != nil || got != want {
			t.Errorf("ParseChannel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseChannel("alpha"); err == nil {
		t.Error("ParseChannel(alpha) should fail")
	}
}
