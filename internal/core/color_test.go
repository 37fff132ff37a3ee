package core

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestColorNames(t *testing.T) {
	tests := []struct {
		c    Color
		name string
	}{
		{ColorRed, "red"},
		{ColorGreen, "green"},
		{ColorCyan, "cyan"},
		{ColorLimeGreen, "limegreen"},
		{ColorDefault, "white"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.name {
			t.Errorf("%d.String() = %q, expected %q", tt.c, got, tt.name)
		}
	}
}

func TestColorMarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		C Color `json:"c"`
	}{ColorCyan})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"c":"cyan"}` {
		t.Errorf("got %s", data)
	}
}

func TestColorRGBA(t *testing.T) {
	if got := ColorCyan.RGBA(); got != (color.RGBA{G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("cyan = %v", got)
	}
	for c := ColorDefault; c <= ColorGray; c++ {
		if c.RGBA().A != 0xff {
			t.Errorf("%v should be opaque", c)
		}
	}
}
