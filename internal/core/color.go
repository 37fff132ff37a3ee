package core

import "image/color"

// Color is a foreground colour tag for a screen cell or a world entity.
// Terminal hosts map it to ANSI codes, pixel hosts to RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorLimeGreen
	ColorBlack
	ColorGray
)

// String returns the CSS colour name used by the browser surfaces.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorLimeGreen:
		return "limegreen"
	case ColorBlack:
		return "black"
	case ColorGray:
		return "gray"
	default:
		return "white"
	}
}

// MarshalText lets snapshots carry colours as names.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// RGBA returns the colour for pixel renderers.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 0xff, A: 0xff}
	case ColorGreen:
		return color.RGBA{G: 0x80, A: 0xff}
	case ColorYellow:
		return color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	case ColorCyan:
		return color.RGBA{G: 0xff, B: 0xff, A: 0xff}
	case ColorLimeGreen:
		return color.RGBA{R: 0x32, G: 0xcd, B: 0x32, A: 0xff}
	case ColorBlack:
		return color.RGBA{A: 0xff}
	case ColorGray:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	default:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
}
