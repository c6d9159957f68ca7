package colors

import (
	"errors"
	"fmt"
	"hash/crc32"
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

var colorMap = map[string]color.RGBA{
	"point":  {0x5d, 0x11, 0xf7, 255},
	"curve":  {0x32, 0x57, 0x1a, 255},
	"black":  {0, 0, 0, 255},
	"white":  {255, 255, 255, 255},
	"red":    {247, 10, 10, 255},
	"green":  {6, 245, 34, 255},
	"blue":   {26, 160, 253, 255},
	"orange": {247, 127, 10, 255},
	"pink":   {247, 21, 223, 255},
	"yellow": {244, 251, 18, 255},
}

// GetColor returns the named color or a stable color derived from name.
func GetColor(name string) color.RGBA {
	if c, ok := colorMap[strings.ToLower(name)]; ok {
		return c
	}
	return hashToRGB(name)
}

func hashToRGB(input string) color.RGBA {
	hash := crc32.ChecksumIEEE([]byte(input))
	return color.RGBA{byte(hash >> 8), byte(hash >> 16), byte(hash), 255}
}

// Parse accepts #rgb, #rrggbb, #rrggbbaa or a name. The # may be left out
// when the digits are valid hex. Palette names map to their palette color
// and any other name of letters, digits, '-', '_' or '.' maps to the stable
// color GetColor derives from it.
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorMap[strings.ToLower(s)]; ok {
		return color.NRGBA(c), nil
	}
	if c, err := parseHex(strings.TrimPrefix(s, "#")); err == nil {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") && isName(s) {
		return color.NRGBA(GetColor(s)), nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(hex string) (color.NRGBA, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, ErrInvalidColor
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, ErrInvalidColor
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// Hex formats c as #rrggbb, or #rrggbbaa when not opaque. The color is
// un-premultiplied first.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
