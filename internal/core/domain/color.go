package domain

import (
	"strconv"
	"strings"
)

const (
	// DefaultTileColor fills a workplace cell whose workplace has no colour.
	DefaultTileColor = "#DC2626"
	// AbsentTileColor marks absent employees in employee display mode.
	AbsentTileColor = "#6B7280"

	textDark  = "#000000"
	textLight = "#FFFFFF"
)

// TextColorFor picks black or white text for readability on bg, using the
// perceived brightness (r*299 + g*587 + b*114) / 1000 with a threshold of 128.
// Unparseable colours get black text.
func TextColorFor(bg string) string {
	hex := strings.TrimPrefix(strings.TrimSpace(bg), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return textDark
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return textDark
	}
	r := (rgb >> 16) & 0xFF
	g := (rgb >> 8) & 0xFF
	b := rgb & 0xFF
	brightness := float64(r*299+g*587+b*114) / 1000
	if brightness > 128 {
		return textDark
	}
	return textLight
}

// IsTileColor reports whether c is a #RGB or #RRGGBB hex colour.
func IsTileColor(c string) bool {
	if len(c) != 4 && len(c) != 7 || c[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(c[1:], 16, 32)
	return err == nil
}

// TileColor returns the workplace colour or the default when unset.
func TileColor(c *string) string {
	if c == nil || strings.TrimSpace(*c) == "" {
		return DefaultTileColor
	}
	return *c
}
