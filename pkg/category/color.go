package category

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const neutralHex = "#9ca3af"

// palette maps the built-in color tokens to RGB.
var palette = map[string]string{
	"bg-purple-500": "#a855f7",
	"bg-blue-500":   "#3b82f6",
	"bg-green-500":  "#22c55e",
	"bg-amber-500":  "#f59e0b",
	"bg-pink-500":   "#ec4899",
	"bg-red-500":    "#ef4444",
	"bg-gray-500":   "#6b7280",
}

// RGB resolves a color token. Known palette tokens and "#rrggbb" values
// resolve to themselves; anything else is neutral gray.
func RGB(token string) colorful.Color {
	token = strings.TrimSpace(token)
	if hex, ok := palette[token]; ok {
		token = hex
	}
	if strings.HasPrefix(token, "#") {
		if c, err := colorful.Hex(token); err == nil {
			return c
		}
	}
	c, _ := colorful.Hex(neutralHex)
	return c
}

// Hex is the resolved color of c as "#rrggbb".
func (c Category) Hex() string {
	return RGB(c.Color).Hex()
}

// Tint blends c's color toward bg by t in [0,1], for muted backgrounds.
func (c Category) Tint(bg string, t float64) string {
	return RGB(c.Color).BlendLab(RGB(bg), t).Clamped().Hex()
}
