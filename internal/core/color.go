package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"gray":    ColorGray,
}

// ParseColor looks up a color by its lowercase name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// Category tags a drawn cell with what it represents. It exists only at the
// rendering boundary; the simulation itself works on plain positions.
type Category uint8

const (
	CategoryBorder Category = iota
	CategoryFood
	CategoryHead
	CategoryBody
)

func (c Category) String() string {
	switch c {
	case CategoryBorder:
		return "border"
	case CategoryFood:
		return "food"
	case CategoryHead:
		return "head"
	case CategoryBody:
		return "body"
	default:
		return "unknown"
	}
}
