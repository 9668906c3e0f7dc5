package view

// dayPalette is the cyclic per-day marker/route palette used by the map.
var dayPalette = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#84CC16", // lime
	"#F97316", // orange
	"#6366F1", // indigo
	"#14B8A6", // teal
	"#A855F7", // violet
	"#E11D48", // rose
	"#0EA5E9", // sky
}

// NeutralColor is used for locations with no day assignment yet.
const NeutralColor = "#3B82F6"

// DayColor maps a 1-based day number to its palette entry, cycling when
// the trip has more days than the palette has colors.
func DayColor(dayNumber int) string {
	if dayNumber < 1 {
		return NeutralColor
	}
	return dayPalette[(dayNumber-1)%len(dayPalette)]
}
