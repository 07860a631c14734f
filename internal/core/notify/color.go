package notify

const (
	ColorGrey    = "#97A2A0"
	ColorBlue    = "#2684FF"
	ColorYellow  = "#FFC107"
	ColorRed     = "#FF5722"
	ColorCase    = "#2196F3"
	ColorTask    = "#4CAF50"
	ColorGeneric = "#9E9E9E"
)

var severityColors = map[int]string{
	1: ColorGrey,
	2: ColorBlue,
	3: ColorYellow,
	4: ColorRed,
}

// ColorForSeverity maps an alert severity to an attachment color.
// Unknown or absent levels are grey.
func ColorForSeverity(level int, ok bool) string {
	if !ok {
		return ColorGrey
	}
	if c, found := severityColors[level]; found {
		return c
	}
	return ColorGrey
}
