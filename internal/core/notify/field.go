package notify

const Placeholder = "N/A"

// MakeField builds a Field, substituting Placeholder for absent or empty values.
func MakeField(title, value string, present, short bool) Field {
	if !present || value == "" {
		value = Placeholder
	}
	return Field{Title: title, Value: value, Short: short}
}

// Optional is anything that can report presence and a display string.
type Optional interface {
	Present() bool
	String() string
}

func FieldOf(title string, v Optional, short bool) Field {
	return MakeField(title, v.String(), v.Present(), short)
}
