package model

// IconState represents the visual state of a footer icon
type IconState string

const (
	// IconStateDefault is the resting color of an icon
	IconStateDefault IconState = "Default"

	// IconStateHighlighted is shown while the pointer is over the icon
	IconStateHighlighted IconState = "Highlighted"
)

// String returns the string representation of IconState
func (s IconState) String() string {
	return string(s)
}

// IsHighlighted returns true if the icon is drawn in its highlight color
func (s IconState) IsHighlighted() bool {
	return s == IconStateHighlighted
}
