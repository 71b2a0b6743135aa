// Package document defines the editable app model: an app holds screens, and
// each screen holds an ordered forest of component nodes.
package document

import "fmt"

// Category groups component kinds in the palette.
type Category string

const (
	CategoryBasic      Category = "basic"
	CategoryLayout     Category = "layout"
	CategoryForm       Category = "form"
	CategoryMedia      Category = "media"
	CategoryNavigation Category = "navigation"
	CategoryAdvanced   Category = "advanced"
)

// DeviceType selects the simulated device frame.
type DeviceType string

const (
	DeviceAndroid DeviceType = "android"
	DeviceIOS     DeviceType = "ios"
)

// ParseDeviceType converts a flag or config value into a DeviceType.
func ParseDeviceType(value string) (DeviceType, error) {
	switch DeviceType(value) {
	case DeviceAndroid, DeviceIOS:
		return DeviceType(value), nil
	default:
		return "", fmt.Errorf("unknown device type %q (want android or ios)", value)
	}
}

// Other returns the opposite device type.
func (d DeviceType) Other() DeviceType {
	if d == DeviceIOS {
		return DeviceAndroid
	}
	return DeviceIOS
}

// Label returns the human readable device name.
func (d DeviceType) Label() string {
	if d == DeviceIOS {
		return "iPhone"
	}
	return "Android Phone"
}

// Theme holds the four document colours.
type Theme struct {
	PrimaryColor    string `json:"primaryColor" yaml:"primaryColor" validate:"required,hexcolor"`
	SecondaryColor  string `json:"secondaryColor" yaml:"secondaryColor" validate:"required,hexcolor"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" validate:"required,hexcolor"`
	TextColor       string `json:"textColor" yaml:"textColor" validate:"required,hexcolor"`
}

// Screen is a named top-level sequence of component nodes.
type Screen struct {
	ID         string `json:"id" yaml:"id" validate:"required"`
	Name       string `json:"name" yaml:"name" validate:"required"`
	Components []Node `json:"components" yaml:"components"`
}

// AppDocument is the full editable app definition.
type AppDocument struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Screens     []Screen `json:"screens" yaml:"screens" validate:"dive"`
	Theme       Theme    `json:"theme" yaml:"theme"`
}

// Default returns the document every editor session starts with.
func Default() AppDocument {
	return AppDocument{
		ID:   "default-app",
		Name: "My App",
		Screens: []Screen{
			{ID: "home-screen", Name: "Home", Components: []Node{}},
		},
		Theme: Theme{
			PrimaryColor:    "#3b82f6",
			SecondaryColor:  "#64748b",
			BackgroundColor: "#ffffff",
			TextColor:       "#1f2937",
		},
	}
}

// Screen returns the screen with the given id and its position.
func (d AppDocument) Screen(id string) (Screen, int, bool) {
	for i, screen := range d.Screens {
		if screen.ID == id {
			return screen, i, true
		}
	}
	return Screen{}, -1, false
}

// FirstScreenID returns the id of the first screen, or "" when there is none.
func (d AppDocument) FirstScreenID() string {
	if len(d.Screens) == 0 {
		return ""
	}
	return d.Screens[0].ID
}

// Clone returns a deep copy that shares no nodes or props with d.
func (d AppDocument) Clone() AppDocument {
	out := d
	if d.Screens != nil {
		out.Screens = make([]Screen, len(d.Screens))
		for i, screen := range d.Screens {
			out.Screens[i] = screen.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the screen.
func (s Screen) Clone() Screen {
	out := s
	out.Components = CloneNodes(s.Components)
	return out
}

// CountNodes returns the number of nodes in the screen at every depth.
func (s Screen) CountNodes() int {
	return countNodes(s.Components)
}

func countNodes(nodes []Node) int {
	total := len(nodes)
	for _, node := range nodes {
		total += countNodes(node.Children)
	}
	return total
}
