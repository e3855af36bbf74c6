package dropdown

// Settings configures the presentation of a dropdown: the placeholder
// text shown when nothing is selected and the class names attached to
// the rendered tree. Class values are opaque to this package; they are
// passed through unmodified for the host's styling system to interpret.
//
// A widget holds exactly one Settings value for its lifetime; Settings
// are never mutated after construction.
type Settings struct {
	// Placeholder is the button label when no item is selected.
	Placeholder string `yaml:"placeholder"`
	// ContainerClass is set on the outer container element.
	ContainerClass string `yaml:"container_class"`
	// OpenedClass is set on the menu when the widget is opened.
	OpenedClass string `yaml:"opened_class"`
	// ClosedClass is set on the menu when the widget is closed.
	ClosedClass string `yaml:"closed_class"`
	// ButtonClass is set on the toggle button.
	ButtonClass string `yaml:"button_class"`
	// ArrowUpClass is set on the indicator glyph while opened.
	ArrowUpClass string `yaml:"arrow_up_class"`
	// ArrowDownClass is set on the indicator glyph while closed.
	ArrowDownClass string `yaml:"arrow_down_class"`
	// ItemClass is set on a normal menu item.
	ItemClass string `yaml:"item_class"`
	// ActiveItemClass is set on the currently selected menu item.
	ActiveItemClass string `yaml:"active_item_class"`
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		Placeholder:     "Select ...",
		ContainerClass:  "dropdown-container",
		OpenedClass:     "dropdown-opened",
		ClosedClass:     "dropdown-closed",
		ButtonClass:     "dropdown-button",
		ArrowUpClass:    "dropdown-arrow-up",
		ArrowDownClass:  "dropdown-arrow-down",
		ItemClass:       "dropdown-item",
		ActiveItemClass: "dropdown-item-active",
	}
}
