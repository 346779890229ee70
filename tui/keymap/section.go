package keymap

import "github.com/charmbracelet/bubbles/key"

// Standard section names, so help displays stay uniform.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionView       = "View"
	SectionSystem     = "System"
)

// Section is a named group of keybindings for structured help display.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is implemented by keymaps that organize their bindings into sections.
type SectionedKeyMap interface {
	Sections() []Section
}

// NavigationSection creates a Navigation section with the specified bindings.
func NavigationSection(bindings ...key.Binding) Section {
	return Section{Name: SectionNavigation, Bindings: bindings}
}

// ActionsSection creates an Actions section with the specified bindings.
func ActionsSection(bindings ...key.Binding) Section {
	return Section{Name: SectionActions, Bindings: bindings}
}

// ViewSection creates a View section with the specified bindings.
func ViewSection(bindings ...key.Binding) Section {
	return Section{Name: SectionView, Bindings: bindings}
}

// SystemSection creates a System section with the specified bindings.
func SystemSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSystem, Bindings: bindings}
}

// Enabled returns the section's bindings that are currently enabled.
func (s Section) Enabled() []key.Binding {
	out := make([]key.Binding, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}
