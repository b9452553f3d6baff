package usecase

import "resume-builder/internal/store"

// Theme preference: an explicit stored choice wins; otherwise the system
// preference applies, so an OS-level change keeps taking effect until the
// user toggles by hand.

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ResolveTheme picks the effective theme from the stored preference and the
// system one. Unknown values resolve to light.
func ResolveTheme(stored, system string) string {
	if stored == ThemeDark || stored == ThemeLight {
		return stored
	}
	if system == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Theme returns the effective theme for this session.
func (s *Session) Theme(system string) string {
	raw, ok, _ := s.store.Get(store.KeyTheme)
	if !ok {
		return ResolveTheme("", system)
	}
	return ResolveTheme(string(raw), system)
}

// SetTheme records an explicit preference; from here on the system setting
// is ignored.
func (s *Session) SetTheme(theme string) {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	if err := s.store.Set(store.KeyTheme, []byte(theme)); err != nil {
		s.log.Warn("theme preference write failed")
	}
}
