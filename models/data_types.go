package models

// StreamingService identifies the streaming platform a user prefers for
// listening links. The zero value is treated as no preference.
type StreamingService string

const (
	// Spotify links open in Spotify.
	Spotify StreamingService = "spotify"

	// AppleMusic links open in Apple Music.
	AppleMusic StreamingService = "appleMusic"
)

// Valid reports whether s is one of the supported streaming services.
func (s StreamingService) Valid() bool {
	return s == Spotify || s == AppleMusic
}

// Theme is the UI theme preference stored on the user profile.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Valid reports whether t is one of the supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}
