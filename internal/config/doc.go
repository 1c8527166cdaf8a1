package config

// Package config holds application settings. The GUI persists them in Fyne
// preferences; the headless command reads an optional TOML file.
