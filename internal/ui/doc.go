package ui

// Package ui contains the Fyne-based user interface: a single screen with a
// URL entry, a download button, an error line and the downloaded image. The
// screen state lives in Controller; RootUI renders it and wires widgets to
// the download service. All UI strings are localized via Localization.
