package platform

// Package platform contains OS/platform integration: filesystem helpers,
// application storage resolution, and opening files with the system viewer.
