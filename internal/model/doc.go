package model

// Package model defines domain data structures used across the app: the
// download run record and its status enum. Structures are designed for
// direct use by the UI and explicit state transitions.
