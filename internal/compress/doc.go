package compress

// Package compress re-encodes decoded images as JPEG and stores them on disk.
// Writes go through a temporary file that is renamed over the target, so a
// reader never observes a partially written image.
