package download

// Package download implements the fetch-and-persist pipeline: an HTTP fetch
// that decodes the response body as an image, followed by a JPEG save into
// the application's storage directory. It tracks run state, reports
// progress to the UI through a callback, and tags failures with the stage
// that produced them.
