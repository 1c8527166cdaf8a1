package download

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline stage that produced an error
type Stage string

const (
	StageFetch   Stage = "fetch"
	StagePersist Stage = "persist"
	StageUnknown Stage = "unknown"
)

// Fetch failure reasons
const (
	ReasonRequest   = "invalid request"
	ReasonTransport = "request failed"
	ReasonStatus    = "unexpected status"
	ReasonRead      = "read body"
	ReasonTooLarge  = "response too large"
	ReasonDecode    = "decode image"
)

// ErrUndecodable is wrapped by fetch errors whose body is not a known image format.
var ErrUndecodable = errors.New("undecodable image data")

// FetchError reports a failure while downloading or decoding the image
type FetchError struct {
	URL    string
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return "fetch failed: " + e.Reason
	}
	return fmt.Sprintf("fetch failed: %s: %v", e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistError reports a failure while storing the image
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("save failed: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// StageOf returns the stage an error came from
func StageOf(err error) Stage {
	var fe *FetchError
	if errors.As(err, &fe) {
		return StageFetch
	}
	var pe *PersistError
	if errors.As(err, &pe) {
		return StagePersist
	}
	return StageUnknown
}
