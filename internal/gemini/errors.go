package gemini

import "fmt"

// MalformedResponseError reports completion text the caller could not
// turn into its expected shape (no JSON object, or an unparseable one).
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed AI response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed AI response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a failed call to the completion API: transport
// failure, a non-2xx status, or a response with no candidate text.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion API error (%d): %s", e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("completion API unreachable: %v", e.Err)
	}
	return fmt.Sprintf("completion API error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
