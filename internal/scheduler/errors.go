package scheduler

import "fmt"

// ValidationError reports a structurally invalid trip proposal: an empty
// segment list, a segment whose departure is not strictly before its
// arrival, or consecutive segments that go backwards in time. Index is the
// zero-based position of the offending segment, or -1 when the proposal as
// a whole is invalid.
type ValidationError struct {
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("segment %d: %s", e.Index, e.Message)
	}
	return e.Message
}

// ReferenceError reports a proposal that references a track segment id
// absent from the store.
type ReferenceError struct {
	TrackSegmentID int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("track segment %d not found", e.TrackSegmentID)
}
