package models

import "time"

// ConflictRecord describes one collision between a proposed segment-use and
// an existing scheduled segment on a single-track segment. It is an output
// type only and is never persisted.
type ConflictRecord struct {
	TrackSegmentID     int64     `json:"track_segment_id"`
	TrackSegmentName   string    `json:"track_segment_name"`
	ConflictingTripID  int64     `json:"conflicting_trip_id"`
	ConflictingTrainID int64     `json:"conflicting_train_id"`
	NewDeparture       time.Time `json:"new_departure"`
	NewArrival         time.Time `json:"new_arrival"`
	ExistingDeparture  time.Time `json:"existing_departure"`
	ExistingArrival    time.Time `json:"existing_arrival"`
}

// ConflictReport is the aggregated outcome of checking one proposed trip
// against every active or planned trip on its single-track segments.
// Records are ordered by segment position in the proposal, then by the
// order the competing occupancies were found.
type ConflictReport struct {
	HasConflicts bool             `json:"has_conflicts"`
	Conflicts    []ConflictRecord `json:"conflicts"`
}
