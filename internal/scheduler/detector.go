// Package scheduler implements conflict detection for trips on single-track
// segments.
//
// A check runs in two phases:
//
//  1. Structural validation - every segment-use must have departure strictly
//     before arrival, and consecutive segments must be chronologically
//     non-decreasing. Violations fail the check before any store query runs.
//
//  2. Conflict scan - for each segment-use on a single-track segment, every
//     PLANNED or ACTIVE occupancy of that segment is tested with the overlap
//     predicate, and each collision produces one ConflictRecord.
//
// The detector is stateless; all scheduling state lives in the Store it
// queries. Two concurrent checks can therefore both pass and race each other
// to commit - callers that persist trips must serialize check-and-commit per
// affected track segment (see service.TripService).
package scheduler

import (
	"time"

	"github.com/railops/train-scheduler-go/internal/models"
)

// SegmentUse is one proposed occupation of a track segment
type SegmentUse struct {
	TrackSegmentID int64
	Departure      time.Time
	Arrival        time.Time
}

// TrackSegment is the store's view of a track segment, reduced to what the
// detector needs
type TrackSegment struct {
	ID          int64
	SingleTrack bool
	DisplayName string
}

// Occupancy is an existing scheduled segment holding a track segment
type Occupancy struct {
	TripID    int64
	TrainID   int64
	Departure time.Time
	Arrival   time.Time
}

// Store is the read access the detector needs to the scheduling records.
// Implementations must return occupancies restricted to trips with status
// PLANNED or ACTIVE, and must present a consistent snapshot within one call.
type Store interface {
	// GetTrackSegment returns the segment or nil when the id is unknown
	GetTrackSegment(id int64) (*TrackSegment, error)
	// FindActiveSegmentUses returns occupancies of the track segment,
	// excluding those belonging to excludeTripID (0 excludes nothing)
	FindActiveSegmentUses(trackSegmentID, excludeTripID int64) ([]Occupancy, error)
}

// Detector checks trip proposals for single-track conflicts
type Detector struct {
	store Store
}

// NewDetector creates a detector reading from the given store
func NewDetector(store Store) *Detector {
	return &Detector{store: store}
}

// ValidateSegments checks the internal consistency of a proposal: at least
// one segment, departure strictly before arrival on each segment, and each
// departure at or after the previous arrival. It touches no store state.
func ValidateSegments(uses []SegmentUse) error {
	if len(uses) == 0 {
		return &ValidationError{Index: -1, Message: "trip must have at least one segment"}
	}
	for i, use := range uses {
		if !use.Departure.Before(use.Arrival) {
			return &ValidationError{Index: i, Message: "departure_time must be before arrival_time"}
		}
	}
	for i := 0; i < len(uses)-1; i++ {
		if uses[i+1].Departure.Before(uses[i].Arrival) {
			return &ValidationError{
				Index:   i + 1,
				Message: "departure_time must be at or after the previous segment's arrival_time",
			}
		}
	}
	return nil
}

// Check validates the proposal and scans it for conflicts. excludeTripID
// removes an existing trip from the comparison, for re-checking a trip
// against everything but itself; pass 0 for new trips.
//
// The returned report lists every colliding pair in proposal order, then in
// the order occupancies were found, so identical inputs over identical store
// state always produce identical reports. A non-empty report is not an
// error: errors are reserved for invalid proposals (*ValidationError),
// unknown track segments (*ReferenceError), and store failures.
func (d *Detector) Check(uses []SegmentUse, excludeTripID int64) (*models.ConflictReport, error) {
	if err := ValidateSegments(uses); err != nil {
		return nil, err
	}

	report := &models.ConflictReport{Conflicts: []models.ConflictRecord{}}
	for _, use := range uses {
		ts, err := d.store.GetTrackSegment(use.TrackSegmentID)
		if err != nil {
			return nil, err
		}
		if ts == nil {
			return nil, &ReferenceError{TrackSegmentID: use.TrackSegmentID}
		}
		if !ts.SingleTrack {
			continue
		}

		occupancies, err := d.store.FindActiveSegmentUses(ts.ID, excludeTripID)
		if err != nil {
			return nil, err
		}
		for _, occ := range occupancies {
			if !Overlaps(use.Departure, use.Arrival, occ.Departure, occ.Arrival) {
				continue
			}
			report.Conflicts = append(report.Conflicts, models.ConflictRecord{
				TrackSegmentID:     ts.ID,
				TrackSegmentName:   ts.DisplayName,
				ConflictingTripID:  occ.TripID,
				ConflictingTrainID: occ.TrainID,
				NewDeparture:       use.Departure,
				NewArrival:         use.Arrival,
				ExistingDeparture:  occ.Departure,
				ExistingArrival:    occ.Arrival,
			})
		}
	}

	report.HasConflicts = len(report.Conflicts) > 0
	return report, nil
}
