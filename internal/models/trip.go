package models

import "time"

// TripStatus is the lifecycle state of a scheduled trip
type TripStatus string

// Trip status values. Only PLANNED and ACTIVE trips occupy track segments;
// CANCELLED trips impose no scheduling constraint.
const (
	TripStatusPlanned   TripStatus = "PLANNED"
	TripStatusActive    TripStatus = "ACTIVE"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// Valid reports whether s is a known trip status
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanned, TripStatusActive, TripStatusCancelled:
		return true
	}
	return false
}

// ScheduledTrip represents one scheduled run of a train
type ScheduledTrip struct {
	ID        int64      `json:"id" db:"id"`
	TrainID   int64      `json:"train_id" db:"train_id"`
	StartTime time.Time  `json:"start_time" db:"start_time"` // Departure of the first segment
	EndTime   time.Time  `json:"end_time" db:"end_time"`     // Arrival of the last segment
	Status    TripStatus `json:"status" db:"status"`

	Train    *Train             `json:"train,omitempty"`
	Segments []ScheduledSegment `json:"segments,omitempty"`
}

// ScheduledSegment represents one leg of a scheduled trip on a track segment
type ScheduledSegment struct {
	ID              int64     `json:"id" db:"id"`
	ScheduledTripID int64     `json:"scheduled_trip_id" db:"scheduled_trip_id"`
	TrackSegmentID  int64     `json:"track_segment_id" db:"track_segment_id"`
	DepartureTime   time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime     time.Time `json:"arrival_time" db:"arrival_time"`

	TrackSegment *TrackSegment `json:"track_segment,omitempty"`
}

// ScheduledSegmentInput is one proposed segment-use inside a trip request
type ScheduledSegmentInput struct {
	TrackSegmentID int64     `json:"track_segment_id" binding:"required,gt=0"`
	DepartureTime  time.Time `json:"departure_time" binding:"required"`
	ArrivalTime    time.Time `json:"arrival_time" binding:"required"`
}

// TripCreateRequest is the payload for creating a trip. The same shape is
// used by the dry-run conflict check endpoint.
type TripCreateRequest struct {
	TrainID  int64                   `json:"train_id" binding:"required,gt=0"`
	Segments []ScheduledSegmentInput `json:"segments" binding:"required"`
}

// TripUpdateRequest is the payload for updating a trip (status changes only)
type TripUpdateRequest struct {
	Status *TripStatus `json:"status"`
}

// TripsResponse represents a paginated list of trips
type TripsResponse struct {
	Data  []ScheduledTrip `json:"data"`
	Total int64           `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}
