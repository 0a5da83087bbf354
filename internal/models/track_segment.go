package models

// TrackSegment represents a track connection between two stations.
// Single-track segments can be occupied by at most one train at a time,
// which makes them the resource the conflict detector guards.
type TrackSegment struct {
	ID                int64 `json:"id" db:"id"`
	StationAID        int64 `json:"station_a_id" db:"station_a_id"`
	StationBID        int64 `json:"station_b_id" db:"station_b_id"`
	SingleTrack       bool  `json:"single_track" db:"single_track"`
	TravelTimeMinutes int   `json:"travel_time_minutes" db:"travel_time_minutes"`

	// Joined station records, populated on reads
	StationA *Station `json:"station_a,omitempty"`
	StationB *Station `json:"station_b,omitempty"`
}

// DisplayName returns the human-readable segment name used in conflict
// reports, e.g. "Central - Harbour".
func (ts *TrackSegment) DisplayName() string {
	if ts.StationA == nil || ts.StationB == nil {
		return ""
	}
	return ts.StationA.Name + " - " + ts.StationB.Name
}

// TrackSegmentCreateRequest is the payload for creating a track segment
type TrackSegmentCreateRequest struct {
	StationAID        int64 `json:"station_a_id" binding:"required,gt=0"`
	StationBID        int64 `json:"station_b_id" binding:"required,gt=0"`
	SingleTrack       bool  `json:"single_track"`
	TravelTimeMinutes int   `json:"travel_time_minutes" binding:"required,gt=0,lte=1440"`
}

// TrackSegmentUpdateRequest is the payload for updating a track segment.
// The station endpoints of a segment are immutable.
type TrackSegmentUpdateRequest struct {
	SingleTrack       *bool `json:"single_track"`
	TravelTimeMinutes *int  `json:"travel_time_minutes" binding:"omitempty,gt=0,lte=1440"`
}
