package repository

import (
	"database/sql"
	"fmt"

	"github.com/railops/train-scheduler-go/internal/models"
)

// TrackSegmentRepository handles database operations for track segments
type TrackSegmentRepository struct {
	db *sql.DB
}

// NewTrackSegmentRepository creates a new track segment repository
func NewTrackSegmentRepository(db *sql.DB) *TrackSegmentRepository {
	return &TrackSegmentRepository{db: db}
}

const trackSegmentSelect = `SELECT ts.id, ts.station_a_id, ts.station_b_id, ts.single_track, ts.travel_time_minutes,
	sa.id, sa.name, sa.num_tracks,
	sb.id, sb.name, sb.num_tracks
	FROM track_segments ts
	JOIN stations sa ON sa.id = ts.station_a_id
	JOIN stations sb ON sb.id = ts.station_b_id`

func scanTrackSegment(scan func(dest ...interface{}) error) (*models.TrackSegment, error) {
	var ts models.TrackSegment
	var sa, sb models.Station
	err := scan(
		&ts.ID, &ts.StationAID, &ts.StationBID, &ts.SingleTrack, &ts.TravelTimeMinutes,
		&sa.ID, &sa.Name, &sa.NumTracks,
		&sb.ID, &sb.Name, &sb.NumTracks,
	)
	if err != nil {
		return nil, err
	}
	ts.StationA = &sa
	ts.StationB = &sb
	return &ts, nil
}

// CreateSegment inserts a new track segment and returns it with stations loaded
func (r *TrackSegmentRepository) CreateSegment(req models.TrackSegmentCreateRequest) (*models.TrackSegment, error) {
	res, err := r.db.Exec(
		"INSERT INTO track_segments (station_a_id, station_b_id, single_track, travel_time_minutes) VALUES (?, ?, ?, ?)",
		req.StationAID, req.StationBID, req.SingleTrack, req.TravelTimeMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert track segment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get track segment id: %w", err)
	}
	return r.GetSegmentByID(id)
}

// GetSegments retrieves track segments with pagination, stations included
func (r *TrackSegmentRepository) GetSegments(skip, limit int) ([]models.TrackSegment, error) {
	rows, err := r.db.Query(trackSegmentSelect+" ORDER BY ts.id LIMIT ? OFFSET ?", limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query track segments: %w", err)
	}
	defer rows.Close()

	segments := []models.TrackSegment{}
	for rows.Next() {
		ts, err := scanTrackSegment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan track segment: %w", err)
		}
		segments = append(segments, *ts)
	}
	return segments, rows.Err()
}

// GetSegmentByID retrieves a single track segment with its stations
func (r *TrackSegmentRepository) GetSegmentByID(id int64) (*models.TrackSegment, error) {
	row := r.db.QueryRow(trackSegmentSelect+" WHERE ts.id = ?", id)
	ts, err := scanTrackSegment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get track segment: %w", err)
	}
	return ts, nil
}

// SegmentExistsBetween reports whether a segment already connects the two
// stations in either direction
func (r *TrackSegmentRepository) SegmentExistsBetween(stationA, stationB int64) (bool, error) {
	var count int64
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM track_segments
		WHERE (station_a_id = ? AND station_b_id = ?)
		   OR (station_a_id = ? AND station_b_id = ?)`,
		stationA, stationB, stationB, stationA,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check segment existence: %w", err)
	}
	return count > 0, nil
}

// UpdateSegment persists the mutable fields of a track segment
func (r *TrackSegmentRepository) UpdateSegment(ts *models.TrackSegment) error {
	_, err := r.db.Exec(
		"UPDATE track_segments SET single_track = ?, travel_time_minutes = ? WHERE id = ?",
		ts.SingleTrack, ts.TravelTimeMinutes, ts.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update track segment: %w", err)
	}
	return nil
}

// DeleteSegment removes a track segment by id
func (r *TrackSegmentRepository) DeleteSegment(id int64) error {
	_, err := r.db.Exec("DELETE FROM track_segments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete track segment: %w", err)
	}
	return nil
}

// HasScheduledSegments reports whether any trip leg references the segment
func (r *TrackSegmentRepository) HasScheduledSegments(id int64) (bool, error) {
	var count int64
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM scheduled_segments WHERE track_segment_id = ?", id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count scheduled segment references: %w", err)
	}
	return count > 0, nil
}
