package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/railops/train-scheduler-go/internal/database"
	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/scheduler"
)

// TripRepository handles database operations for scheduled trips and their
// segments. A trip and its segments are always written in one transaction;
// orphan scheduled segments cannot exist.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip inserts a trip with all its segments atomically. The trip's
// overall window is derived from the first departure and last arrival, and
// the initial status is PLANNED.
func (r *TripRepository) CreateTrip(trainID int64, segments []models.ScheduledSegmentInput) (*models.ScheduledTrip, error) {
	trip := &models.ScheduledTrip{
		TrainID:   trainID,
		StartTime: segments[0].DepartureTime.UTC(),
		EndTime:   segments[len(segments)-1].ArrivalTime.UTC(),
		Status:    models.TripStatusPlanned,
	}

	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO scheduled_trips (train_id, start_time, end_time, status) VALUES (?, ?, ?, ?)",
			trainID, trip.StartTime.Unix(), trip.EndTime.Unix(), string(trip.Status),
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}
		tripID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get trip id: %w", err)
		}
		trip.ID = tripID

		for _, seg := range segments {
			res, err := tx.Exec(
				"INSERT INTO scheduled_segments (scheduled_trip_id, track_segment_id, departure_time, arrival_time) VALUES (?, ?, ?, ?)",
				tripID, seg.TrackSegmentID, seg.DepartureTime.Unix(), seg.ArrivalTime.Unix(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert scheduled segment: %w", err)
			}
			segID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get scheduled segment id: %w", err)
			}
			trip.Segments = append(trip.Segments, models.ScheduledSegment{
				ID:              segID,
				ScheduledTripID: tripID,
				TrackSegmentID:  seg.TrackSegmentID,
				DepartureTime:   seg.DepartureTime.UTC(),
				ArrivalTime:     seg.ArrivalTime.UTC(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTripByID retrieves a trip row without its segments
func (r *TripRepository) GetTripByID(id int64) (*models.ScheduledTrip, error) {
	var t models.ScheduledTrip
	var start, end int64
	var status string
	err := r.db.QueryRow(
		"SELECT id, train_id, start_time, end_time, status FROM scheduled_trips WHERE id = ?", id,
	).Scan(&t.ID, &t.TrainID, &start, &end, &status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	t.StartTime = time.Unix(start, 0).UTC()
	t.EndTime = time.Unix(end, 0).UTC()
	t.Status = models.TripStatus(status)
	return &t, nil
}

// GetTripWithSegments retrieves a trip with its ordered segments and their
// track segments (stations included)
func (r *TripRepository) GetTripWithSegments(id int64) (*models.ScheduledTrip, error) {
	trip, err := r.GetTripByID(id)
	if err != nil || trip == nil {
		return trip, err
	}

	rows, err := r.db.Query(
		`SELECT ss.id, ss.scheduled_trip_id, ss.track_segment_id, ss.departure_time, ss.arrival_time,
			ts.id, ts.station_a_id, ts.station_b_id, ts.single_track, ts.travel_time_minutes,
			sa.id, sa.name, sa.num_tracks,
			sb.id, sb.name, sb.num_tracks
		FROM scheduled_segments ss
		JOIN track_segments ts ON ts.id = ss.track_segment_id
		JOIN stations sa ON sa.id = ts.station_a_id
		JOIN stations sb ON sb.id = ts.station_b_id
		WHERE ss.scheduled_trip_id = ?
		ORDER BY ss.departure_time, ss.id`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip segments: %w", err)
	}
	defer rows.Close()

	trip.Segments = []models.ScheduledSegment{}
	for rows.Next() {
		var ss models.ScheduledSegment
		var ts models.TrackSegment
		var sa, sb models.Station
		var dep, arr int64
		err := rows.Scan(
			&ss.ID, &ss.ScheduledTripID, &ss.TrackSegmentID, &dep, &arr,
			&ts.ID, &ts.StationAID, &ts.StationBID, &ts.SingleTrack, &ts.TravelTimeMinutes,
			&sa.ID, &sa.Name, &sa.NumTracks,
			&sb.ID, &sb.Name, &sb.NumTracks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip segment: %w", err)
		}
		ss.DepartureTime = time.Unix(dep, 0).UTC()
		ss.ArrivalTime = time.Unix(arr, 0).UTC()
		ts.StationA = &sa
		ts.StationB = &sb
		ss.TrackSegment = &ts
		trip.Segments = append(trip.Segments, ss)
	}
	return trip, rows.Err()
}

// GetTripSegmentUses returns a trip's legs as proposal segment-uses, in
// chronological order. Used when re-checking an existing trip for conflicts.
func (r *TripRepository) GetTripSegmentUses(id int64) ([]scheduler.SegmentUse, error) {
	rows, err := r.db.Query(
		`SELECT track_segment_id, departure_time, arrival_time
		FROM scheduled_segments WHERE scheduled_trip_id = ?
		ORDER BY departure_time, id`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment uses: %w", err)
	}
	defer rows.Close()

	var uses []scheduler.SegmentUse
	for rows.Next() {
		var use scheduler.SegmentUse
		var dep, arr int64
		if err := rows.Scan(&use.TrackSegmentID, &dep, &arr); err != nil {
			return nil, fmt.Errorf("failed to scan segment use: %w", err)
		}
		use.Departure = time.Unix(dep, 0).UTC()
		use.Arrival = time.Unix(arr, 0).UTC()
		uses = append(uses, use)
	}
	return uses, rows.Err()
}

// ListTrips retrieves trips with pagination, segments included
func (r *TripRepository) ListTrips(skip, limit int) ([]models.ScheduledTrip, int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scheduled_trips").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	rows, err := r.db.Query(
		"SELECT id, train_id, start_time, end_time, status FROM scheduled_trips ORDER BY id LIMIT ? OFFSET ?",
		limit, skip,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []models.ScheduledTrip{}
	for rows.Next() {
		var t models.ScheduledTrip
		var start, end int64
		var status string
		if err := rows.Scan(&t.ID, &t.TrainID, &start, &end, &status); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		t.StartTime = time.Unix(start, 0).UTC()
		t.EndTime = time.Unix(end, 0).UTC()
		t.Status = models.TripStatus(status)
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range trips {
		segments, err := r.getSegments(trips[i].ID)
		if err != nil {
			return nil, 0, err
		}
		trips[i].Segments = segments
	}
	return trips, total, nil
}

func (r *TripRepository) getSegments(tripID int64) ([]models.ScheduledSegment, error) {
	rows, err := r.db.Query(
		`SELECT id, scheduled_trip_id, track_segment_id, departure_time, arrival_time
		FROM scheduled_segments WHERE scheduled_trip_id = ?
		ORDER BY departure_time, id`, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled segments: %w", err)
	}
	defer rows.Close()

	segments := []models.ScheduledSegment{}
	for rows.Next() {
		var ss models.ScheduledSegment
		var dep, arr int64
		if err := rows.Scan(&ss.ID, &ss.ScheduledTripID, &ss.TrackSegmentID, &dep, &arr); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled segment: %w", err)
		}
		ss.DepartureTime = time.Unix(dep, 0).UTC()
		ss.ArrivalTime = time.Unix(arr, 0).UTC()
		segments = append(segments, ss)
	}
	return segments, rows.Err()
}

// UpdateTripStatus sets the status of a trip
func (r *TripRepository) UpdateTripStatus(id int64, status models.TripStatus) error {
	_, err := r.db.Exec(
		"UPDATE scheduled_trips SET status = ? WHERE id = ?",
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	return nil
}

// DeleteTrip removes a trip; its segments go with it via cascade
func (r *TripRepository) DeleteTrip(id int64) error {
	_, err := r.db.Exec("DELETE FROM scheduled_trips WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}
