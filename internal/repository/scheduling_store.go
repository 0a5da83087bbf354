package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/railops/train-scheduler-go/internal/scheduler"
)

// SchedulingStore is the read-only record store the conflict detector
// queries. Each method runs as a single statement, so within one call the
// detector sees a consistent snapshot.
type SchedulingStore struct {
	db *sql.DB
}

// NewSchedulingStore creates a scheduling store over the given database
func NewSchedulingStore(db *sql.DB) *SchedulingStore {
	return &SchedulingStore{db: db}
}

var _ scheduler.Store = (*SchedulingStore)(nil)

// GetTrackSegment returns the detector's view of a track segment, or nil
// when the id is unknown
func (s *SchedulingStore) GetTrackSegment(id int64) (*scheduler.TrackSegment, error) {
	var ts scheduler.TrackSegment
	err := s.db.QueryRow(
		`SELECT ts.id, ts.single_track, sa.name || ' - ' || sb.name
		FROM track_segments ts
		JOIN stations sa ON sa.id = ts.station_a_id
		JOIN stations sb ON sb.id = ts.station_b_id
		WHERE ts.id = ?`, id,
	).Scan(&ts.ID, &ts.SingleTrack, &ts.DisplayName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get track segment: %w", err)
	}
	return &ts, nil
}

// FindActiveSegmentUses returns every occupancy of the track segment by a
// PLANNED or ACTIVE trip, excluding the given trip id (0 excludes nothing).
// Results are ordered by departure time then id for deterministic reports.
func (s *SchedulingStore) FindActiveSegmentUses(trackSegmentID, excludeTripID int64) ([]scheduler.Occupancy, error) {
	rows, err := s.db.Query(
		`SELECT st.id, st.train_id, ss.departure_time, ss.arrival_time
		FROM scheduled_segments ss
		JOIN scheduled_trips st ON st.id = ss.scheduled_trip_id
		WHERE ss.track_segment_id = ?
		  AND st.status IN ('PLANNED', 'ACTIVE')
		  AND st.id != ?
		ORDER BY ss.departure_time, ss.id`,
		trackSegmentID, excludeTripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment uses: %w", err)
	}
	defer rows.Close()

	var occupancies []scheduler.Occupancy
	for rows.Next() {
		var occ scheduler.Occupancy
		var dep, arr int64
		if err := rows.Scan(&occ.TripID, &occ.TrainID, &dep, &arr); err != nil {
			return nil, fmt.Errorf("failed to scan occupancy: %w", err)
		}
		occ.Departure = time.Unix(dep, 0).UTC()
		occ.Arrival = time.Unix(arr, 0).UTC()
		occupancies = append(occupancies, occ)
	}
	return occupancies, rows.Err()
}
