package repository

import (
	"database/sql"
	"fmt"

	"github.com/railops/train-scheduler-go/internal/models"
)

// StationRepository handles database operations for stations
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// CreateStation inserts a new station and returns it with its id
func (r *StationRepository) CreateStation(name string, numTracks int) (*models.Station, error) {
	res, err := r.db.Exec(
		"INSERT INTO stations (name, num_tracks) VALUES (?, ?)",
		name, numTracks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert station: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get station id: %w", err)
	}
	return &models.Station{ID: id, Name: name, NumTracks: numTracks}, nil
}

// GetStations retrieves stations with pagination
func (r *StationRepository) GetStations(skip, limit int) ([]models.Station, error) {
	rows, err := r.db.Query(
		"SELECT id, name, num_tracks FROM stations ORDER BY id LIMIT ? OFFSET ?",
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	stations := []models.Station{}
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.NumTracks); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

// GetStationByID retrieves a single station by id
func (r *StationRepository) GetStationByID(id int64) (*models.Station, error) {
	var s models.Station
	err := r.db.QueryRow(
		"SELECT id, name, num_tracks FROM stations WHERE id = ?", id,
	).Scan(&s.ID, &s.Name, &s.NumTracks)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}
	return &s, nil
}

// GetStationByName retrieves a single station by its unique name
func (r *StationRepository) GetStationByName(name string) (*models.Station, error) {
	var s models.Station
	err := r.db.QueryRow(
		"SELECT id, name, num_tracks FROM stations WHERE name = ?", name,
	).Scan(&s.ID, &s.Name, &s.NumTracks)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}
	return &s, nil
}

// UpdateStation persists the given station's mutable fields
func (r *StationRepository) UpdateStation(s *models.Station) error {
	_, err := r.db.Exec(
		"UPDATE stations SET name = ?, num_tracks = ? WHERE id = ?",
		s.Name, s.NumTracks, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}
	return nil
}

// DeleteStation removes a station by id
func (r *StationRepository) DeleteStation(id int64) error {
	_, err := r.db.Exec("DELETE FROM stations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}
	return nil
}

// IsStationReferenced reports whether any track segment uses the station
func (r *StationRepository) IsStationReferenced(id int64) (bool, error) {
	var count int64
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM track_segments WHERE station_a_id = ? OR station_b_id = ?",
		id, id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count segment references: %w", err)
	}
	return count > 0, nil
}
