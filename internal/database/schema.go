package database

import (
	"database/sql"
	"fmt"
)

// Timestamps are stored as Unix seconds; trip status as its string value.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		num_tracks INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS track_segments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		station_a_id INTEGER NOT NULL REFERENCES stations(id),
		station_b_id INTEGER NOT NULL REFERENCES stations(id),
		single_track INTEGER NOT NULL DEFAULT 0,
		travel_time_minutes INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_trips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		train_id INTEGER NOT NULL REFERENCES trains(id),
		start_time INTEGER NOT NULL,
		end_time INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'PLANNED'
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_segments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scheduled_trip_id INTEGER NOT NULL REFERENCES scheduled_trips(id) ON DELETE CASCADE,
		track_segment_id INTEGER NOT NULL REFERENCES track_segments(id),
		departure_time INTEGER NOT NULL,
		arrival_time INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_track_segments_stations
		ON track_segments(station_a_id, station_b_id)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_trips_status
		ON scheduled_trips(status)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_segments_track
		ON scheduled_segments(track_segment_id, departure_time)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_segments_trip
		ON scheduled_segments(scheduled_trip_id)`,
}

// EnsureSchema creates all tables and indexes if they do not exist yet
func EnsureSchema(conn *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
