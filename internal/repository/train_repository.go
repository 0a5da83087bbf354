package repository

import (
	"database/sql"
	"fmt"

	"github.com/railops/train-scheduler-go/internal/models"
)

// TrainRepository handles database operations for trains
type TrainRepository struct {
	db *sql.DB
}

// NewTrainRepository creates a new train repository
func NewTrainRepository(db *sql.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

// CreateTrain inserts a new train and returns it with its id
func (r *TrainRepository) CreateTrain(code, description string) (*models.Train, error) {
	res, err := r.db.Exec(
		"INSERT INTO trains (code, description) VALUES (?, ?)",
		code, description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert train: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get train id: %w", err)
	}
	return &models.Train{ID: id, Code: code, Description: description}, nil
}

// GetTrains retrieves trains with pagination
func (r *TrainRepository) GetTrains(skip, limit int) ([]models.Train, error) {
	rows, err := r.db.Query(
		"SELECT id, code, description FROM trains ORDER BY id LIMIT ? OFFSET ?",
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trains: %w", err)
	}
	defer rows.Close()

	trains := []models.Train{}
	for rows.Next() {
		var t models.Train
		if err := rows.Scan(&t.ID, &t.Code, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		trains = append(trains, t)
	}
	return trains, rows.Err()
}

// GetTrainByID retrieves a single train by id
func (r *TrainRepository) GetTrainByID(id int64) (*models.Train, error) {
	var t models.Train
	err := r.db.QueryRow(
		"SELECT id, code, description FROM trains WHERE id = ?", id,
	).Scan(&t.ID, &t.Code, &t.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get train: %w", err)
	}
	return &t, nil
}

// GetTrainByCode retrieves a single train by its unique code
func (r *TrainRepository) GetTrainByCode(code string) (*models.Train, error) {
	var t models.Train
	err := r.db.QueryRow(
		"SELECT id, code, description FROM trains WHERE code = ?", code,
	).Scan(&t.ID, &t.Code, &t.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get train: %w", err)
	}
	return &t, nil
}

// UpdateTrain persists the given train's mutable fields
func (r *TrainRepository) UpdateTrain(t *models.Train) error {
	_, err := r.db.Exec(
		"UPDATE trains SET code = ?, description = ? WHERE id = ?",
		t.Code, t.Description, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update train: %w", err)
	}
	return nil
}

// DeleteTrain removes a train by id
func (r *TrainRepository) DeleteTrain(id int64) error {
	_, err := r.db.Exec("DELETE FROM trains WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete train: %w", err)
	}
	return nil
}

// HasTrips reports whether any scheduled trip references the train
func (r *TrainRepository) HasTrips(id int64) (bool, error) {
	var count int64
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM scheduled_trips WHERE train_id = ?", id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count trip references: %w", err)
	}
	return count > 0, nil
}
