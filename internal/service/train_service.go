package service

import (
	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/repository"
)

// TrainService handles business logic for trains
type TrainService struct {
	repo *repository.TrainRepository
}

// NewTrainService creates a new train service
func NewTrainService(repo *repository.TrainRepository) *TrainService {
	return &TrainService{repo: repo}
}

// CreateTrain creates a train, rejecting duplicate codes
func (s *TrainService) CreateTrain(req models.TrainCreateRequest) (*models.Train, error) {
	existing, err := s.repo.GetTrainByCode(req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &RuleError{Message: "train with this code already exists"}
	}
	return s.repo.CreateTrain(req.Code, req.Description)
}

// GetTrains retrieves trains with pagination
func (s *TrainService) GetTrains(skip, limit int) ([]models.Train, error) {
	return s.repo.GetTrains(skip, limit)
}

// GetTrainByID retrieves a single train
func (s *TrainService) GetTrainByID(id int64) (*models.Train, error) {
	return s.repo.GetTrainByID(id)
}

// UpdateTrain applies a partial update to a train
func (s *TrainService) UpdateTrain(id int64, req models.TrainUpdateRequest) (*models.Train, error) {
	train, err := s.repo.GetTrainByID(id)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, &NotFoundError{Resource: "train", ID: id}
	}

	if req.Code != nil && *req.Code != train.Code {
		existing, err := s.repo.GetTrainByCode(*req.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &RuleError{Message: "train with this code already exists"}
		}
		train.Code = *req.Code
	}
	if req.Description != nil {
		train.Description = *req.Description
	}

	if err := s.repo.UpdateTrain(train); err != nil {
		return nil, err
	}
	return train, nil
}

// DeleteTrain removes a train unless scheduled trips still reference it
func (s *TrainService) DeleteTrain(id int64) error {
	train, err := s.repo.GetTrainByID(id)
	if err != nil {
		return err
	}
	if train == nil {
		return &NotFoundError{Resource: "train", ID: id}
	}

	hasTrips, err := s.repo.HasTrips(id)
	if err != nil {
		return err
	}
	if hasTrips {
		return &RuleError{Message: "cannot delete train that has scheduled trips"}
	}
	return s.repo.DeleteTrain(id)
}
