package service

import (
	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/repository"
)

// StationService handles business logic for stations
type StationService struct {
	repo *repository.StationRepository
}

// NewStationService creates a new station service
func NewStationService(repo *repository.StationRepository) *StationService {
	return &StationService{repo: repo}
}

// CreateStation creates a station, rejecting duplicate names
func (s *StationService) CreateStation(req models.StationCreateRequest) (*models.Station, error) {
	existing, err := s.repo.GetStationByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &RuleError{Message: "station with this name already exists"}
	}

	numTracks := req.NumTracks
	if numTracks == 0 {
		numTracks = 1
	}
	return s.repo.CreateStation(req.Name, numTracks)
}

// GetStations retrieves stations with pagination
func (s *StationService) GetStations(skip, limit int) ([]models.Station, error) {
	return s.repo.GetStations(skip, limit)
}

// GetStationByID retrieves a single station
func (s *StationService) GetStationByID(id int64) (*models.Station, error) {
	return s.repo.GetStationByID(id)
}

// UpdateStation applies a partial update to a station
func (s *StationService) UpdateStation(id int64, req models.StationUpdateRequest) (*models.Station, error) {
	station, err := s.repo.GetStationByID(id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, &NotFoundError{Resource: "station", ID: id}
	}

	if req.Name != nil && *req.Name != station.Name {
		existing, err := s.repo.GetStationByName(*req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &RuleError{Message: "station with this name already exists"}
		}
		station.Name = *req.Name
	}
	if req.NumTracks != nil {
		station.NumTracks = *req.NumTracks
	}

	if err := s.repo.UpdateStation(station); err != nil {
		return nil, err
	}
	return station, nil
}

// DeleteStation removes a station unless track segments still reference it
func (s *StationService) DeleteStation(id int64) error {
	station, err := s.repo.GetStationByID(id)
	if err != nil {
		return err
	}
	if station == nil {
		return &NotFoundError{Resource: "station", ID: id}
	}

	referenced, err := s.repo.IsStationReferenced(id)
	if err != nil {
		return err
	}
	if referenced {
		return &RuleError{Message: "cannot delete station that is referenced by track segments"}
	}
	return s.repo.DeleteStation(id)
}
