package service

import (
	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/repository"
)

// TrackSegmentService handles business logic for track segments
type TrackSegmentService struct {
	repo     *repository.TrackSegmentRepository
	stations *repository.StationRepository
}

// NewTrackSegmentService creates a new track segment service
func NewTrackSegmentService(repo *repository.TrackSegmentRepository, stations *repository.StationRepository) *TrackSegmentService {
	return &TrackSegmentService{repo: repo, stations: stations}
}

// CreateSegment creates a track segment between two distinct existing
// stations. At most one segment may connect a station pair, regardless of
// direction.
func (s *TrackSegmentService) CreateSegment(req models.TrackSegmentCreateRequest) (*models.TrackSegment, error) {
	if req.StationAID == req.StationBID {
		return nil, &RuleError{Message: "station_a_id and station_b_id must be different"}
	}

	for _, stationID := range []int64{req.StationAID, req.StationBID} {
		station, err := s.stations.GetStationByID(stationID)
		if err != nil {
			return nil, err
		}
		if station == nil {
			return nil, &NotFoundError{Resource: "station", ID: stationID}
		}
	}

	exists, err := s.repo.SegmentExistsBetween(req.StationAID, req.StationBID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &RuleError{Message: "track segment between these stations already exists"}
	}

	return s.repo.CreateSegment(req)
}

// GetSegments retrieves track segments with pagination
func (s *TrackSegmentService) GetSegments(skip, limit int) ([]models.TrackSegment, error) {
	return s.repo.GetSegments(skip, limit)
}

// GetSegmentByID retrieves a single track segment
func (s *TrackSegmentService) GetSegmentByID(id int64) (*models.TrackSegment, error) {
	return s.repo.GetSegmentByID(id)
}

// UpdateSegment applies a partial update; station endpoints are immutable
func (s *TrackSegmentService) UpdateSegment(id int64, req models.TrackSegmentUpdateRequest) (*models.TrackSegment, error) {
	segment, err := s.repo.GetSegmentByID(id)
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, &NotFoundError{Resource: "track segment", ID: id}
	}

	if req.SingleTrack != nil {
		segment.SingleTrack = *req.SingleTrack
	}
	if req.TravelTimeMinutes != nil {
		segment.TravelTimeMinutes = *req.TravelTimeMinutes
	}

	if err := s.repo.UpdateSegment(segment); err != nil {
		return nil, err
	}
	return segment, nil
}

// DeleteSegment removes a track segment unless scheduled trips reference it
func (s *TrackSegmentService) DeleteSegment(id int64) error {
	segment, err := s.repo.GetSegmentByID(id)
	if err != nil {
		return err
	}
	if segment == nil {
		return &NotFoundError{Resource: "track segment", ID: id}
	}

	referenced, err := s.repo.HasScheduledSegments(id)
	if err != nil {
		return err
	}
	if referenced {
		return &RuleError{Message: "cannot delete track segment that is referenced by scheduled trips"}
	}
	return s.repo.DeleteSegment(id)
}
