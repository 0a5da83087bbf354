package service

import (
	"github.com/railops/train-scheduler-go/internal/events"
	"github.com/railops/train-scheduler-go/internal/metrics"
	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/repository"
	"github.com/railops/train-scheduler-go/internal/scheduler"
)

// TripService handles trip creation, status changes, and conflict checking.
//
// The conflict detector only reads a snapshot, so checking and committing
// must not interleave between writers: CreateTrip and trip reactivation hold
// per-track-segment locks across the check and the insert/update. The
// dry-run CheckTrip path takes no locks and never writes.
type TripService struct {
	trips    *repository.TripRepository
	trains   *repository.TrainRepository
	detector *scheduler.Detector
	locks    *segmentLocks
	events   *events.Publisher
	metrics  *metrics.Collector
}

// NewTripService creates a new trip service. publisher may be nil when
// event publishing is disabled.
func NewTripService(
	trips *repository.TripRepository,
	trains *repository.TrainRepository,
	detector *scheduler.Detector,
	publisher *events.Publisher,
	collector *metrics.Collector,
) *TripService {
	return &TripService{
		trips:    trips,
		trains:   trains,
		detector: detector,
		locks:    newSegmentLocks(),
		events:   publisher,
		metrics:  collector,
	}
}

func toSegmentUses(segments []models.ScheduledSegmentInput) []scheduler.SegmentUse {
	uses := make([]scheduler.SegmentUse, len(segments))
	for i, seg := range segments {
		uses[i] = scheduler.SegmentUse{
			TrackSegmentID: seg.TrackSegmentID,
			Departure:      seg.DepartureTime,
			Arrival:        seg.ArrivalTime,
		}
	}
	return uses
}

func segmentIDs(uses []scheduler.SegmentUse) []int64 {
	ids := make([]int64, len(uses))
	for i, use := range uses {
		ids[i] = use.TrackSegmentID
	}
	return ids
}

// CreateTrip validates the proposal, checks it for conflicts, and persists
// it. A non-nil report means the trip was rejected by conflict detection
// and nothing was written; the caller turns it into a conflict response.
func (s *TripService) CreateTrip(req models.TripCreateRequest) (*models.ScheduledTrip, *models.ConflictReport, error) {
	uses := toSegmentUses(req.Segments)
	if err := scheduler.ValidateSegments(uses); err != nil {
		return nil, nil, err
	}

	train, err := s.trains.GetTrainByID(req.TrainID)
	if err != nil {
		return nil, nil, err
	}
	if train == nil {
		return nil, nil, &NotFoundError{Resource: "train", ID: req.TrainID}
	}

	unlock := s.locks.lockAll(segmentIDs(uses))
	defer unlock()

	report, err := s.detector.Check(uses, 0)
	if err != nil {
		return nil, nil, err
	}
	if report.HasConflicts {
		if s.metrics != nil {
			s.metrics.ConflictsDetected.Add(float64(len(report.Conflicts)))
		}
		return nil, report, nil
	}

	trip, err := s.trips.CreateTrip(req.TrainID, req.Segments)
	if err != nil {
		return nil, nil, err
	}
	if s.metrics != nil {
		s.metrics.TripsCreated.Inc()
	}
	s.events.TripCreated(trip)
	return trip, nil, nil
}

// CheckTrip runs the exact conflict check CreateTrip runs, without ever
// persisting anything. Identical inputs over identical store state produce
// identical reports on both paths.
func (s *TripService) CheckTrip(req models.TripCreateRequest) (*models.ConflictReport, error) {
	uses := toSegmentUses(req.Segments)
	if err := scheduler.ValidateSegments(uses); err != nil {
		return nil, err
	}

	train, err := s.trains.GetTrainByID(req.TrainID)
	if err != nil {
		return nil, err
	}
	if train == nil {
		return nil, &NotFoundError{Resource: "train", ID: req.TrainID}
	}

	report, err := s.detector.Check(uses, 0)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.DryRunChecks.Inc()
	}
	return report, nil
}

// GetTrip retrieves a trip with its segments and train
func (s *TripService) GetTrip(id int64) (*models.ScheduledTrip, error) {
	trip, err := s.trips.GetTripWithSegments(id)
	if err != nil || trip == nil {
		return trip, err
	}
	trip.Train, err = s.trains.GetTrainByID(trip.TrainID)
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// ListTrips retrieves trips with pagination
func (s *TripService) ListTrips(skip, limit int) ([]models.ScheduledTrip, int64, error) {
	return s.trips.ListTrips(skip, limit)
}

// UpdateTripStatus changes a trip's status. Bringing a CANCELLED trip back
// to PLANNED or ACTIVE re-runs the conflict check against everything except
// the trip itself; a non-nil report means the transition was refused.
// Cancellation is always allowed.
func (s *TripService) UpdateTripStatus(id int64, status models.TripStatus) (*models.ScheduledTrip, *models.ConflictReport, error) {
	if !status.Valid() {
		return nil, nil, &RuleError{Message: "invalid trip status"}
	}

	trip, err := s.trips.GetTripByID(id)
	if err != nil {
		return nil, nil, err
	}
	if trip == nil {
		return nil, nil, &NotFoundError{Resource: "trip", ID: id}
	}

	if trip.Status == models.TripStatusCancelled && status != models.TripStatusCancelled {
		uses, err := s.trips.GetTripSegmentUses(id)
		if err != nil {
			return nil, nil, err
		}

		unlock := s.locks.lockAll(segmentIDs(uses))
		defer unlock()

		report, err := s.detector.Check(uses, id)
		if err != nil {
			return nil, nil, err
		}
		if report.HasConflicts {
			if s.metrics != nil {
				s.metrics.ConflictsDetected.Add(float64(len(report.Conflicts)))
			}
			return nil, report, nil
		}
	}

	if err := s.trips.UpdateTripStatus(id, status); err != nil {
		return nil, nil, err
	}
	trip.Status = status
	s.events.TripStatusChanged(trip)

	updated, err := s.GetTrip(id)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// DeleteTrip removes a trip and its segments
func (s *TripService) DeleteTrip(id int64) error {
	trip, err := s.trips.GetTripByID(id)
	if err != nil {
		return err
	}
	if trip == nil {
		return &NotFoundError{Resource: "trip", ID: id}
	}
	if err := s.trips.DeleteTrip(id); err != nil {
		return err
	}
	s.events.TripDeleted(id)
	return nil
}
