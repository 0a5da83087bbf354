// Package events publishes trip lifecycle notifications over NATS so that
// downstream consumers (departure boards, dispatch dashboards) can react to
// schedule changes. Publishing is best-effort and entirely optional: a nil
// *Publisher is a valid no-op publisher.
package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/railops/train-scheduler-go/internal/models"
)

// Subjects for trip lifecycle events
const (
	SubjectTripCreated       = "trips.created"
	SubjectTripStatusChanged = "trips.status_changed"
	SubjectTripDeleted       = "trips.deleted"
)

// Publisher publishes trip events to a NATS server
type Publisher struct {
	nc *nats.Conn
}

// Connect establishes a NATS connection for event publishing
func Connect(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("train-scheduler"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats reconnected")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc}, nil
}

// Close drains and closes the NATS connection
func (p *Publisher) Close() {
	if p == nil || p.nc == nil {
		return
	}
	p.nc.Drain()
	p.nc.Close()
}

// TripEvent is the wire form of a trip lifecycle notification
type TripEvent struct {
	TripID    int64     `json:"trip_id"`
	TrainID   int64     `json:"train_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *Publisher) publish(subject string, event TripEvent) {
	if p == nil || p.nc == nil {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal trip event: %v", err)
		return
	}
	if err := p.nc.Publish(subject, b); err != nil {
		log.Printf("failed to publish %s: %v", subject, err)
	}
}

// TripCreated publishes a creation event for the trip
func (p *Publisher) TripCreated(trip *models.ScheduledTrip) {
	p.publish(SubjectTripCreated, TripEvent{
		TripID:    trip.ID,
		TrainID:   trip.TrainID,
		Status:    string(trip.Status),
		Timestamp: time.Now().UTC(),
	})
}

// TripStatusChanged publishes a status change event for the trip
func (p *Publisher) TripStatusChanged(trip *models.ScheduledTrip) {
	p.publish(SubjectTripStatusChanged, TripEvent{
		TripID:    trip.ID,
		TrainID:   trip.TrainID,
		Status:    string(trip.Status),
		Timestamp: time.Now().UTC(),
	})
}

// TripDeleted publishes a deletion event for the trip id
func (p *Publisher) TripDeleted(tripID int64) {
	p.publish(SubjectTripDeleted, TripEvent{
		TripID:    tripID,
		Timestamp: time.Now().UTC(),
	})
}
