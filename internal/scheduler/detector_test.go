package scheduler

import (
	"errors"
	"reflect"
	"testing"
)

// fakeStore is an in-memory Store for detector tests. Occupancies are kept
// per track segment in insertion order, mirroring the deterministic order a
// real store must provide.
type fakeStore struct {
	segments    map[int64]*TrackSegment
	occupancies map[int64][]Occupancy
	queries     int
}

func (f *fakeStore) GetTrackSegment(id int64) (*TrackSegment, error) {
	f.queries++
	return f.segments[id], nil
}

func (f *fakeStore) FindActiveSegmentUses(trackSegmentID, excludeTripID int64) ([]Occupancy, error) {
	f.queries++
	var out []Occupancy
	for _, occ := range f.occupancies[trackSegmentID] {
		if occ.TripID != excludeTripID {
			out = append(out, occ)
		}
	}
	return out, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		segments: map[int64]*TrackSegment{
			1: {ID: 1, SingleTrack: true, DisplayName: "Alpha - Bravo"},
			2: {ID: 2, SingleTrack: false, DisplayName: "Bravo - Charlie"},
			3: {ID: 3, SingleTrack: true, DisplayName: "Charlie - Delta"},
		},
		occupancies: map[int64][]Occupancy{},
	}
}

func TestCheckNoConflictsOnEmptySchedule(t *testing.T) {
	d := NewDetector(newFakeStore())

	report, err := d.Check([]SegmentUse{{TrackSegmentID: 1, Departure: at(10, 0), Arrival: at(11, 0)}}, 0)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.HasConflicts {
		t.Errorf("HasConflicts = true, want false")
	}
	if len(report.Conflicts) != 0 {
		t.Errorf("len(Conflicts) = %d, want 0", len(report.Conflicts))
	}
}

func TestCheckMultiTrackNeverConflicts(t *testing.T) {
	store := newFakeStore()
	store.occupancies[2] = []Occupancy{
		{TripID: 7, TrainID: 3, Departure: at(10, 0), Arrival: at(11, 0)},
	}
	d := NewDetector(store)

	report, err := d.Check([]SegmentUse{{TrackSegmentID: 2, Departure: at(10, 0), Arrival: at(11, 0)}}, 0)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.HasConflicts {
		t.Errorf("multi-track segment produced a conflict")
	}
}

func TestCheckAggregatesAllConflicts(t *testing.T) {
	store := newFakeStore()
	store.occupancies[1] = []Occupancy{
		{TripID: 10, TrainID: 1, Departure: at(10, 0), Arrival: at(10, 45)},
		{TripID: 11, TrainID: 2, Departure: at(10, 30), Arrival: at(11, 15)},
		{TripID: 12, TrainID: 3, Departure: at(12, 0), Arrival: at(13, 0)}, // disjoint
		{TripID: 13, TrainID: 4, Departure: at(10, 15), Arrival: at(10, 20)},
	}
	d := NewDetector(store)

	report, err := d.Check([]SegmentUse{{TrackSegmentID: 1, Departure: at(10, 0), Arrival: at(11, 0)}}, 0)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(report.Conflicts) != 3 {
		t.Fatalf("len(Conflicts) = %d, want 3", len(report.Conflicts))
	}
	// Discovery order must follow the store's order
	wantTrips := []int64{10, 11, 13}
	for i, want := range wantTrips {
		if got := report.Conflicts[i].ConflictingTripID; got != want {
			t.Errorf("Conflicts[%d].ConflictingTripID = %d, want %d", i, got, want)
		}
	}
	if report.Conflicts[0].TrackSegmentName != "Alpha - Bravo" {
		t.Errorf("TrackSegmentName = %q, want %q", report.Conflicts[0].TrackSegmentName, "Alpha - Bravo")
	}
}

func TestCheckOrdersConflictsBySegmentPosition(t *testing.T) {
	store := newFakeStore()
	store.occupancies[1] = []Occupancy{
		{TripID: 20, TrainID: 1, Departure: at(10, 0), Arrival: at(11, 0)},
	}
	store.occupancies[3] = []Occupancy{
		{TripID: 21, TrainID: 2, Departure: at(11, 0), Arrival: at(12, 0)},
	}
	d := NewDetector(store)

	report, err := d.Check([]SegmentUse{
		{TrackSegmentID: 3, Departure: at(11, 30), Arrival: at(12, 30)},
		{TrackSegmentID: 1, Departure: at(12, 30), Arrival: at(13, 30)},
	}, 0)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(report.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(report.Conflicts))
	}
	if report.Conflicts[0].TrackSegmentID != 3 {
		t.Errorf("conflict on segment %d, want 3", report.Conflicts[0].TrackSegmentID)
	}
}

func TestCheckUnknownSegmentIsReferenceError(t *testing.T) {
	d := NewDetector(newFakeStore())

	_, err := d.Check([]SegmentUse{{TrackSegmentID: 99, Departure: at(10, 0), Arrival: at(11, 0)}}, 0)
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Check() error = %v, want *ReferenceError", err)
	}
	if refErr.TrackSegmentID != 99 {
		t.Errorf("TrackSegmentID = %d, want 99", refErr.TrackSegmentID)
	}
}

func TestCheckValidatesBeforeAnyStoreQuery(t *testing.T) {
	store := newFakeStore()
	d := NewDetector(store)

	_, err := d.Check([]SegmentUse{{TrackSegmentID: 99, Departure: at(11, 0), Arrival: at(10, 0)}}, 0)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Check() error = %v, want *ValidationError", err)
	}
	if store.queries != 0 {
		t.Errorf("store queried %d times before validation failed, want 0", store.queries)
	}
}

func TestCheckExcludesOwnTrip(t *testing.T) {
	store := newFakeStore()
	store.occupancies[1] = []Occupancy{
		{TripID: 5, TrainID: 1, Departure: at(10, 0), Arrival: at(11, 0)},
	}
	d := NewDetector(store)
	uses := []SegmentUse{{TrackSegmentID: 1, Departure: at(10, 0), Arrival: at(11, 0)}}

	report, err := d.Check(uses, 5)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.HasConflicts {
		t.Errorf("trip conflicted with itself")
	}

	report, err = d.Check(uses, 0)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !report.HasConflicts {
		t.Errorf("expected conflict when not excluding the trip")
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.occupancies[1] = []Occupancy{
		{TripID: 8, TrainID: 2, Departure: at(10, 30), Arrival: at(11, 30)},
	}
	d := NewDetector(store)
	uses := []SegmentUse{{TrackSegmentID: 1, Departure: at(10, 0), Arrival: at(11, 0)}}

	first, err := d.Check(uses, 0)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	second, err := d.Check(uses, 0)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated checks differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
