package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/railops/train-scheduler-go/internal/models"
)

func TestStationCRUD(t *testing.T) {
	r := newTestRouter(t)

	id := createID(t, r, "/api/v1/stations",
		map[string]interface{}{"name": "Central", "num_tracks": 4})

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/stations/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var station models.Station
	decodeInto(t, w, &station)
	if station.Name != "Central" || station.NumTracks != 4 {
		t.Errorf("station = %+v, want Central with 4 tracks", station)
	}

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/v1/stations/%d", id),
		map[string]interface{}{"num_tracks": 6})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", w.Code, w.Body.String())
	}
	decodeInto(t, w, &station)
	if station.Name != "Central" || station.NumTracks != 6 {
		t.Errorf("after partial update station = %+v, want Central with 6 tracks", station)
	}

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/stations/%d", id), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/stations/%d", id), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
}

func TestDuplicateStationNameRejected(t *testing.T) {
	r := newTestRouter(t)

	createID(t, r, "/api/v1/stations", map[string]interface{}{"name": "Central", "num_tracks": 2})

	w := doRequest(t, r, http.MethodPost, "/api/v1/stations",
		map[string]interface{}{"name": "Central", "num_tracks": 3})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestDeleteReferencedStationRejected(t *testing.T) {
	r := newTestRouter(t)
	d := setupBasicData(t, r)

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/stations/%d", d.stationA), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestDuplicateTrainCodeRejected(t *testing.T) {
	r := newTestRouter(t)

	createID(t, r, "/api/v1/trains", map[string]interface{}{"code": "EXP101", "description": "Express"})

	w := doRequest(t, r, http.MethodPost, "/api/v1/trains",
		map[string]interface{}{"code": "EXP101", "description": "Another express"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestDeleteTrainWithTripsRejected(t *testing.T) {
	r := newTestRouter(t)
	d := setupBasicData(t, r)

	createID(t, r, "/api/v1/trips",
		tripPayload(d.train1, segmentUse(d.segmentAB, ts(10, 0), ts(11, 0))))

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/trains/%d", d.train1), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}

	// The unscheduled train can still go
	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/trains/%d", d.train2), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", w.Code, w.Body.String())
	}
}

func TestSegmentBetweenSameStationRejected(t *testing.T) {
	r := newTestRouter(t)
	d := setupBasicData(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/v1/segments", map[string]interface{}{
		"station_a_id": d.stationA, "station_b_id": d.stationA,
		"single_track": true, "travel_time_minutes": 10,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestDuplicateSegmentRejectedBothDirections(t *testing.T) {
	r := newTestRouter(t)
	d := setupBasicData(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/v1/segments", map[string]interface{}{
		"station_a_id": d.stationA, "station_b_id": d.stationB,
		"single_track": true, "travel_time_minutes": 30,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d, want 400: %s", w.Code, w.Body.String())
	}

	// Reversed endpoints are the same segment
	w = doRequest(t, r, http.MethodPost, "/api/v1/segments", map[string]interface{}{
		"station_a_id": d.stationB, "station_b_id": d.stationA,
		"single_track": true, "travel_time_minutes": 30,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("reversed duplicate status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestSegmentWithUnknownStationIs404(t *testing.T) {
	r := newTestRouter(t)
	d := setupBasicData(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/v1/segments", map[string]interface{}{
		"station_a_id": d.stationA, "station_b_id": int64(9999),
		"single_track": true, "travel_time_minutes": 10,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestDeleteSegmentWithScheduledTripsRejected(t *testing.T) {
	r := newTestRouter(t)
	d := setupBasicData(t, r)

	createID(t, r, "/api/v1/trips",
		tripPayload(d.train1, segmentUse(d.segmentAB, ts(10, 0), ts(11, 0))))

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/segments/%d", d.segmentAB), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestSegmentListIncludesStations(t *testing.T) {
	r := newTestRouter(t)
	setupBasicData(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/v1/segments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var segments []models.TrackSegment
	decodeInto(t, w, &segments)
	if len(segments) != 2 {
		t.Fatalf("len(segments) = %d, want 2", len(segments))
	}
	for _, seg := range segments {
		if seg.StationA == nil || seg.StationB == nil {
			t.Errorf("segment %d missing station details: %+v", seg.ID, seg)
		}
	}
}

func TestInvalidIDIs400(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/stations/abc",
		"/api/v1/trains/abc",
		"/api/v1/segments/abc",
		"/api/v1/trips/abc",
	} {
		w := doRequest(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", path, w.Code)
		}
	}
}

func TestInvalidPaginationIs400(t *testing.T) {
	r := newTestRouter(t)

	for _, query := range []string{
		"limit=abc",
		"skip=abc",
		"skip=-1",
		"limit=0",
		"limit=2000",
	} {
		for _, path := range []string{"/api/v1/stations", "/api/v1/trains", "/api/v1/segments", "/api/v1/trips"} {
			w := doRequest(t, r, http.MethodGet, path+"?"+query, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("GET %s?%s = %d, want 400", path, query, w.Code)
			}
		}
	}

	// The defaults and explicit valid values still work
	w := doRequest(t, r, http.MethodGet, "/api/v1/stations?skip=0&limit=10", nil)
	if w.Code != http.StatusOK {
		t.Errorf("GET with valid pagination = %d, want 200", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	doRequest(t, r, http.MethodGet, "/health", nil)

	w := doRequest(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if w.Body.Len() == 0 {
		t.Errorf("metrics body is empty")
	}
}
