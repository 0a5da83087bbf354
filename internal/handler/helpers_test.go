package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/api"
	"github.com/railops/train-scheduler-go/internal/database"
	"github.com/railops/train-scheduler-go/internal/handler"
	"github.com/railops/train-scheduler-go/internal/metrics"
	"github.com/railops/train-scheduler-go/internal/models"
	"github.com/railops/train-scheduler-go/internal/repository"
	"github.com/railops/train-scheduler-go/internal/scheduler"
	"github.com/railops/train-scheduler-go/internal/service"
)

// newTestRouter wires the full stack against a fresh on-disk SQLite
// database, exactly as cmd/server does but without event publishing.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "scheduler.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	collector := metrics.NewCollector()
	stationRepo := repository.NewStationRepository(db)
	trainRepo := repository.NewTrainRepository(db)
	segmentRepo := repository.NewTrackSegmentRepository(db)
	tripRepo := repository.NewTripRepository(db)
	detector := scheduler.NewDetector(repository.NewSchedulingStore(db))

	handlers := api.Handlers{
		Stations: handler.NewStationHandler(service.NewStationService(stationRepo)),
		Trains:   handler.NewTrainHandler(service.NewTrainService(trainRepo)),
		Segments: handler.NewTrackSegmentHandler(service.NewTrackSegmentService(segmentRepo, stationRepo)),
		Trips:    handler.NewTripHandler(service.NewTripService(tripRepo, trainRepo, detector, nil, collector)),
	}
	return api.SetupRouter(handlers, collector)
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func createID(t *testing.T, r http.Handler, path string, body interface{}) int64 {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, path, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s = %d, want 201: %s", path, w.Code, w.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	decodeInto(t, w, &created)
	return created.ID
}

// ts renders a timestamp on 2025-01-01 the way request payloads carry it
func ts(hour, min int) string {
	return time.Date(2025, 1, 1, hour, min, 0, 0, time.UTC).Format(time.RFC3339)
}

func segmentUse(segmentID int64, dep, arr string) map[string]interface{} {
	return map[string]interface{}{
		"track_segment_id": segmentID,
		"departure_time":   dep,
		"arrival_time":     arr,
	}
}

func tripPayload(trainID int64, segments ...map[string]interface{}) map[string]interface{} {
	if segments == nil {
		segments = []map[string]interface{}{}
	}
	return map[string]interface{}{
		"train_id": trainID,
		"segments": segments,
	}
}

type basicData struct {
	stationA, stationB, stationC int64
	train1, train2               int64
	segmentAB                    int64 // single track
	segmentBC                    int64 // double track
}

// setupBasicData seeds three stations, two trains, one single-track segment
// A-B, and one double-track segment B-C
func setupBasicData(t *testing.T, r http.Handler) basicData {
	t.Helper()
	var d basicData
	d.stationA = createID(t, r, "/api/v1/stations", map[string]interface{}{"name": "Station A", "num_tracks": 1})
	d.stationB = createID(t, r, "/api/v1/stations", map[string]interface{}{"name": "Station B", "num_tracks": 1})
	d.stationC = createID(t, r, "/api/v1/stations", map[string]interface{}{"name": "Station C", "num_tracks": 1})

	d.train1 = createID(t, r, "/api/v1/trains", map[string]interface{}{"code": "EXP101", "description": "Express 101"})
	d.train2 = createID(t, r, "/api/v1/trains", map[string]interface{}{"code": "LOC202", "description": "Local 202"})

	d.segmentAB = createID(t, r, "/api/v1/segments", map[string]interface{}{
		"station_a_id": d.stationA, "station_b_id": d.stationB,
		"single_track": true, "travel_time_minutes": 30,
	})
	d.segmentBC = createID(t, r, "/api/v1/segments", map[string]interface{}{
		"station_a_id": d.stationB, "station_b_id": d.stationC,
		"single_track": false, "travel_time_minutes": 40,
	})
	return d
}

type conflictBody struct {
	Message   string                  `json:"message"`
	Conflicts []models.ConflictRecord `json:"conflicts"`
}

type checkBody struct {
	HasConflicts bool                    `json:"has_conflicts"`
	Conflicts    []models.ConflictRecord `json:"conflicts"`
}
