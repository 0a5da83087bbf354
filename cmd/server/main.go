package main

import (
	"log"

	"github.com/railops/train-scheduler-go/internal/api"
	"github.com/railops/train-scheduler-go/internal/config"
	"github.com/railops/train-scheduler-go/internal/database"
	"github.com/railops/train-scheduler-go/internal/events"
	"github.com/railops/train-scheduler-go/internal/handler"
	"github.com/railops/train-scheduler-go/internal/metrics"
	"github.com/railops/train-scheduler-go/internal/repository"
	"github.com/railops/train-scheduler-go/internal/scheduler"
	"github.com/railops/train-scheduler-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}

	var publisher *events.Publisher
	if cfg.NATSURL != "" {
		var err error
		publisher, err = events.Connect(cfg.NATSURL)
		if err != nil {
			log.Fatal("Failed to connect to NATS:", err)
		}
		defer publisher.Close()
		log.Printf("Trip events publishing to %s", cfg.NATSURL)
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
		Trips:    handler.NewTripHandler(service.NewTripService(tripRepo, trainRepo, detector, publisher, collector)),
	}

	router := api.SetupRouter(handlers, collector)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
