package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/railops/train-scheduler-go/internal/handler"
	"github.com/railops/train-scheduler-go/internal/metrics"
	"github.com/railops/train-scheduler-go/internal/middleware"
)

// Handlers bundles the route handlers the router wires up
type Handlers struct {
	Stations *handler.StationHandler
	Trains   *handler.TrainHandler
	Segments *handler.TrackSegmentHandler
	Trips    *handler.TripHandler
}

// SetupRouter builds the gin engine with all middleware and routes
func SetupRouter(h Handlers, collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	if collector != nil {
		r.Use(middleware.Metrics(collector))
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if collector != nil {
		r.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	api := r.Group("/api/v1")
	{
		stations := api.Group("/stations")
		{
			stations.POST("", h.Stations.CreateStation)
			stations.GET("", h.Stations.GetStations)
			stations.GET("/:id", h.Stations.GetStationByID)
			stations.PUT("/:id", h.Stations.UpdateStation)
			stations.DELETE("/:id", h.Stations.DeleteStation)
		}

		trains := api.Group("/trains")
		{
			trains.POST("", h.Trains.CreateTrain)
			trains.GET("", h.Trains.GetTrains)
			trains.GET("/:id", h.Trains.GetTrainByID)
			trains.PUT("/:id", h.Trains.UpdateTrain)
			trains.DELETE("/:id", h.Trains.DeleteTrain)
		}

		segments := api.Group("/segments")
		{
			segments.POST("", h.Segments.CreateSegment)
			segments.GET("", h.Segments.GetSegments)
			segments.GET("/:id", h.Segments.GetSegmentByID)
			segments.PUT("/:id", h.Segments.UpdateSegment)
			segments.DELETE("/:id", h.Segments.DeleteSegment)
		}

		trips := api.Group("/trips")
		{
			trips.POST("", h.Trips.CreateTrip)
			trips.POST("/check", h.Trips.CheckTrip)
			trips.GET("", h.Trips.ListTrips)
			trips.GET("/:id", h.Trips.GetTrip)
			trips.GET("/:id/segments", h.Trips.GetTripSegments)
			trips.PUT("/:id", h.Trips.UpdateTrip)
			trips.DELETE("/:id", h.Trips.DeleteTrip)
		}
	}

	return r
}
