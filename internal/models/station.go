package models

// Station represents a physical railway station
type Station struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`             // Unique station name
	NumTracks int    `json:"num_tracks" db:"num_tracks"` // Number of tracks at the station
}

// StationCreateRequest is the payload for creating a station
type StationCreateRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	NumTracks int    `json:"num_tracks" binding:"omitempty,gte=1,lte=50"`
}

// StationUpdateRequest is the payload for updating a station
type StationUpdateRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	NumTracks *int    `json:"num_tracks" binding:"omitempty,gte=1,lte=50"`
}
