package models

// Train represents a train (rolling stock)
type Train struct {
	ID          int64  `json:"id" db:"id"`
	Code        string `json:"code" db:"code"` // Unique identifier, e.g. "EXP101"
	Description string `json:"description,omitempty" db:"description"`
}

// TrainCreateRequest is the payload for creating a train
type TrainCreateRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// TrainUpdateRequest is the payload for updating a train
type TrainUpdateRequest struct {
	Code        *string `json:"code" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}
