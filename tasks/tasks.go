package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeAnalyzePlaceImage = "place:analyze_image"

// AnalyzePlaceImagePayload identifies the place photo to analyze.
type AnalyzePlaceImagePayload struct {
	PlaceID     string `json:"placeId"`
	ImageBase64 string `json:"imageBase64"`
}

// NewAnalyzePlaceImageTask builds the task enqueued when a place is created
// with a photo.
func NewAnalyzePlaceImageTask(payload AnalyzePlaceImagePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAnalyzePlaceImage, b, asynq.MaxRetry(3)), nil
}
