package assistant

import "inclusivehub/models"

// MapNotice is appended to the model text whenever a map payload is attached.
const MapNotice = "\n\n📍 I've also prepared a map below to help you navigate to these locations."

// AssembleChatResponse combines model output with an optional map payload.
// The payload is attached if and only if the utterance was location-seeking
// and a coordinate was resolved. Deterministic, no error paths.
func AssembleChatResponse(modelText string, isLocationQuery bool, query string, coord *models.GeoPoint) models.ChatResult {
	if !isLocationQuery || coord == nil {
		return models.ChatResult{Response: modelText}
	}
	return models.ChatResult{
		Response: modelText + MapNotice,
		MapData: &models.MapPayload{
			Query:    query,
			Location: *coord,
		},
	}
}
