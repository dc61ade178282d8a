package models

// ConversationTurn is a single prior exchange replayed as context on each request.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message             string             `json:"message"`
	SessionID           string             `json:"sessionId,omitempty"`
	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty"`
	UserLocation        *GeoPoint          `json:"userLocation,omitempty"`
	IsLocationQuery     bool               `json:"isLocationQuery,omitempty"`
}

// MapPayload is the contract handed to the map-rendering client.
// Never mutated after construction.
type MapPayload struct {
	Query    string   `json:"query"`
	Location GeoPoint `json:"location"`
}

// ChatResult is what the chat handler returns to the frontend.
type ChatResult struct {
	Response string      `json:"response"`
	MapData  *MapPayload `json:"mapData,omitempty"`
}

// VoiceCommandResult is the structured interpretation of a voice transcript.
type VoiceCommandResult struct {
	Action   string            `json:"action"` // "search_places", "ask_question", "navigate", "general_chat"
	Response string            `json:"response"`
	Data     *VoiceCommandData `json:"data,omitempty"`
}

// VoiceCommandData carries slots extracted from a voice command.
type VoiceCommandData struct {
	Type     string   `json:"type,omitempty"`     // location type, when applicable
	Features []string `json:"features,omitempty"` // accessibility features mentioned
}

// VisionAnalysis is the structured output of the general vision pipeline.
type VisionAnalysis struct {
	Description   string   `json:"description"`
	Accessibility []string `json:"accessibility"`
	Safety        []string `json:"safety"`
	Confidence    float64  `json:"confidence"`
}

// AccessibilityAnalysis is the structured output of place-photo analysis.
type AccessibilityAnalysis struct {
	Features    []string `json:"features"` // e.g. "wheelchair", "audio", "visual", "hearing"
	Description string   `json:"description"`
}

// DocumentAnalysis is the structured output of the document pipeline.
type DocumentAnalysis struct {
	Summary            string   `json:"summary"`
	KeyPoints          []string `json:"keyPoints"`
	AccessibilityNotes []string `json:"accessibilityNotes"`
}

// SpeechResult is the output of the audio pipeline.
type SpeechResult struct {
	Transcript string `json:"transcript"`
	Response   string `json:"response"`
}

// ListingCopy is AI-generated marketplace listing text.
type ListingCopy struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
