package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"inclusivehub/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// ApologyReply is returned to the user when generation fails on the chat path.
const ApologyReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

// emptyReplyFallback stands in when the model returns nothing.
const emptyReplyFallback = "I'm sorry, I couldn't generate a response. Please try again."

const maxDocumentBytes = 10 * 1024 * 1024

// AssistantService exposes every AI-assisted pipeline of the platform.
type AssistantService interface {
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResult, error)
	ProcessVoiceCommand(ctx context.Context, transcript string) (*models.VoiceCommandResult, error)
	AnalyzeVision(ctx context.Context, imageBase64, analysisType string) (*models.VisionAnalysis, error)
	AnalyzeAccessibilityImage(ctx context.Context, imageBase64 string) (*models.AccessibilityAnalysis, error)
	AnalyzeDocument(ctx context.Context, documentURL, analysisType string) (*models.DocumentAnalysis, error)
	TranscribeAudio(ctx context.Context, audio []byte, mimeType, language string) (*models.SpeechResult, error)
	RealtimeChat(ctx context.Context, message, chatContext, userID, roomID string) (string, error)
	GenerateListingDescription(ctx context.Context, title, imageAnalysis string) (*models.ListingCopy, error)
	SimplifyContent(ctx context.Context, content, level string) string
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Gen       Generator
	Gazetteer Gazetteer
	History   HistoryStore
	Logger    *zap.Logger

	httpClient *http.Client
}

func NewDefaultAssistantService(gen Generator, gaz Gazetteer, history HistoryStore, logger *zap.Logger) *DefaultAssistantService {
	return &DefaultAssistantService{
		Gen:        gen,
		Gazetteer:  gaz,
		History:    history,
		Logger:     logger,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Chat runs the full grounding pipeline: classify, extract, resolve, compose,
// generate, assemble. On generation failure it returns the fixed apology text
// in the result and a non-nil error so the handler can log the real cause
// while still replying with a friendly message.
func (s *DefaultAssistantService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResult, error) {
	isLocationQuery := req.IsLocationQuery || IsLocationQuery(req.Message)

	spec := PromptSpec{
		Persona:           AssistantPersona,
		UserLocation:      req.UserLocation,
		EmphasizeLocation: isLocationQuery,
	}
	history := RecentTurns(req.ConversationHistory, HistoryWindow)

	text, err := s.Gen.GenerateText(ctx, spec.SystemInstruction(), history, req.Message)
	if err != nil {
		return models.ChatResult{Response: ApologyReply}, fmt.Errorf("chat generation failed: %w", err)
	}
	if text == "" {
		text = emptyReplyFallback
	}

	if !isLocationQuery {
		return models.ChatResult{Response: text}, nil
	}

	query := ExtractSearchTerms(req.Message)
	coord := req.UserLocation
	if coord == nil {
		if mention := NearMention(req.Message); mention != "" {
			if pt, ok := s.Gazetteer.Lookup(mention); ok {
				coord = &pt
			} else {
				fallback := DefaultRegion
				coord = &fallback
			}
		}
	}

	return AssembleChatResponse(text, true, query, coord), nil
}

const voiceCommandPersona = `You are processing voice commands for an accessibility platform.
Analyze the user's voice command and determine what action they want to take.
Possible actions: "search_places", "ask_question", "navigate", "general_chat"

For "search_places" commands, extract location type and accessibility needs.
For "navigate" commands, extract destination.
For other commands, just provide a helpful response.`

var voiceCommandSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"action":   {Type: genai.TypeString},
		"response": {Type: genai.TypeString},
		"data": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"type":     {Type: genai.TypeString},
				"features": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
		},
	},
	Required: []string{"action", "response"},
}

// ProcessVoiceCommand interprets a transcript into a structured action.
// Malformed model output degrades to a canned general_chat result.
func (s *DefaultAssistantService) ProcessVoiceCommand(ctx context.Context, transcript string) (*models.VoiceCommandResult, error) {
	raw, err := s.Gen.GenerateJSON(ctx, voiceCommandPersona, voiceCommandSchema, genai.Text(transcript))
	if err != nil {
		return nil, fmt.Errorf("voice command processing failed: %w", err)
	}

	var result models.VoiceCommandResult
	if err := json.Unmarshal(raw, &result); err != nil || result.Action == "" {
		s.Logger.Warn("voice command output unparsable, using fallback", zap.Error(err))
		return &models.VoiceCommandResult{
			Action:   "general_chat",
			Response: emptyReplyFallback,
		}, nil
	}
	return &result, nil
}

const visionPersona = `You are analyzing images for an accessibility platform.
Describe what the image shows, then list accessibility accommodations present
(wheelchair ramps, elevators, accessible restrooms, braille signage, visual or
audio aids, wide doorways) and any safety concerns for users with disabilities
(obstacles, uneven surfaces, poor lighting, missing handrails).`

var visionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"description":   {Type: genai.TypeString},
		"accessibility": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"safety":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"confidence":    {Type: genai.TypeNumber},
	},
	Required: []string{"description", "accessibility", "safety"},
}

// AnalyzeVision runs the general vision pipeline over a base64 JPEG.
// Unparsable output degrades to a placeholder analysis rather than failing.
func (s *DefaultAssistantService) AnalyzeVision(ctx context.Context, imageBase64, analysisType string) (*models.VisionAnalysis, error) {
	imageData, err := decodeImage(imageBase64)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Analyze this image with focus on %q. What can you identify?", analysisType)
	raw, err := s.Gen.GenerateJSON(ctx, visionPersona, visionSchema,
		genai.Blob{MIMEType: "image/jpeg", Data: imageData},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("vision analysis failed: %w", err)
	}

	var analysis models.VisionAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		s.Logger.Warn("vision output unparsable, using fallback", zap.Error(err))
		return &models.VisionAnalysis{
			Description:   "Unable to analyze this image in detail.",
			Accessibility: []string{},
			Safety:        []string{},
			Confidence:    0,
		}, nil
	}
	return &analysis, nil
}

const imageAccessibilityPersona = `You are analyzing images to identify accessibility features in public spaces.
Look for: wheelchair ramps, elevators, accessible restrooms, braille signage, visual/audio aids, wide doorways, etc.`

var accessibilitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"features":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"description": {Type: genai.TypeString},
	},
	Required: []string{"features", "description"},
}

// AnalyzeAccessibilityImage extracts accessibility features from a place photo.
func (s *DefaultAssistantService) AnalyzeAccessibilityImage(ctx context.Context, imageBase64 string) (*models.AccessibilityAnalysis, error) {
	imageData, err := decodeImage(imageBase64)
	if err != nil {
		return nil, err
	}

	raw, err := s.Gen.GenerateJSON(ctx, imageAccessibilityPersona, accessibilitySchema,
		genai.Blob{MIMEType: "image/jpeg", Data: imageData},
		genai.Text("Analyze this image for accessibility features. What accessibility accommodations can you identify?"),
	)
	if err != nil {
		return nil, fmt.Errorf("image analysis failed: %w", err)
	}

	var analysis models.AccessibilityAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		s.Logger.Warn("accessibility output unparsable, using fallback", zap.Error(err))
		return &models.AccessibilityAnalysis{
			Features:    []string{},
			Description: "Unable to identify accessibility features from this image.",
		}, nil
	}
	return &analysis, nil
}

const documentPersona = `You are analyzing documents for an accessibility platform.
Summarize the document plainly, pull out the key points, and note anything
relevant to readers with disabilities (plain-language availability, alternative
formats, accessibility-related obligations or rights).`

var documentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":            {Type: genai.TypeString},
		"keyPoints":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"accessibilityNotes": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"summary", "keyPoints"},
}

// AnalyzeDocument fetches a document by URL and runs the document pipeline.
func (s *DefaultAssistantService) AnalyzeDocument(ctx context.Context, documentURL, analysisType string) (*models.DocumentAnalysis, error) {
	data, mimeType, err := s.fetchDocument(ctx, documentURL)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Analyze this document with focus on %q.", analysisType)
	raw, err := s.Gen.GenerateJSON(ctx, documentPersona, documentSchema,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("document analysis failed: %w", err)
	}

	var analysis models.DocumentAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		s.Logger.Warn("document output unparsable, using fallback", zap.Error(err))
		return &models.DocumentAnalysis{
			Summary:            "Unable to analyze this document.",
			KeyPoints:          []string{},
			AccessibilityNotes: []string{},
		}, nil
	}
	return &analysis, nil
}

const speechPersona = `You are a transcription assistant for an accessibility platform.
Transcribe the audio faithfully, then reply helpfully to what was said.`

var speechSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"transcript": {Type: genai.TypeString},
		"response":   {Type: genai.TypeString},
	},
	Required: []string{"transcript", "response"},
}

// TranscribeAudio sends raw audio to Gemini and returns transcript plus reply.
func (s *DefaultAssistantService) TranscribeAudio(ctx context.Context, audio []byte, mimeType, language string) (*models.SpeechResult, error) {
	prompt := fmt.Sprintf("Transcribe this audio (language: %s) and respond to it.", language)
	raw, err := s.Gen.GenerateJSON(ctx, speechPersona, speechSchema,
		genai.Blob{MIMEType: mimeType, Data: audio},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("speech analysis failed: %w", err)
	}

	var result models.SpeechResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("speech output unparsable: %w", err)
	}
	return &result, nil
}

const realtimePersona = `You are a live assistant in an accessibility community chat room.
Keep replies short, friendly and practical.`

// RealtimeChat answers a live room message, replaying the room's recent
// turns from the history store as context.
func (s *DefaultAssistantService) RealtimeChat(ctx context.Context, message, chatContext, userID, roomID string) (string, error) {
	persona := realtimePersona
	if chatContext != "" {
		persona += "\n\nRoom context: " + chatContext
	}

	var history []models.ConversationTurn
	if s.History != nil && roomID != "" {
		turns, err := s.History.Recent(ctx, roomID, HistoryWindow)
		if err != nil {
			s.Logger.Debug("room history unavailable", zap.String("roomId", roomID), zap.Error(err))
		} else {
			history = turns
		}
	}

	text, err := s.Gen.GenerateText(ctx, persona, history, message)
	if err != nil {
		return "", fmt.Errorf("realtime chat failed: %w", err)
	}
	if text == "" {
		text = emptyReplyFallback
	}

	if s.History != nil && roomID != "" {
		_ = s.History.Append(ctx, roomID, models.ConversationTurn{Role: "user", Content: message})
		_ = s.History.Append(ctx, roomID, models.ConversationTurn{Role: "assistant", Content: text})
	}
	return text, nil
}

const listingPersona = `You are helping creators on an accessible marketplace platform.
Generate attractive, accessible descriptions that highlight the creative work's unique qualities.
Also suggest relevant tags for categorization.`

var listingSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"description": {Type: genai.TypeString},
		"tags":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"description", "tags"},
}

// GenerateListingDescription writes marketplace copy for a titled work.
func (s *DefaultAssistantService) GenerateListingDescription(ctx context.Context, title, imageAnalysis string) (*models.ListingCopy, error) {
	var prompt string
	if imageAnalysis != "" {
		prompt = fmt.Sprintf("Based on this artwork titled %q and the following image analysis: %q, generate a compelling marketplace description and relevant tags.", title, imageAnalysis)
	} else {
		prompt = fmt.Sprintf("Generate a compelling marketplace description and relevant tags for an artwork titled %q.", title)
	}

	raw, err := s.Gen.GenerateJSON(ctx, listingPersona, listingSchema, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("description generation failed: %w", err)
	}

	var copy models.ListingCopy
	if err := json.Unmarshal(raw, &copy); err != nil {
		return nil, fmt.Errorf("listing output unparsable: %w", err)
	}
	return &copy, nil
}

// SimplifyContent rewrites educational content for the given level. It returns
// the original content unchanged when generation fails.
func (s *DefaultAssistantService) SimplifyContent(ctx context.Context, content, level string) string {
	prompt := fmt.Sprintf(`Simplify the following educational content for a %s level audience.
Make it accessible and easy to understand while maintaining accuracy.

Content: %s`, level, content)

	text, err := s.Gen.GenerateText(ctx, "", nil, prompt)
	if err != nil || text == "" {
		s.Logger.Warn("content simplification failed, returning original", zap.Error(err))
		return content
	}
	return text
}

// fetchDocument downloads a document, capped at maxDocumentBytes.
func (s *DefaultAssistantService) fetchDocument(ctx context.Context, documentURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("invalid document URL: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("document fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/pdf"
	}
	return data, mimeType, nil
}
