package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inclusivehub/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// stubGenerator satisfies Generator with canned output, recording what it
// was asked for.
type stubGenerator struct {
	text    string
	textErr error
	json    []byte
	jsonErr error

	gotSystem  string
	gotMessage string
	gotHistory []models.ConversationTurn
	gotParts   []genai.Part
}

func (g *stubGenerator) GenerateText(ctx context.Context, systemInstruction string, history []models.ConversationTurn, message string) (string, error) {
	g.gotSystem = systemInstruction
	g.gotHistory = history
	g.gotMessage = message
	return g.text, g.textErr
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, systemInstruction string, schema *genai.Schema, parts ...genai.Part) ([]byte, error) {
	g.gotSystem = systemInstruction
	g.gotParts = parts
	return g.json, g.jsonErr
}

func newTestService(gen *stubGenerator) *DefaultAssistantService {
	return &DefaultAssistantService{
		Gen:       gen,
		Gazetteer: NewStaticGazetteer(),
		Logger:    zap.NewNop(),
	}
}

func TestChatLocationQueryWithGPS(t *testing.T) {
	gen := &stubGenerator{text: "Here are some hospitals."}
	svc := newTestService(gen)

	loc := &models.GeoPoint{Lat: 12.9915, Lng: 80.2337}
	result, err := svc.Chat(context.Background(), models.ChatRequest{
		Message:      "find hospitals near me",
		UserLocation: loc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MapData == nil {
		t.Fatal("expected a map payload")
	}
	if result.MapData.Query != "hospitals" {
		t.Errorf("query = %q, want %q", result.MapData.Query, "hospitals")
	}
	if result.MapData.Location != *loc {
		t.Errorf("location = %+v, want device GPS %+v", result.MapData.Location, *loc)
	}
	if !strings.HasSuffix(result.Response, MapNotice) {
		t.Error("response must carry the map notice")
	}
	if !strings.Contains(gen.gotSystem, "location-based query") {
		t.Error("system instruction must carry the location emphasis block")
	}
}

func TestChatLocationQueryResolvesLandmark(t *testing.T) {
	gen := &stubGenerator{text: "Sure."}
	svc := newTestService(gen)

	result, err := svc.Chat(context.Background(), models.ChatRequest{
		Message: "hospitals near vel tech avadi college",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MapData == nil {
		t.Fatal("expected a map payload")
	}
	want := models.GeoPoint{Lat: 13.1106, Lng: 80.1026}
	if result.MapData.Location != want {
		t.Errorf("location = %+v, want gazetteer hit %+v", result.MapData.Location, want)
	}
}

func TestChatLocationQueryFallsBackToDefaultRegion(t *testing.T) {
	gen := &stubGenerator{text: "Sure."}
	svc := newTestService(gen)

	// No GPS and the "near me" mention resolves nowhere in the gazetteer.
	result, err := svc.Chat(context.Background(), models.ChatRequest{
		Message: "find pharmacies near me",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MapData == nil {
		t.Fatal("expected a map payload")
	}
	if result.MapData.Location != DefaultRegion {
		t.Errorf("location = %+v, want default region %+v", result.MapData.Location, DefaultRegion)
	}
}

func TestChatNonLocationQuery(t *testing.T) {
	gen := &stubGenerator{text: "Accessibility means equitable access."}
	svc := newTestService(gen)

	result, err := svc.Chat(context.Background(), models.ChatRequest{
		Message: "what is accessibility",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MapData != nil {
		t.Error("map payload must be absent for non-location chat")
	}
	if result.Response != "Accessibility means equitable access." {
		t.Errorf("response = %q", result.Response)
	}
	if strings.Contains(gen.gotSystem, "location-based query") {
		t.Error("location emphasis must not leak into plain chat")
	}
}

func TestChatClientFlagForcesLocationHandling(t *testing.T) {
	gen := &stubGenerator{text: "OK."}
	svc := newTestService(gen)

	loc := &models.GeoPoint{Lat: 13.0, Lng: 80.0}
	result, err := svc.Chat(context.Background(), models.ChatRequest{
		Message:         "anything open right now?",
		UserLocation:    loc,
		IsLocationQuery: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MapData == nil {
		t.Fatal("client flag must force map handling")
	}
}

func TestChatGenerationFailureReturnsApology(t *testing.T) {
	gen := &stubGenerator{textErr: errors.New("quota exceeded")}
	svc := newTestService(gen)

	result, err := svc.Chat(context.Background(), models.ChatRequest{
		Message: "find hospitals near me",
	})
	if err == nil {
		t.Fatal("expected an error signal for the handler to log")
	}
	if result.Response != ApologyReply {
		t.Errorf("response = %q, want apology", result.Response)
	}
	if result.MapData != nil {
		t.Error("no map payload on failure")
	}
}

func TestChatEmptyModelOutputGetsFallbackText(t *testing.T) {
	gen := &stubGenerator{text: ""}
	svc := newTestService(gen)

	result, err := svc.Chat(context.Background(), models.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Response != emptyReplyFallback {
		t.Errorf("response = %q, want fallback", result.Response)
	}
}

func TestChatTrimsHistoryWindow(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	svc := newTestService(gen)

	history := make([]models.ConversationTurn, 25)
	for i := range history {
		history[i] = models.ConversationTurn{Role: "user", Content: "turn"}
	}
	if _, err := svc.Chat(context.Background(), models.ChatRequest{
		Message:             "hello",
		ConversationHistory: history,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen.gotHistory) != HistoryWindow {
		t.Errorf("history passed to generator = %d turns, want %d", len(gen.gotHistory), HistoryWindow)
	}
}

func TestProcessVoiceCommand(t *testing.T) {
	t.Run("structured output", func(t *testing.T) {
		gen := &stubGenerator{json: []byte(`{"action":"search_places","response":"Searching","data":{"type":"hospital","features":["wheelchair"]}}`)}
		svc := newTestService(gen)

		result, err := svc.ProcessVoiceCommand(context.Background(), "find hospitals near me")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Action != "search_places" {
			t.Errorf("action = %q", result.Action)
		}
		if result.Data == nil || result.Data.Type != "hospital" {
			t.Errorf("data = %+v", result.Data)
		}
	})

	t.Run("unparsable output degrades to general chat", func(t *testing.T) {
		gen := &stubGenerator{json: []byte(`not json`)}
		svc := newTestService(gen)

		result, err := svc.ProcessVoiceCommand(context.Background(), "mumble")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Action != "general_chat" {
			t.Errorf("action = %q, want general_chat fallback", result.Action)
		}
	})

	t.Run("generator failure propagates", func(t *testing.T) {
		gen := &stubGenerator{jsonErr: errors.New("boom")}
		svc := newTestService(gen)

		if _, err := svc.ProcessVoiceCommand(context.Background(), "hi"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestAnalyzeVision(t *testing.T) {
	const tinyImage = "aGVsbG8=" // any valid base64 payload

	t.Run("parses structured analysis", func(t *testing.T) {
		gen := &stubGenerator{json: []byte(`{"description":"An entrance ramp","accessibility":["ramp"],"safety":[],"confidence":0.9}`)}
		svc := newTestService(gen)

		analysis, err := svc.AnalyzeVision(context.Background(), tinyImage, "navigation")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if analysis.Description != "An entrance ramp" {
			t.Errorf("description = %q", analysis.Description)
		}
		if len(gen.gotParts) != 2 {
			t.Fatalf("expected image blob plus text prompt, got %d parts", len(gen.gotParts))
		}
		if _, ok := gen.gotParts[0].(genai.Blob); !ok {
			t.Error("first part must be the image blob")
		}
	})

	t.Run("unparsable output degrades to placeholder", func(t *testing.T) {
		gen := &stubGenerator{json: []byte(`garbage`)}
		svc := newTestService(gen)

		analysis, err := svc.AnalyzeVision(context.Background(), tinyImage, "objects")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if analysis.Description == "" {
			t.Error("placeholder description must not be empty")
		}
		if analysis.Confidence != 0 {
			t.Errorf("placeholder confidence = %v, want 0", analysis.Confidence)
		}
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		svc := newTestService(&stubGenerator{})
		if _, err := svc.AnalyzeVision(context.Background(), "!!!not base64!!!", "objects"); err == nil {
			t.Fatal("expected a decode error")
		}
	})
}

func TestAnalyzeAccessibilityImageFallback(t *testing.T) {
	gen := &stubGenerator{json: []byte(`nope`)}
	svc := newTestService(gen)

	analysis, err := svc.AnalyzeAccessibilityImage(context.Background(), "aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Features == nil {
		t.Error("fallback features must be an empty slice, not nil")
	}
	if analysis.Description == "" {
		t.Error("fallback description must not be empty")
	}
}

func TestGenerateListingDescription(t *testing.T) {
	gen := &stubGenerator{json: []byte(`{"description":"A vivid hand-painted mug.","tags":["ceramics","handmade"]}`)}
	svc := newTestService(gen)

	listing, err := svc.GenerateListingDescription(context.Background(), "Sunrise Mug", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listing.Description == "" || len(listing.Tags) != 2 {
		t.Errorf("listing = %+v", listing)
	}
}

func TestSimplifyContent(t *testing.T) {
	t.Run("returns simplified text", func(t *testing.T) {
		gen := &stubGenerator{text: "Short version."}
		svc := newTestService(gen)

		if got := svc.SimplifyContent(context.Background(), "A long, dense explanation.", "beginner"); got != "Short version." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("failure returns original content untouched", func(t *testing.T) {
		gen := &stubGenerator{textErr: errors.New("unavailable")}
		svc := newTestService(gen)

		original := "A long, dense explanation."
		if got := svc.SimplifyContent(context.Background(), original, "beginner"); got != original {
			t.Errorf("got %q, want original back", got)
		}
	})
}

func TestTranscribeAudio(t *testing.T) {
	gen := &stubGenerator{json: []byte(`{"transcript":"find cafes near me","response":"Here are some cafes."}`)}
	svc := newTestService(gen)

	result, err := svc.TranscribeAudio(context.Background(), []byte{1, 2, 3}, "audio/wav", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Transcript != "find cafes near me" {
		t.Errorf("transcript = %q", result.Transcript)
	}
	if _, ok := gen.gotParts[0].(genai.Blob); !ok {
		t.Error("audio must be sent as a blob part")
	}
}
