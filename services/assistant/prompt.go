package assistant

import (
	"fmt"
	"strings"

	"inclusivehub/models"

	genai "github.com/google/generative-ai-go/genai"
)

// AssistantPersona is the fixed behavioral framing prepended to every chat call.
const AssistantPersona = `You are an AI accessibility assistant for InclusiveHub, a platform dedicated to empowering individuals with diverse disabilities.
Your role is to:
- Help users find accessible places (hospitals, restaurants, public spaces)
- Provide guidance on accessibility features and assistive technology
- Offer encouragement and support for navigating daily challenges
- Answer questions about disability rights and resources
- Be respectful, patient, and encouraging in all interactions`

const personaClosing = `Be conversational, empathetic, and practical in your responses.`

const locationEmphasisBlock = `IMPORTANT: This is a location-based query. When responding:
- Focus on accessible venues and facilities
- Mention specific accessibility features (wheelchair access, accessible parking, etc.)
- Provide practical advice for navigation
- Be encouraging and supportive about accessing these places
- If you can identify what type of place they're looking for (hospitals, restaurants, etc.), mention it clearly`

// HistoryWindow is the number of recent turns replayed as model context.
const HistoryWindow = 10

// PromptSpec describes how the system instruction should be assembled for a
// single request. Assembly is deterministic and side-effect free.
type PromptSpec struct {
	Persona           string
	UserLocation      *models.GeoPoint
	EmphasizeLocation bool
}

// SystemInstruction renders the persona plus the optional location blocks.
func (p PromptSpec) SystemInstruction() string {
	blocks := []string{p.Persona}

	if p.UserLocation != nil {
		blocks = append(blocks, fmt.Sprintf(
			"The user's current location is: Latitude %v, Longitude %v",
			p.UserLocation.Lat, p.UserLocation.Lng))
	}
	if p.EmphasizeLocation {
		blocks = append(blocks, locationEmphasisBlock)
	}
	blocks = append(blocks, personaClosing)

	return strings.Join(blocks, "\n\n")
}

// RecentTurns returns the last n turns of the conversation.
func RecentTurns(history []models.ConversationTurn, n int) []models.ConversationTurn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// HistoryContents maps conversation turns into the Gemini two-role vocabulary.
func HistoryContents(history []models.ConversationTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := "model"
		if turn.Role == "user" {
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}
	return contents
}
