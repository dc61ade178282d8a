package assistant

import "testing"

func TestIsLocationQuery(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      bool
	}{
		{"category near me", "find hospitals near me", true},
		{"generic nearby", "any good cafes nearby?", true},
		{"close by", "is there a pharmacy close by", true},
		{"around here", "what restaurants are around here", true},
		{"directions", "directions to anna university please", true},
		{"category then near", "accessible restaurants near the station", true},
		{"x near y", "wheelchair repair shops near tambaram", true},
		{"plain question", "what is accessibility", false},
		{"mentions place without near", "I visited the hospital yesterday", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"bare near", "near", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLocationQuery(tt.utterance); got != tt.want {
				t.Errorf("IsLocationQuery(%q) = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestIsLocationQueryIsCaseInsensitive(t *testing.T) {
	if !IsLocationQuery("FIND HOSPITALS NEAR ME") {
		t.Error("expected uppercase utterance to classify as location query")
	}
}
