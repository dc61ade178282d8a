package assistant

import (
	"context"
	"errors"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

func TestSystemContent(t *testing.T) {
	if got := systemContent(""); got != nil {
		t.Fatalf("expected nil content for empty instruction, got %+v", got)
	}

	got := systemContent("You are a helpful assistant.")
	if got == nil {
		t.Fatal("expected non-nil content")
	}
	if len(got.Parts) != 1 {
		t.Fatalf("expected exactly one part, got %d", len(got.Parts))
	}
	text, ok := got.Parts[0].(genai.Text)
	if !ok {
		t.Fatalf("expected a text part, got %T", got.Parts[0])
	}
	if string(text) != "You are a helpful assistant." {
		t.Errorf("unexpected instruction text: %q", text)
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"rate limited", &googleapi.Error{Code: 429}, true},
		{"server error", &googleapi.Error{Code: 503}, true},
		{"bad request", &googleapi.Error{Code: 400}, false},
		{"unauthorized", &googleapi.Error{Code: 401}, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isTransient(tc.err); got != tc.want {
				t.Errorf("isTransient(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestFlattenText(t *testing.T) {
	if got := flattenText(nil); got != "" {
		t.Errorf("expected empty string for nil response, got %q", got)
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")}}},
		},
	}
	if got := flattenText(resp); got != "Hello, world" {
		t.Errorf("expected concatenated parts, got %q", got)
	}
}
