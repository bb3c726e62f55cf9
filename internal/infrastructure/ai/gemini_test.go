package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// withTestServer routes all client traffic to a local handler.
func withTestServer(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prev := GeminiAPIURL()
	SetGeminiAPIURL(srv.URL)
	t.Cleanup(func() { SetGeminiAPIURL(prev) })

	return NewGeminiClient("test-key", "gemini-2.5-flash", "gemini-2.5-flash-image", discardLogger)
}

func textResponse(text string) []byte {
	data, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return data
}

func TestRankConsultantsParsesIDs(t *testing.T) {
	client := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Fatalf("missing api key header")
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		prompt := req.Contents[0].Parts[0].Text
		if !strings.Contains(prompt, "Microsite") || !strings.Contains(prompt, "cons1") {
			t.Fatalf("prompt missing project or consultant context: %s", prompt)
		}

		w.Write(textResponse(`["cons1","cons3"]`))
	})

	project := domain.Project{Title: "Microsite", RequiredSkills: []string{"React"}}
	profiles := []domain.ConsultantProfile{{UserID: "cons1", Skills: []string{"React"}}}

	ids, err := client.RankConsultants(context.Background(), project, profiles)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(ids) != 2 || ids[0] != "cons1" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestRefineDescriptionParsesPayload(t *testing.T) {
	client := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(textResponse(`{"refinedDescription":"A sharper pitch.","extractedSkills":["Go","Redis"]}`))
	})

	refined, err := client.RefineDescription(context.Background(), "make it good")
	if err != nil {
		t.Fatalf("refine: %v", err)
	}
	if refined.Refined != "A sharper pitch." || len(refined.Skills) != 2 {
		t.Fatalf("unexpected result: %+v", refined)
	}
}

func TestSynthesizeAvatarBuildsDataURI(t *testing.T) {
	client := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash-image") {
			t.Fatalf("image call must hit the image model, got %s", r.URL.Path)
		}
		data, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"inlineData": map[string]any{"mimeType": "image/png", "data": "aGVsbG8="}},
				}}},
			},
		})
		w.Write(data)
	})

	uri, err := client.SynthesizeAvatar(context.Background(), "minimalist")
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if uri != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("unexpected data uri: %s", uri)
	}
}

func TestSynthesizeAvatarNoImage(t *testing.T) {
	client := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(textResponse("no image here"))
	})

	if _, err := client.SynthesizeAvatar(context.Background(), "minimalist"); err == nil {
		t.Fatalf("expected error when the response has no inline image")
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	client := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.RefineDescription(context.Background(), "text")
	if err == nil || !strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		t.Fatalf("expected structured API error, got %v", err)
	}
}
