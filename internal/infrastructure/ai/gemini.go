// Package ai implements the generative assistant boundary against the Google
// Gemini REST API. Text features use JSON-mode responses with a declared
// schema; the avatar feature reads the inline image from the first candidate.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// geminiAPIURL is a var to allow test overrides via httptest.
var geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiAPIURL returns the current Gemini API base URL.
// Exposed for use by integration tests via httptest servers.
func GeminiAPIURL() string { return geminiAPIURL }

// SetGeminiAPIURL overrides the Gemini API base URL.
// Intended for use in tests only.
func SetGeminiAPIURL(u string) { geminiAPIURL = u }

// sharedHTTPClient covers slow generative responses, image synthesis included.
var sharedHTTPClient = &http.Client{
	Timeout: 2 * time.Minute,
}

// GeminiClient implements ports.Assistant over the generateContent endpoint.
type GeminiClient struct {
	apiKey     string
	model      string
	imageModel string
	log        zerolog.Logger
}

func NewGeminiClient(apiKey, model, imageModel string, log zerolog.Logger) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, model: model, imageModel: imageModel, log: log}
}

// --- wire types ---

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// RankConsultants asks the model for the ids of the best-matching consultants,
// most suitable first, as a bare JSON string array.
func (c *GeminiClient) RankConsultants(ctx context.Context, project domain.Project, profiles []domain.ConsultantProfile) ([]string, error) {
	var b strings.Builder
	for _, p := range profiles {
		fmt.Fprintf(&b, "ID: %s, Skills: %s, Role: %s, Bio: %s\n", p.UserID, strings.Join(p.Skills, ", "), p.Title, p.Bio)
	}

	prompt := fmt.Sprintf(`I have a project described as follows:
Title: %s
Description: %s
Required Skills: %s

Here is a list of consultants:
%s
Identify the IDs of the top 3 consultants who are best suited for this project based on skills and background.
Return ONLY a JSON array of their IDs (e.g., ["cons1", "cons3"]). Do not explain.`,
		project.Title, project.Description, strings.Join(project.RequiredSkills, ", "), b.String())

	schema := json.RawMessage(`{"type":"ARRAY","items":{"type":"STRING"}}`)
	text, err := c.generateText(ctx, c.model, prompt, schema)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(text), &ids); err != nil {
		return nil, fmt.Errorf("parsing ranking response: %w", err)
	}
	return ids, nil
}

// RefineDescription rewrites the text professionally and extracts skill tags.
func (c *GeminiClient) RefineDescription(ctx context.Context, raw string) (*ports.RefinedDescription, error) {
	prompt := fmt.Sprintf(`Refine the following project description to be more professional and extract key technical skills required.
Description: %q`, raw)

	schema := json.RawMessage(`{"type":"OBJECT","properties":{"refinedDescription":{"type":"STRING"},"extractedSkills":{"type":"ARRAY","items":{"type":"STRING"}}}}`)
	text, err := c.generateText(ctx, c.model, prompt, schema)
	if err != nil {
		return nil, err
	}

	var payload struct {
		RefinedDescription string   `json:"refinedDescription"`
		ExtractedSkills    []string `json:"extractedSkills"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("parsing refinement response: %w", err)
	}
	return &ports.RefinedDescription{Refined: payload.RefinedDescription, Skills: payload.ExtractedSkills}, nil
}

// SynthesizeAvatar generates a headshot for the style prompt and returns it
// as a data URI built from the first inline image part.
func (c *GeminiClient) SynthesizeAvatar(ctx context.Context, stylePrompt string) (string, error) {
	prompt := "Generate a professional, high-quality profile picture (headshot) for a business resume or corporate profile. Style: " + stylePrompt

	resp, err := c.generate(ctx, c.imageModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("gemini: no image in response")
}

// generateText performs a JSON-mode generateContent call and returns the text
// of the first candidate part.
func (c *GeminiClient) generateText(ctx context.Context, model, prompt string, schema json.RawMessage) (string, error) {
	resp, err := c.generate(ctx, model, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty candidates in response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (c *GeminiClient) generate(ctx context.Context, model string, body geminiRequest) (*geminiResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", geminiAPIURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := sharedHTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	const maxBodyBytes = 32 * 1024 * 1024 // image payloads are large
	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBytes, &gr); err != nil {
		return nil, fmt.Errorf("parsing response JSON (HTTP %d, body: %s): %w", resp.StatusCode, truncate(string(respBytes), 200), err)
	}

	if resp.StatusCode != http.StatusOK {
		if gr.Error != nil {
			return nil, fmt.Errorf("gemini: %s: %s", gr.Error.Status, gr.Error.Message)
		}
		return nil, fmt.Errorf("gemini: HTTP %d: %s", resp.StatusCode, truncate(string(respBytes), 200))
	}
	return &gr, nil
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
