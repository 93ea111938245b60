package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// StorybookDetails carries the event facts fed into the storybook prompt.
type StorybookDetails struct {
	EventName   string `json:"eventName"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Anecdotes   string `json:"anecdotes"`
}

// SocialContent is the structured output of a social-media generation call.
type SocialContent struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// ContentGeneratorInterface is the AI collaborator boundary. Services depend
// on this interface; handlers never talk to Gemini directly.
type ContentGeneratorInterface interface {
	GenerateStorybook(ctx context.Context, details StorybookDetails, tone string) (string, error)
	GenerateEventTimeline(ctx context.Context, eventType, eventDate, venue string) (string, error)
	GenerateSocialMediaContent(ctx context.Context, eventName, description, tone string) (SocialContent, error)
	GenerateVendorRecommendations(ctx context.Context, budget float64, location, eventType, preferences string) (string, error)
}

type GeminiContentGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiContentGenerator(apiKey, model string) (ContentGeneratorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiContentGenerator{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiContentGenerator) generateText(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (g *GeminiContentGenerator) GenerateStorybook(ctx context.Context, details StorybookDetails, tone string) (string, error) {
	if tone == "" {
		tone = "romantic"
	}

	prompt := fmt.Sprintf(`Create a beautiful %s storybook narrative for an event called "%s" on %s.`,
		tone, details.EventName, details.Date)
	if details.Description != "" {
		prompt += fmt.Sprintf("\n\nEvent details: %s", details.Description)
	}
	if details.Anecdotes != "" {
		prompt += fmt.Sprintf("\n\nSpecial moments and anecdotes: %s", details.Anecdotes)
	}
	prompt += fmt.Sprintf(`

Please write a heartwarming %s story in 3-5 paragraphs that:
1. Has an engaging beginning that sets the scene
2. Describes the special moments and emotions
3. Has a memorable conclusion

Write it in a narrative style suitable for a storybook.`, tone)

	return g.generateText(ctx, prompt)
}

func (g *GeminiContentGenerator) GenerateEventTimeline(ctx context.Context, eventType, eventDate, venue string) (string, error) {
	prompt := fmt.Sprintf(`Create a detailed planning timeline for a %s event on %s at %s.
List the key milestones from today until the event date, each with a suggested
completion date and a one-line description. Order them chronologically.`,
		eventType, eventDate, venue)

	return g.generateText(ctx, prompt)
}

func (g *GeminiContentGenerator) GenerateSocialMediaContent(ctx context.Context, eventName, description, tone string) (SocialContent, error) {
	if tone == "" {
		tone = "fun"
	}

	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)

	prompt := fmt.Sprintf(`Write a %s social media post for the event "%s".
%s

Respond as JSON with this exact shape:
{"caption": "string", "hashtags": ["#tag1", "#tag2"]}`, tone, eventName, description)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return SocialContent{}, fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return SocialContent{}, fmt.Errorf("gemini returned no candidates")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	var content SocialContent
	if err := json.Unmarshal([]byte(raw.String()), &content); err != nil {
		return SocialContent{}, fmt.Errorf("gemini returned malformed JSON: %w", err)
	}
	return content, nil
}

func (g *GeminiContentGenerator) GenerateVendorRecommendations(ctx context.Context, budget float64, location, eventType, preferences string) (string, error) {
	prompt := fmt.Sprintf(`Recommend vendor categories and booking tips for a %s event.
Budget: %.2f
Location: %s
Preferences: %s

Give 3-5 short, practical recommendations.`, eventType, budget, location, preferences)

	return g.generateText(ctx, prompt)
}
