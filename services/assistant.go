package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"dressapi/models"
)

// LLMModelName is the Gemini model used for the assistant call.
type LLMModelName int32

const (
	Pro25 LLMModelName = iota
	Flash25
	FlashLite25
	Flash20
)

func (t LLMModelName) String() string {
	switch t {
	case Pro25:
		return "gemini-2.5-pro"
	case Flash25:
		return "gemini-2.5-flash"
	case FlashLite25:
		return "gemini-2.5-flash-lite-preview-06-17"
	case Flash20:
		return "gemini-2.0-flash"
	default:
		return "gemini-2.0-flash"
	}
}

// ErrAssistantUnavailable is the single failure mode surfaced to the user
// when the model call does not produce a reply. Nothing is retried.
var ErrAssistantUnavailable = fmt.Errorf("assistant is unavailable")

const stylistPreamble = `You are an expert in Indian ethnic wear fashion helping customers of an
Indian garment store. Suggest appropriate traditional or modern Indian
garments for the occasion or context the user describes. Be specific about
the exact garment type (Saree, Lehenga, Salwar Kameez, Kurta Pajama,
Sherwani, Dhoti, Nehru Jacket, Indo-Western, Vesti), explain why it fits,
and add styling tips or accessories that complement the outfit. If the
query has typos, answer what the user meant. Keep the response
conversational. Do not include product images or links.`

const criteriaPrompt = `Analyze this Indian garment query and extract search criteria.
Query: %q

Extract these fields if present:
- gender (Men/Women)
- category (one of: Saree, Lehenga, Salwar Kameez, Kurta Pajama, Sherwani, Dhoti, Nehru Jacket, Indo-Western, Vesti)
- occasion (Wedding/Festival/Casual/Formal/Party)
- fabric
- region (North/South/East/West)

Leave a field empty when the query does not mention it. Return JSON only.`

type AssistantProvider interface {
	Reply(ctx context.Context, history []models.ChatTurn, message string) (string, error)
	ExtractCriteria(ctx context.Context, message string) (*models.GarmentFilter, error)
}

// GarmentAssistant issues the outbound Gemini calls.
type GarmentAssistant struct {
	Model LLMModelName
}

func floatPointer(f float32) *float32 {
	return &f
}

func newGenaiClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  os.Getenv("GOOGLE_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	})
}

// Reply sends the running history plus the new message in a single
// GenerateContent call under the stylist preamble and returns the model
// text. Any failure collapses into ErrAssistantUnavailable.
func (a GarmentAssistant) Reply(ctx context.Context, history []models.ChatTurn, message string) (string, error) {
	client, err := newGenaiClient(ctx)
	if err != nil {
		log.Printf("[Assistant] client init failed: %v", err)
		return "", ErrAssistantUnavailable
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	result, err := client.Models.GenerateContent(ctx, a.Model.String(), contents, &genai.GenerateContentConfig{
		CandidateCount:  1,
		MaxOutputTokens: 2048,
		Temperature:     floatPointer(0.7),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: stylistPreamble}},
		},
	})
	if err != nil {
		log.Printf("[Assistant] GenerateContent failed: %v", err)
		return "", ErrAssistantUnavailable
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		log.Printf("[Assistant] prompt blocked: %s %s", result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage)
		return "", ErrAssistantUnavailable
	}
	if result.UsageMetadata != nil {
		log.Printf("[Assistant] tokens in=%d out=%d total=%d",
			result.UsageMetadata.PromptTokenCount,
			result.UsageMetadata.CandidatesTokenCount,
			result.UsageMetadata.TotalTokenCount)
	}
	text := result.Text()
	if text == "" {
		return "", ErrAssistantUnavailable
	}
	return text, nil
}

// ExtractCriteria asks the model for structured search criteria in JSON
// mode. Callers treat a failure as "no criteria", not as a turn error.
func (a GarmentAssistant) ExtractCriteria(ctx context.Context, message string) (*models.GarmentFilter, error) {
	client, err := newGenaiClient(ctx)
	if err != nil {
		return nil, err
	}
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(criteriaPrompt, message), genai.RoleUser),
	}
	result, err := client.Models.GenerateContent(ctx, a.Model.String(), contents, &genai.GenerateContentConfig{
		CandidateCount:   1,
		MaxOutputTokens:  512,
		Temperature:      floatPointer(0.2),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: "object",
			Properties: map[string]*genai.Schema{
				"gender":   {Type: "string"},
				"category": {Type: "string"},
				"occasion": {Type: "string"},
				"fabric":   {Type: "string"},
				"region":   {Type: "string"},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return parseCriteria(result.Text())
}

type criteriaOut struct {
	Gender   string `json:"gender"`
	Category string `json:"category"`
	Occasion string `json:"occasion"`
	Fabric   string `json:"fabric"`
	Region   string `json:"region"`
}

// parseCriteria tolerates code-fenced output from models without JSON mode.
func parseCriteria(text string) (*models.GarmentFilter, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var out criteriaOut
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("malformed criteria payload: %w", err)
	}
	return &models.GarmentFilter{
		Gender:   StrPointer(out.Gender),
		Category: StrPointer(out.Category),
		Occasion: StrPointer(out.Occasion),
		Fabric:   StrPointer(out.Fabric),
		Region:   StrPointer(out.Region),
	}, nil
}
