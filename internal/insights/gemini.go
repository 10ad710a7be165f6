package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// annotationTimeout bounds the provider call; a generative endpoint is an
// unbounded-latency dependency otherwise.
const annotationTimeout = 4 * time.Second

// Gemini asks a generative model for a share title, description and category,
// constrained to a JSON object with exactly those keys.
type Gemini struct {
	llm     llms.Model
	timeout time.Duration
}

var _ Annotator = (*Gemini)(nil)

func newGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &Gemini{llm: llm, timeout: annotationTimeout}, nil
}

func (g *Gemini) Annotate(ctx context.Context, meta FileMeta) Insights {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		`Analyze this file metadata and provide a creative share title and a short 1-sentence description for a QR code landing page.
Respond in JSON format with exactly these string keys: "title", "description", "category".
Category must be one word: Document, Image, Media, Code, or Other.
File Name: %s
File Type: %s
File Size: %.2f KB`,
		meta.Name, meta.MimeType, float64(meta.SizeBytes)/1024,
	)

	text, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithJSONMode())
	if err != nil {
		if isRateLimited(err) {
			log.Println("Gemini rate limit hit (429), using default file details")
		} else {
			log.Println("Gemini error:", err)
		}
		return errorFallback(meta)
	}

	parsed, err := parseInsights(text)
	if err != nil {
		log.Println("Gemini returned an unusable response:", err)
		return errorFallback(meta)
	}
	return parsed
}

// parseInsights decodes the model output, tolerating markdown code-fence
// wrapping, and requires all three fields to be non-empty.
func parseInsights(text string) (Insights, error) {
	cleaned := stripCodeFence(text)

	var in Insights
	if err := json.Unmarshal([]byte(cleaned), &in); err != nil {
		return Insights{}, fmt.Errorf("parse annotation: %w", err)
	}
	if in.Title == "" || in.Description == "" || in.Category == "" {
		return Insights{}, fmt.Errorf("annotation missing required fields")
	}
	return in, nil
}

func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "rate limit")
}
