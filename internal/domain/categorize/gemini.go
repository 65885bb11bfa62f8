package categorize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClassifier delegates classification to a Gemini model. It satisfies
// the same Classifier contract as the rule engine so the extraction service
// never knows which backend is wired in.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// NewGeminiClassifier builds a classifier over the Gemini API. The API key
// may be empty, in which case the client resolves credentials from the
// environment.
func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClassifier{client: client, model: model}, nil
}

// Classify asks the model for the most likely category. The model is
// instructed to answer with exactly one category name from the set and to
// append UNSURE when it is not confident; that marker maps onto the same
// needs-review flag the rule engine produces.
func (c *GeminiClassifier) Classify(ctx context.Context, description, occupation string, categories []string) (Result, error) {
	if occupation == "" {
		occupation = "unknown"
	}

	prompt := "You are a financial expense categorizer with knowledge of Canadian tax principles, " +
		"finances, and business expenditures.\n" +
		"The user's occupation is: " + occupation + ".\n" +
		"Categorize expenses into exactly one of: " + strings.Join(categories, ", ") + ".\n" +
		"Answer with the category name only, nothing else.\n" +
		"If you are not confident, append the word UNSURE after the category name.\n\n" +
		"Categorize this expense: " + description

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return Result{}, fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		if len(categories) > 0 {
			return Result{Category: categories[0], Unsure: true}, nil
		}
		return Result{Category: Uncategorized, Unsure: true}, nil
	}

	unsure := strings.Contains(text, "UNSURE")
	category := strings.TrimSpace(strings.ReplaceAll(text, "UNSURE", ""))

	// Snap the answer back onto the caller's set so casing drift never
	// leaks out. A label outside the set degrades to the unsure fallback,
	// never to an error.
	for _, v := range categories {
		if strings.EqualFold(v, category) {
			return Result{Category: v, Unsure: unsure}, nil
		}
	}
	if strings.EqualFold(category, Uncategorized) {
		return Result{Category: Uncategorized, Unsure: unsure}, nil
	}
	if len(categories) > 0 {
		return Result{Category: categories[0], Unsure: true}, nil
	}
	return Result{Category: Uncategorized, Unsure: true}, nil
}
