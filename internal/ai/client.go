// Package ai wraps the generative-AI collaborator behind an
// OpenAI-compatible chat-completion endpoint. It is called synchronously
// from the eye-test and chat flows and never touches the store.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// ErrUnavailable covers every collaborator failure: network, malformed
// JSON, missing keys. Call sites surface it as a user-visible error and
// never let it crash the request pipeline.
var ErrUnavailable = errors.New("ai collaborator unavailable")

// ChatFallback is substituted for the reply when the chat call fails.
const ChatFallback = "I'm having trouble connecting right now. Please try again later."

const requestTimeout = 30 * time.Second

const chatSystemInstruction = "You are VisionX AI, a helpful assistant for an Optical Shop ERP. " +
	"You help patients understand eye health, explain test results, and provide information about eyewear. " +
	"Keep responses concise, professional, and empathetic. " +
	"If asked about medical emergencies, advise seeing a doctor immediately."

const diagnosisPrompt = `You are a world-class ophthalmologist and optical expert.
Analyze the provided eye image with extreme precision.

Your task is to provide a comprehensive optical diagnosis and prescription.

REQUIRED FIELDS (Do not return 'N/A', 'None', or '0' if you can provide a clinical estimate):
1. Refractive Power (OD - Right Eye, OS - Left Eye):
   - Spherical (S): Must include sign (+ for hyperopia, - for myopia). e.g., "-2.50", "+1.75".
   - Cylindrical (C): Must include sign. e.g., "-0.75", "+0.25".
   - Axis (A): Degrees from 0 to 180.
2. Clinical Observations:
   - Redness: Level (None, Mild, Moderate, Severe).
   - Dryness: Status (Absent, Mild, Chronic).
   - Clarity: Status of the cornea and lens (Clear, Cloudy, Hazy).
3. Pupillary Distance (PD): Estimate the distance between pupils in mm (e.g., "63mm").
4. Abnormalities: List any detected conditions (e.g., "Slight Conjunctivitis", "Early Cataract signs", "Healthy").
5. Confidence Level: 0-100.
6. Professional Summary: A detailed explanation of the findings and recommended next steps.

Return ONLY a valid JSON object following this schema:
{
  "left_eye": { "spherical": string, "cylindrical": string, "axis": number, "redness": string, "dryness": string, "clarity": string },
  "right_eye": { "spherical": string, "cylindrical": string, "axis": number, "redness": string, "dryness": string, "clarity": string },
  "pd": string,
  "abnormalities": string[],
  "confidence_level": number,
  "summary": string
}`

type EyeReading struct {
	Spherical   string      `json:"spherical"`
	Cylindrical string      `json:"cylindrical"`
	Axis        json.Number `json:"axis"`
	Redness     string      `json:"redness"`
	Dryness     string      `json:"dryness"`
	Clarity     string      `json:"clarity"`
}

// DiagnosisResult is the AI-path shape of EyeTest.Results. It carries no
// "type" discriminator, which is how consumers tell it apart from the
// manual shape.
type DiagnosisResult struct {
	LeftEye         EyeReading  `json:"left_eye"`
	RightEye        EyeReading  `json:"right_eye"`
	PD              string      `json:"pd"`
	Abnormalities   []string    `json:"abnormalities"`
	ConfidenceLevel json.Number `json:"confidence_level"`
	Summary         string      `json:"summary"`
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

type Client struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger.With("component", "ai"),
	}, nil
}

// Diagnose sends the eye image and the fixed instruction prompt, expecting
// a single JSON object back. On any failure nothing is persisted upstream.
func (c *Client) Diagnose(ctx context.Context, imageB64, mimeType string) (*DiagnosisResult, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: diagnosisPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:%s;base64,%s", mimeType, imageB64),
						},
					},
				},
			},
		},
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	content, err := c.complete(ctx, req)
	if err != nil {
		return nil, err
	}

	var result DiagnosisResult
	if err := json.Unmarshal([]byte(stripFences(content)), &result); err != nil {
		c.logger.Error("diagnosis response is not valid JSON", "error", err)
		return nil, fmt.Errorf("%w: malformed diagnosis payload", ErrUnavailable)
	}
	if result.Summary == "" {
		return nil, fmt.Errorf("%w: diagnosis payload missing summary", ErrUnavailable)
	}

	return &result, nil
}

// Chat returns a plain-text assistant reply. The caller substitutes
// ChatFallback when err is non-nil.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	}

	reply, err := c.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return reply, nil
}

// complete runs the request under a bounded timeout with a single retry
// for transient transport failures.
func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil && retryable(ctx, err) {
		c.logger.Warn("ai request failed, retrying once", "error", err)
		resp, err = c.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		c.logger.Error("ai request failed", "elapsed", time.Since(start), "error", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUnavailable)
	}

	c.logger.Info("ai request completed",
		"model", c.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"elapsed", time.Since(start))

	return resp.Choices[0].Message.Content, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		// Client errors won't change on retry.
		return apiErr.HTTPStatusCode >= 500
	}
	return true
}

// stripFences tolerates models that wrap the JSON object in a markdown
// code fence despite the response-format hint.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
