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

	"quizhub/internal/models"
)

// Generator turns a teacher's free-form request into candidate questions by
// calling an OpenAI-compatible chat-completions endpoint.
type Generator struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

func NewGenerator(baseURL, apiKey, model string) *Generator {
	return &Generator{
		Client:  &http.Client{Timeout: 120 * time.Second},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
	Stream   bool                    `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// generatedQuestion is the strict-JSON contract the model is instructed to
// emit: four option texts and the exact text of the correct one.
type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

const promptTemplate = `Based on the following user request, create a set of multiple-choice questions.
User Request: %q

IMPORTANT: Provide the output in a strict JSON array format. Do not include any text, code block markers, or explanations outside of the raw JSON array.
Each object in the array must have this exact structure:
{
  "question": "The question text",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "correctAnswer": "The exact text of the correct option"
}`

// GenerateQuestions asks the model for questions matching the request and
// reshapes them into the quiz model, marking the option whose text equals
// the declared correct answer. Errors carry the upstream detail for the
// caller to log; handlers expose only a generic message.
func (g *Generator) GenerateQuestions(ctx context.Context, request string) ([]models.Question, error) {
	content, err := g.complete(ctx, fmt.Sprintf(promptTemplate, request))
	if err != nil {
		return nil, err
	}

	raw, err := parseQuestions(content)
	if err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(raw))
	for _, gq := range raw {
		question := models.Question{Text: gq.Question}
		for _, text := range gq.Options {
			question.Options = append(question.Options, models.Option{
				Text:      text,
				IsCorrect: text == gq.CorrectAnswer,
			})
		}
		if question.CorrectOptionIndex() < 0 {
			return nil, fmt.Errorf("generated question %q has no option matching its correct answer", gq.Question)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model: g.Model,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: prompt},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion contained no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// parseQuestions strips any code fences the model wrapped around the JSON
// and decodes the array. An empty array is a failure: generation must never
// silently produce an empty quiz.
func parseQuestions(content string) ([]generatedQuestion, error) {
	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var questions []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse model output as question JSON: %w (raw: %s)", err, content)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}
	return questions, nil
}
