package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/noord-hq/noord-backend/models"
)

// chatSystemPrompt restricts the assistant to store analytics questions.
// Enforced server-side on every completion regardless of client history.
const chatSystemPrompt = "You are Noord, an e-commerce analytics assistant. " +
	"Only answer questions about the user's store data, sales performance, " +
	"inventory, customers and marketing. Politely refuse anything else. " +
	"Answer in the user's language and keep responses concise."

var ErrChatNotConfigured = errors.New("chat provider API key not configured")

// CompleteChat runs one assistant completion. Models prefixed "gemini"
// route to Google, everything else to OpenAI.
func CompleteChat(ctx context.Context, req models.ChatRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	if strings.HasPrefix(model, "gemini") {
		return completeGemini(ctx, model, req.Messages)
	}
	return completeOpenAI(ctx, model, req.Messages)
}

func completeOpenAI(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", ErrChatNotConfigured
	}

	payload := map[string]any{
		"model": model,
		"messages": append([]map[string]string{
			{"role": "system", "content": chatSystemPrompt},
		}, toOpenAIMessages(messages)...),
	}

	respBody, err := postJSON(ctx, "https://api.openai.com/v1/chat/completions", payload, map[string]string{
		"Authorization": "Bearer " + apiKey,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to decode OpenAI response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("OpenAI returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func completeGemini(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", ErrChatNotConfigured
	}

	// Gemini uses "user"/"model" roles and a separate system instruction
	contents := make([]map[string]any, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, map[string]any{
			"role":  role,
			"parts": []map[string]string{{"text": m.Content}},
		})
	}

	payload := map[string]any{
		"system_instruction": map[string]any{
			"parts": []map[string]string{{"text": chatSystemPrompt}},
		},
		"contents": contents,
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		model, apiKey,
	)
	respBody, err := postJSON(ctx, endpoint, payload, nil)
	if err != nil {
		return "", err
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("Gemini returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func toOpenAIMessages(messages []models.ChatMessage) []map[string]string {
	out := make([]map[string]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, map[string]string{"role": m.Role, "content": m.Content})
	}
	return out
}

func postJSON(ctx context.Context, endpoint string, payload any, headers map[string]string) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("chat provider error: %s - %s", resp.Status, string(respBody))
	}
	return respBody, nil
}
