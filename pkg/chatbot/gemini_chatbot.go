package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	geminiRoleUser  = "user"
	geminiRoleModel = "model"

	geminiEndpointFmt = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
)

type GeminiChatParts struct {
	Text string `json:"text"`
}

type GeminiChatContent struct {
	Parts []*GeminiChatParts `json:"parts"`
	Role  string             `json:"role,omitempty"`
}

type GeminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type GeminiChatRequest struct {
	Contents          []*GeminiChatContent   `json:"contents"`
	SystemInstruction *GeminiChatContent     `json:"system_instruction,omitempty"`
	SafetySettings    []*GeminiSafetySetting `json:"safetySettings,omitempty"`
}

type GeminiChatCandidate struct {
	Content *GeminiChatContent `json:"content"`
}

type GeminiChatResponse struct {
	Candidates []*GeminiChatCandidate `json:"candidates"`
}

// defaultSafetySettings keeps the companion conservative on sensitive topics.
var defaultSafetySettings = []*GeminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

type GeminiProvider struct {
	apiKey            string
	model             string
	systemInstruction string
	client            *http.Client
}

func NewGeminiProvider(apiKey, model, systemInstruction string, timeout time.Duration) *GeminiProvider {
	return &GeminiProvider{
		apiKey:            apiKey,
		model:             model,
		systemInstruction: systemInstruction,
		client:            &http.Client{Timeout: timeout},
	}
}

func (p *GeminiProvider) Generate(ctx context.Context, turns []Turn) (string, error) {
	return p.generateAt(ctx, fmt.Sprintf(geminiEndpointFmt, p.model), turns)
}

func (p *GeminiProvider) generateAt(ctx context.Context, endpoint string, turns []Turn) (string, error) {
	chatContents := make([]*GeminiChatContent, 0, len(turns))
	for _, turn := range turns {
		role := geminiRoleUser
		if turn.Role == RoleAi {
			role = geminiRoleModel
		}
		chatContents = append(chatContents, &GeminiChatContent{
			Parts: []*GeminiChatParts{{Text: turn.Text}},
			Role:  role,
		})
	}

	payload := GeminiChatRequest{
		Contents:       chatContents,
		SafetySettings: defaultSafetySettings,
	}
	if p.systemInstruction != "" {
		payload.SystemInstruction = &GeminiChatContent{
			Parts: []*GeminiChatParts{{Text: p.systemInstruction}},
		}
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates in response body %s", string(resBody))
	}
	parts := geminiRes.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0].Text, nil
}
