package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ImageGenerationModel is the Gemini model used for image generation.
const ImageGenerationModel = "gemini-2.0-flash-preview-image-generation"

type geminiPart struct {
	Text       string `json:"text,omitempty"`
	InlineData *struct {
		MimeType string `json:"mimeType"`
		Data     string `json:"data"`
	} `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiChatRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  *struct {
		ResponseModalities []string `json:"responseModalities,omitempty"`
	} `json:"generationConfig,omitempty"`
}

type geminiChatResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		TotalTokenCount int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

func (c *Client) chatGemini(ctx context.Context, modelID string, messages []Message) (*Reply, error) {
	if c.cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%s: %w", modelID, ErrNotConfigured)
	}

	system, chatMessages := splitSystemMessage(messages)

	reqBody := geminiChatRequest{}
	for _, m := range chatMessages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		reqBody.Contents = append(reqBody.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}
	if system != "" {
		reqBody.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: system}},
		}
	}

	parsed, err := c.callGemini(ctx, modelID, &reqBody)
	if err != nil {
		return nil, err
	}

	content := ""
	if len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
		content = parsed.Candidates[0].Content.Parts[0].Text
	}

	return &Reply{
		Content:    content,
		Model:      modelID,
		TokensUsed: parsed.UsageMetadata.TotalTokenCount,
	}, nil
}

// GenerateImage asks Gemini's image preview model for an image and returns
// it as a base64 data URL, or an empty string when no image came back.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.cfg.GeminiAPIKey == "" {
		return "", fmt.Errorf("%s: %w", ImageGenerationModel, ErrNotConfigured)
	}

	reqBody := geminiChatRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &struct {
			ResponseModalities []string `json:"responseModalities,omitempty"`
		}{ResponseModalities: []string{"TEXT", "IMAGE"}},
	}

	parsed, err := c.callGemini(ctx, ImageGenerationModel, &reqBody)
	if err != nil {
		return "", err
	}

	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mime := part.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data), nil
			}
		}
	}

	return "", nil
}

func (c *Client) callGemini(ctx context.Context, modelID string, reqBody *geminiChatRequest) (*geminiChatResponse, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.geminiBaseURL, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.GeminiAPIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerStatusError("gemini", resp.StatusCode, payload)
	}

	var parsed geminiChatResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	return &parsed, nil
}
