package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

const defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// InlineData carries a binary attachment (base64-encoded) sent
// alongside the prompt text.
type InlineData struct {
	MIMEType string
	Data     string
}

// Client is the completion service boundary: prompt in, text out.
// Implementations must not retry; callers own failure handling.
type Client interface {
	Complete(ctx context.Context, prompt string, attachments ...InlineData) (string, error)
}

type restClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

type textPart struct {
	Text string `json:"text"`
}

type inlineDataPart struct {
	InlineData struct {
		MIMEType string `json:"mime_type"`
		Data     string `json:"data"`
	} `json:"inline_data"`
}

type generateContentRequest struct {
	Contents []struct {
		Parts []interface{} `json:"parts"`
	} `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewClient() (Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	// No client timeout: an accepted request runs the completion call
	// to completion or failure.
	return &restClient{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{},
	}, nil
}

func (c *restClient) Complete(ctx context.Context, prompt string, attachments ...InlineData) (string, error) {
	parts := make([]interface{}, 0, len(attachments)+1)
	parts = append(parts, textPart{Text: prompt})
	for _, attachment := range attachments {
		var part inlineDataPart
		part.InlineData.MIMEType = attachment.MIMEType
		part.InlineData.Data = attachment.Data
		parts = append(parts, part)
	}

	var req generateContentRequest
	req.Contents = make([]struct {
		Parts []interface{} `json:"parts"`
	}, 1)
	req.Contents[0].Parts = parts

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.apiURL+"?key="+c.apiKey, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		message := response.Status
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err == nil && errorResponse.Error.Message != "" {
			message = errorResponse.Error.Message
		}
		return "", &UpstreamError{StatusCode: response.StatusCode, Message: message}
	}

	var result generateContentResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", &UpstreamError{Message: "failed to decode response", Err: err}
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Message: "no completion candidates returned"}
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
