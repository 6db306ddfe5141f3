package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iammuttaqi/gemini-nano-banana/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client is a thin facade over the Gemini generateContent REST endpoint so
// that the editing layer can focus on translating domain requests to API
// calls. It carries exactly one credential, read once at startup, and holds
// no mutable state, so concurrent use requires no coordination.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

// Content is one conversational turn sent to or returned by the model.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts,omitempty"`
}

// Part is the tagged union the Gemini wire format uses for message content:
// exactly one of Text or InlineData is set.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded binary content plus its media type.
type InlineData struct {
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

// GenerationConfig narrows what the model may return. ResponseModalities must
// name every content kind the caller wants back; the API documents that
// requesting a single modality from an image model is rejected or silently
// dropped, so callers always send both IMAGE and TEXT.
type GenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

// Candidate is one alternative completion in a generateContent response.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// GenerateContentResponse is the decoded generateContent response body.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type generateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Status  string `json:"status,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// APIError is a non-2xx answer from the Gemini API with whatever detail the
// error body carried. It is the raw material for failure classification; its
// message is diagnostic only and must never reach end users verbatim.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gemini status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gemini status %d", e.StatusCode)
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with a generous timeout will be created.
// An empty API key is refused here as well as at config load, so the client
// can never be built in a degraded keyless mode.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := opts.Model
	if model == "" {
		model = infra.DefaultGeminiModel
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Model returns the configured Gemini model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent issues exactly one generateContent call and decodes the
// response. Transport failures and non-2xx statuses are returned as-is for
// the caller to classify; no retries happen here.
func (c *Client) GenerateContent(ctx context.Context, contents []Content, cfg *GenerationConfig) (*GenerateContentResponse, error) {
	payload := generateContentRequest{
		Contents:         contents,
		GenerationConfig: cfg,
	}

	var response GenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.model))
	if err := c.invoke(ctx, path, payload, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("candidates", len(response.Candidates)).
		Msg("genai: generateContent round trip complete")

	return &response, nil
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	endpoint := c.baseURL + path
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var decoded apiErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil && decoded.Error.Message != "" {
			apiErr.Status = decoded.Error.Status
			apiErr.Message = decoded.Error.Message
			return apiErr
		}
		data, _ := io.ReadAll(resp.Body)
		apiErr.Message = strings.TrimSpace(string(data))
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}
