package editor

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iammuttaqi/gemini-nano-banana/internal/infra"
	"github.com/iammuttaqi/gemini-nano-banana/internal/providers/genai"
)

// EditRequest pairs an encoded image with a natural-language editing
// instruction. A request is built once per edit and never reused.
type EditRequest struct {
	Image       EncodedImage
	Instruction string
}

// EditResult is the normalized outcome of a successful edit. At least one of
// Image and Text is set; Image is a fully-formed displayable data URL.
type EditResult struct {
	Image string `json:"image,omitempty"`
	Text  string `json:"text,omitempty"`
}

// ContentGenerator is the slice of the Gemini client the editor depends on.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, contents []genai.Content, cfg *genai.GenerationConfig) (*genai.GenerateContentResponse, error)
	Model() string
}

// Editor performs exactly one remote call per edit and reduces the
// heterogeneous response to a single EditResult or a classified Failure.
// It is stateless and safe to invoke from concurrent callers.
type Editor struct {
	client  ContentGenerator
	timeout time.Duration
	logger  *infra.Logger
}

var errNoContent = errors.New("response contained no image or text part")

// New constructs an Editor. A zero timeout disables the per-edit deadline and
// leaves timeouts entirely to the transport client.
func New(client ContentGenerator, timeout time.Duration, logger *infra.Logger) (*Editor, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Editor{client: client, timeout: timeout, logger: logger}, nil
}

// Edit issues one generateContent call carrying the image and instruction,
// always requesting both IMAGE and TEXT modalities, and folds the returned
// parts last-wins per tag. There are no retries; repeated invocation after a
// failure is the caller's call.
func (e *Editor) Edit(ctx context.Context, req EditRequest) (*EditResult, error) {
	if strings.TrimSpace(req.Instruction) == "" {
		return nil, newFailure(FailureValidation, MsgInstructionRequired, nil)
	}
	if req.Image.Data == "" {
		return nil, newFailure(FailureValidation, MsgImageRequired, nil)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	contents := []genai.Content{{
		Role: "user",
		Parts: []genai.Part{
			{InlineData: &genai.InlineData{MIMEType: req.Image.MIMEType, Data: req.Image.Data}},
			{Text: req.Instruction},
		},
	}}

	resp, err := e.client.GenerateContent(ctx, contents, &genai.GenerationConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		failure := classify(err)
		e.logger.Error().
			Err(err).
			Str("model", e.client.Model()).
			Str("kind", string(failure.Kind)).
			Msg("editor: edit request failed")
		return nil, failure
	}

	result, err := e.collect(resp)
	if err != nil {
		failure := classify(err)
		e.logger.Error().
			Err(err).
			Str("model", e.client.Model()).
			Str("kind", string(failure.Kind)).
			Msg("editor: unusable response")
		return nil, failure
	}

	e.logger.Debug().
		Str("model", e.client.Model()).
		Bool("has_image", result.Image != "").
		Bool("has_text", result.Text != "").
		Msg("editor: edit complete")

	return result, nil
}

// collect folds over every part of every candidate, keeping the last
// inline-data part as the image and the last non-empty text part as the
// descriptive text. Last wins; earlier parts are dropped, never merged. A
// response with neither is a protocol violation, not an empty success.
func (e *Editor) collect(resp *genai.GenerateContentResponse) (*EditResult, error) {
	var image *genai.InlineData
	var text string

	for _, candidate := range resp.Candidates {
		for i := range candidate.Content.Parts {
			part := &candidate.Content.Parts[i]
			if part.InlineData != nil && part.InlineData.Data != "" {
				image = part.InlineData
			}
			if strings.TrimSpace(part.Text) != "" {
				text = part.Text
			}
		}
	}

	if image == nil && text == "" {
		return nil, newFailure(FailureProtocol, MsgTryAgain, errNoContent)
	}

	result := &EditResult{Text: text}
	if image != nil {
		dataURL, err := toDataURL(image)
		if err != nil {
			return nil, newFailure(FailureProtocol, MsgTryAgain, err)
		}
		result.Image = dataURL
	}
	return result, nil
}

// toDataURL turns an inline part into a displayable data URL. The payload is
// decoded and re-encoded so a malformed body surfaces here instead of in the
// client's renderer.
func toDataURL(blob *genai.InlineData) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob.Data)
	if err != nil {
		return "", fmt.Errorf("decode inline data: %w", err)
	}
	mimeType := blob.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
