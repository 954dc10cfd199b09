package pipeline

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/strrl/socialgen/internal/ai"
	"github.com/strrl/socialgen/internal/metrics"
	"github.com/strrl/socialgen/internal/tools"
)

const fallbackImageType = "image/jpeg"

// Analyze roasts a personality profile. The answer is returned verbatim.
func (s *Service) Analyze(ctx context.Context, form tools.ProfileForm) (*Result, error) {
	tool, err := s.lookup("analyzer")
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, tool, form.Values())
}

func (s *Service) analyze(ctx context.Context, tool *tools.Tool, values tools.Values) (*Result, error) {
	req := s.request(tool, ai.RoleSmart, 0.8,
		ai.SystemMessage(systemPrompt(tool, defaultSystemPrompt)),
		ai.UserMessage(tool.Build(values, s.now())),
	)

	raw, _, err := s.complete(ctx, tool, req)
	if err != nil {
		return nil, err
	}

	metrics.Generations.WithLabelValues(tool.ID, metrics.ResultText).Inc()
	return &Result{Tool: tool.ID, Format: tools.FormatText, Text: raw}, nil
}

// RoastImage sends a feed screenshot to the vision model. image is a data
// URL, a remote URL, or bare base64. The answer is returned verbatim.
func (s *Service) RoastImage(ctx context.Context, image string) (*Result, error) {
	tool, err := s.lookup("roast")
	if err != nil {
		return nil, err
	}
	return s.roastImage(ctx, tool, image)
}

func (s *Service) roastImage(ctx context.Context, tool *tools.Tool, image string) (*Result, error) {
	url, err := imageURL(image)
	if err != nil {
		return nil, &tools.ValidationError{Tool: tool.ID, Field: "image", Reason: err.Error()}
	}

	req := s.request(tool, ai.RoleVision, 0.7,
		ai.SystemMessage(systemPrompt(tool, defaultSystemPrompt)),
		ai.Message{
			Role: ai.RoleUser,
			Parts: []ai.ContentPart{
				ai.TextPart(tool.Build(tools.NewValues(nil), s.now())),
				ai.ImagePart(url),
			},
		},
	)

	raw, _, err := s.complete(ctx, tool, req)
	if err != nil {
		return nil, err
	}

	metrics.Generations.WithLabelValues(tool.ID, metrics.ResultText).Inc()
	return &Result{Tool: tool.ID, Format: tools.FormatText, Text: raw}, nil
}

type imageError string

func (e imageError) Error() string { return string(e) }

func imageURL(image string) (string, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return "", imageError("is required")
	}
	if strings.HasPrefix(image, "data:") || strings.HasPrefix(image, "https://") || strings.HasPrefix(image, "http://") {
		return image, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(image)
	}
	if err != nil {
		return "", imageError("is not valid base64")
	}

	return "data:" + ImageType(decoded) + ";base64," + image, nil
}

// ImageType sniffs the MIME type of an image payload, defaulting to JPEG.
func ImageType(data []byte) string {
	contentType := http.DetectContentType(data)
	if strings.HasPrefix(contentType, "image/") {
		return contentType
	}
	return fallbackImageType
}
