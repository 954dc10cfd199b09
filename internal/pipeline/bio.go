package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/strrl/socialgen/internal/ai"
	"github.com/strrl/socialgen/internal/metrics"
	"github.com/strrl/socialgen/internal/output"
	"github.com/strrl/socialgen/internal/tools"
)

const defaultBioStyle = "Creative"

func (s *Service) Bios(ctx context.Context, form tools.BioForm) (*Result, error) {
	tool, err := s.lookup("bio")
	if err != nil {
		return nil, err
	}
	return s.bios(ctx, tool, form.Values())
}

func (s *Service) bios(ctx context.Context, tool *tools.Tool, values tools.Values) (*Result, error) {
	req := s.request(tool, ai.RoleCreative, 0.8,
		ai.SystemMessage(systemPrompt(tool, defaultSystemPrompt)),
		ai.UserMessage(tool.Build(values, s.now())),
	)

	raw, log, err := s.complete(ctx, tool, req)
	if err != nil {
		return nil, err
	}

	bios, err := parseBios(raw)
	if err != nil {
		log.WithError(err).Warn("bio output not parseable, returning text")
		metrics.Generations.WithLabelValues(tool.ID, metrics.ResultFallback).Inc()
		return &Result{Tool: tool.ID, Format: tools.FormatText, Text: output.NormalizePlainText(raw)}, nil
	}

	metrics.Generations.WithLabelValues(tool.ID, metrics.ResultCards).Inc()
	return &Result{Tool: tool.ID, Format: tools.FormatCards, Bios: bios}, nil
}

func parseBios(raw string) ([]Bio, error) {
	var decoded []any
	if err := json.Unmarshal([]byte(output.StripFences(raw)), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", output.ErrParse, err)
	}

	bios := make([]Bio, 0, len(decoded))
	for _, element := range decoded {
		var bio Bio
		switch value := element.(type) {
		case map[string]any:
			bio.Content, _ = value["content"].(string)
			bio.Style, _ = value["style"].(string)
		case string:
			bio.Content = value
		}

		bio.Content = output.NormalizePlainText(bio.Content)
		if bio.Content == "" {
			continue
		}
		if bio.Style == "" {
			bio.Style = defaultBioStyle
		}
		bios = append(bios, bio)
	}
	return bios, nil
}
