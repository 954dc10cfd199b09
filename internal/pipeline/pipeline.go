package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/strrl/socialgen/internal/ai"
	"github.com/strrl/socialgen/internal/metrics"
	"github.com/strrl/socialgen/internal/output"
	"github.com/strrl/socialgen/internal/tools"
)

const (
	defaultSystemPrompt = "You are a creative expert."
	defaultTemperature  = 0.7
	genericSuffix       = " (Return clear text, or JSON if specifically asked)."

	// FailureMessage is what callers show when a generation fails.
	FailureMessage = "Something went wrong. Please try again."
)

type GenerationError struct {
	Tool string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for %s: %v", e.Tool, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) UserMessage() string { return FailureMessage }

type Bio struct {
	Content string `json:"content"`
	Style   string `json:"style"`
}

// Result is the normalized output of one invocation. Format says which of
// Items, Bios or Text is populated.
type Result struct {
	Tool   string       `json:"tool"`
	Format tools.Format `json:"format"`
	Items  []string     `json:"items,omitempty"`
	Bios   []Bio        `json:"bios,omitempty"`
	Text   string       `json:"text,omitempty"`
}

type Options struct {
	Models   ai.Models
	Registry *tools.Registry
	Logger   logrus.FieldLogger
	Clock    func() time.Time
}

type Service struct {
	client   ai.Completer
	models   ai.Models
	registry *tools.Registry
	log      logrus.FieldLogger
	now      func() time.Time
}

func New(client ai.Completer, opts Options) *Service {
	if opts.Models == (ai.Models{}) {
		opts.Models = ai.DefaultModels()
	}
	if opts.Registry == nil {
		opts.Registry = tools.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Service{
		client:   client,
		models:   opts.Models,
		registry: opts.Registry,
		log:      opts.Logger.WithField("component", "pipeline"),
		now:      opts.Clock,
	}
}

// Execute runs tool with the pipeline its handler names. Values are expected
// to be validated by the caller.
func (s *Service) Execute(ctx context.Context, tool *tools.Tool, values tools.Values) (*Result, error) {
	switch tool.HandlerKind() {
	case tools.HandlerBio:
		return s.bios(ctx, tool, values)
	case tools.HandlerAnalyzer:
		return s.analyze(ctx, tool, values)
	case tools.HandlerImageRoast:
		return s.roastImage(ctx, tool, values.Get("image"))
	default:
		return s.Run(ctx, tool, values)
	}
}

// Run is the generic pipeline: build the prompt, make one completion call
// and normalize the answer. List tools whose answer is not a JSON array
// degrade to a text result.
func (s *Service) Run(ctx context.Context, tool *tools.Tool, values tools.Values) (*Result, error) {
	role := ai.RoleCreative
	if tool.UseGrounding {
		role = ai.RoleSearch
	}

	prompt := tool.Build(values, s.now()) + genericSuffix
	req := s.request(tool, role, defaultTemperature,
		ai.SystemMessage(systemPrompt(tool, defaultSystemPrompt)),
		ai.UserMessage(prompt),
	)

	raw, log, err := s.complete(ctx, tool, req)
	if err != nil {
		return nil, err
	}

	text := output.NormalizePlainText(raw)

	if tool.OutputFormat() == tools.FormatList {
		items, err := output.NormalizeList(raw)
		if err == nil {
			metrics.Generations.WithLabelValues(tool.ID, metrics.ResultList).Inc()
			return &Result{Tool: tool.ID, Format: tools.FormatList, Items: items}, nil
		}
		log.WithError(err).Warn("list output not parseable, returning text")
		metrics.Generations.WithLabelValues(tool.ID, metrics.ResultFallback).Inc()
		return &Result{Tool: tool.ID, Format: tools.FormatText, Text: text}, nil
	}

	metrics.Generations.WithLabelValues(tool.ID, metrics.ResultText).Inc()
	return &Result{Tool: tool.ID, Format: tools.FormatText, Text: text}, nil
}

func (s *Service) lookup(id string) (*tools.Tool, error) {
	tool, ok := s.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("tool %q is not registered", id)
	}
	return tool, nil
}

func (s *Service) request(tool *tools.Tool, role ai.ModelRole, temperature float64, messages ...ai.Message) ai.Request {
	if tool.Model != "" {
		role = tool.Model
	}
	if tool.Temperature > 0 {
		temperature = tool.Temperature
	}
	return ai.Request{
		Model:       s.models.Resolve(role),
		Messages:    messages,
		Temperature: temperature,
	}
}

func (s *Service) complete(ctx context.Context, tool *tools.Tool, req ai.Request) (string, logrus.FieldLogger, error) {
	log := s.log.WithFields(logrus.Fields{
		"tool":       tool.ID,
		"model":      req.Model,
		"request_id": uuid.NewString(),
	})
	log.Info("generation started")

	start := time.Now()
	raw, err := s.client.Complete(ctx, req)
	if err != nil {
		log.WithError(err).Error("generation failed")
		metrics.Generations.WithLabelValues(tool.ID, metrics.ResultFailed).Inc()
		return "", log, &GenerationError{Tool: tool.ID, Err: err}
	}

	log.WithFields(logrus.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
		"chars":       len(raw),
	}).Debug("generation finished")
	return raw, log, nil
}

func systemPrompt(tool *tools.Tool, fallback string) string {
	if tool.System != "" {
		return tool.System
	}
	return fallback
}

// IsGenerationError reports whether err came from a failed invocation.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
