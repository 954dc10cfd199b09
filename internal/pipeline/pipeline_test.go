package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strrl/socialgen/internal/ai"
	"github.com/strrl/socialgen/internal/tools"
)

type fakeCompleter struct {
	mu       sync.Mutex
	response string
	err      error
	requests []ai.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req ai.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.response, f.err
}

func (f *fakeCompleter) last(t *testing.T) ai.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

var fixedNow = time.Date(2026, 10, 18, 10, 30, 0, 0, time.UTC)

func newService(client ai.Completer) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(client, Options{
		Logger: log,
		Clock:  func() time.Time { return fixedNow },
	})
}

func mustTool(t *testing.T, id string) *tools.Tool {
	t.Helper()
	tool, ok := tools.Default().Lookup(id)
	require.True(t, ok, id)
	return tool
}

func TestRunListFromFencedJSON(t *testing.T) {
	client := &fakeCompleter{response: "```json\n[\"a\",\"b\",\"c\"]\n```"}
	svc := newService(client)

	result, err := svc.Run(context.Background(), mustTool(t, "caption"),
		tools.NewValues(map[string]string{"context": "beach", "tone": "Funny"}))
	require.NoError(t, err)
	assert.Equal(t, tools.FormatList, result.Format)
	assert.Equal(t, []string{"a", "b", "c"}, result.Items)

	req := client.last(t)
	assert.Equal(t, ai.DefaultModels().Creative, req.Model)
	assert.InDelta(t, defaultTemperature, req.Temperature, 1e-9)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, ai.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, defaultSystemPrompt, req.Messages[0].Content)
	assert.Contains(t, req.Messages[1].Content, `photo about: "beach"`)
	assert.True(t, len(req.Messages[1].Content) > len(genericSuffix))
	assert.Equal(t, genericSuffix, req.Messages[1].Content[len(req.Messages[1].Content)-len(genericSuffix):])
}

func TestRunListFallsBackToText(t *testing.T) {
	client := &fakeCompleter{response: "Sorry, I **can't** do that."}
	svc := newService(client)

	result, err := svc.Run(context.Background(), mustTool(t, "hashtag"),
		tools.NewValues(map[string]string{"topic": "tokyo"}))
	require.NoError(t, err)
	assert.Equal(t, tools.FormatText, result.Format)
	assert.Equal(t, "Sorry, I can't do that.", result.Text)
	assert.Empty(t, result.Items)
}

func TestRunListParsesRawBeforeEmphasisStripping(t *testing.T) {
	client := &fakeCompleter{response: `["**bold** take", "plain"]`}
	svc := newService(client)

	result, err := svc.Run(context.Background(), mustTool(t, "hottake"),
		tools.NewValues(map[string]string{"industry": "coffee"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"**bold** take", "plain"}, result.Items)
}

func TestRunTextTool(t *testing.T) {
	client := &fakeCompleter{response: "  **Espresso** fits the vibe  "}
	svc := newService(client)

	result, err := svc.Run(context.Background(), mustTool(t, "audio"),
		tools.NewValues(map[string]string{"vibe": "Gym", "format": "Vlog"}))
	require.NoError(t, err)
	assert.Equal(t, tools.FormatText, result.Format)
	assert.Equal(t, "Espresso fits the vibe", result.Text)

	req := client.last(t)
	assert.Equal(t, ai.DefaultModels().Search, req.Model)
	assert.Contains(t, req.Messages[1].Content, "Today is 10/18/2026")
}

func TestRunTransportFailure(t *testing.T) {
	cause := &ai.CompletionError{StatusCode: 500, Status: "500 Internal Server Error"}
	svc := newService(&fakeCompleter{err: cause})

	_, err := svc.Run(context.Background(), mustTool(t, "font"),
		tools.NewValues(map[string]string{"text": "hi"}))
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "font", genErr.Tool)
	assert.Equal(t, FailureMessage, genErr.UserMessage())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsGenerationError(err))
}

func TestExecuteMakesOneCall(t *testing.T) {
	client := &fakeCompleter{response: `["x"]`}
	svc := newService(client)

	for _, tool := range tools.Default().List(tools.Filter{}) {
		values := map[string]string{}
		for _, f := range tool.Fields {
			switch f.Kind {
			case tools.KindSelect:
				values[f.Name] = f.Options[0]
			case tools.KindImage:
				values[f.Name] = "aGVsbG8="
			default:
				values[f.Name] = "value"
			}
		}

		before := len(client.requests)
		_, err := svc.Execute(context.Background(), tool, tools.NewValues(values))
		require.NoError(t, err, tool.ID)
		assert.Equal(t, before+1, len(client.requests), tool.ID)
	}
}

func TestBioScenario(t *testing.T) {
	client := &fakeCompleter{response: `[{"content":"Coffee snob, professionally tired.","style":"Funny"}]`}
	svc := newService(client)

	result, err := svc.Bios(context.Background(), tools.BioForm{Name: "sam", Description: "coffee lover", Tone: tools.ToneFunny})
	require.NoError(t, err)
	assert.Equal(t, tools.FormatCards, result.Format)
	require.Len(t, result.Bios, 1)
	assert.Equal(t, "Coffee snob, professionally tired.", result.Bios[0].Content)
	assert.Equal(t, "Funny", result.Bios[0].Style)

	req := client.last(t)
	assert.Equal(t, ai.DefaultModels().Creative, req.Model)
	assert.InDelta(t, 0.8, req.Temperature, 1e-9)
	prompt := req.Messages[1].Content
	assert.Contains(t, prompt, "sam")
	assert.Contains(t, prompt, "coffee lover")
	assert.Contains(t, prompt, "Funny")
	assert.Contains(t, req.Messages[0].Content, "'content' and 'style'")
}

func TestBioNormalizesItems(t *testing.T) {
	client := &fakeCompleter{response: "```json\n[{\"content\":\"**Bold** bio\"},{\"content\":\"\"},\"bare string\"]\n```"}
	svc := newService(client)

	result, err := svc.Bios(context.Background(), tools.BioForm{Description: "x", Tone: tools.ToneBold})
	require.NoError(t, err)
	assert.Equal(t, []Bio{
		{Content: "Bold bio", Style: defaultBioStyle},
		{Content: "bare string", Style: defaultBioStyle},
	}, result.Bios)
}

func TestBioParseFailureYieldsNoCards(t *testing.T) {
	svc := newService(&fakeCompleter{response: "Here are some *bios* for you"})

	result, err := svc.Bios(context.Background(), tools.BioForm{Description: "x"})
	require.NoError(t, err)
	assert.Empty(t, result.Bios)
	assert.Equal(t, tools.FormatText, result.Format)
	assert.Equal(t, "Here are some bios for you", result.Text)
}

func TestAnalyzeReturnsRawText(t *testing.T) {
	client := &fakeCompleter{response: "  You *definitely* own a label maker.  "}
	svc := newService(client)

	result, err := svc.Analyze(context.Background(), tools.ProfileForm{
		Name: "Ana", Age: "29", Occupation: "PM", Traits: "organized",
		Hobbies: "pottery", SocialMediaStyle: "lurker", WorstHabit: "reply-all",
	})
	require.NoError(t, err)
	assert.Equal(t, "  You *definitely* own a label maker.  ", result.Text)

	req := client.last(t)
	assert.Equal(t, ai.DefaultModels().Smart, req.Model)
	for _, want := range []string{"Ana", "29", "PM", "organized", "pottery", "lurker", "reply-all"} {
		assert.Contains(t, req.Messages[1].Content, want)
	}
}

func TestRoastImageScenario(t *testing.T) {
	client := &fakeCompleter{response: "Mid feed. 4/10."}
	svc := newService(client)

	result, err := svc.RoastImage(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "Mid feed. 4/10.", result.Text)
	assert.Equal(t, tools.FormatText, result.Format)

	req := client.last(t)
	assert.Equal(t, ai.DefaultModels().Vision, req.Model)
	require.Len(t, req.Messages, 2)
	parts := req.Messages[1].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].Type)
	assert.Contains(t, parts[0].Text, "Vibe Rating")
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", parts[1].ImageURL.URL)
}

func TestRoastImageKeepsDataURL(t *testing.T) {
	client := &fakeCompleter{response: "ok"}
	svc := newService(client)

	_, err := svc.RoastImage(context.Background(), "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", client.last(t).Messages[1].Parts[1].ImageURL.URL)
}

func TestRoastImageRejectsBadInput(t *testing.T) {
	client := &fakeCompleter{response: "ok"}
	svc := newService(client)

	for _, image := range []string{"", "   ", "not base64 !!"} {
		_, err := svc.RoastImage(context.Background(), image)
		require.ErrorIs(t, err, tools.ErrValidation, image)
	}
	assert.Empty(t, client.requests)
}

func TestImageType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	assert.Equal(t, "image/png", ImageType(png))
	assert.Equal(t, fallbackImageType, ImageType([]byte("hello")))
}
