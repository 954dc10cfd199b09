package tools

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	r := Default()
	assert.Len(t, r.List(Filter{}), 22)

	bio, ok := r.Lookup("bio")
	require.True(t, ok)
	assert.Equal(t, HandlerBio, bio.HandlerKind())
	assert.Equal(t, FormatCards, bio.OutputFormat())

	_, ok = r.Lookup("nonexistent-id")
	assert.False(t, ok)
}

func TestEveryDeclaredFieldReachesPrompt(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for _, tool := range Default().List(Filter{}) {
		values := map[string]string{}
		for _, f := range tool.Fields {
			if f.Kind == KindImage {
				continue
			}
			values[f.Name] = fmt.Sprintf("<<%s>>", f.Name)
		}

		prompt := tool.Build(NewValues(values), now)
		assert.NotEmpty(t, prompt, tool.ID)
		for name, marker := range values {
			assert.Contains(t, prompt, marker, "tool %s does not use field %s", tool.ID, name)
		}
		assert.NotContains(t, prompt, "%!", "tool %s has a formatting error", tool.ID)
		assert.Equal(t, prompt, tool.Build(NewValues(values), now), "tool %s prompt is not deterministic", tool.ID)
	}
}

func TestSelectFieldsHaveOptions(t *testing.T) {
	for _, tool := range Default().List(Filter{}) {
		for _, f := range tool.Fields {
			if f.Kind == KindSelect {
				assert.NotEmpty(t, f.Options, "%s.%s", tool.ID, f.Name)
			}
		}
	}
}

func TestGroundedToolsCarryTheDate(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	grounded := 0
	for _, tool := range Default().List(Filter{}) {
		if !tool.UseGrounding {
			continue
		}
		grounded++
		prompt := tool.Build(NewValues(nil), now)
		assert.Contains(t, prompt, "10/18/2026", tool.ID)
	}
	assert.Positive(t, grounded)
}

func TestBioPromptFromForm(t *testing.T) {
	bio, ok := Default().Lookup("bio")
	require.True(t, ok)

	form := BioForm{Name: "sam", Description: "coffee lover", Tone: ToneFunny}
	values := form.Values()
	require.NoError(t, bio.Validate(values))

	prompt := bio.Build(values, time.Now())
	assert.Contains(t, prompt, "sam")
	assert.Contains(t, prompt, "coffee lover")
	assert.Contains(t, prompt, "Funny")
	assert.Contains(t, prompt, "Emojis: No")
}

func TestShitpostTopicDefault(t *testing.T) {
	tool, ok := Default().Lookup("shitpost")
	require.True(t, ok)
	assert.Contains(t, tool.Build(NewValues(nil), time.Now()), "about general life.")
	assert.Contains(t, tool.Build(NewValues(map[string]string{"topic": "Gym"}), time.Now()), "about Gym.")
}

func TestListFilters(t *testing.T) {
	r := Default()

	instagram := r.List(Filter{Platform: PlatformInstagram})
	for _, tool := range instagram {
		assert.NotEqual(t, PlatformTwitter, tool.Platform, tool.ID)
	}
	assert.Contains(t, ids(instagram), "translator")
	assert.NotContains(t, ids(instagram), "thread")

	twitter := r.List(Filter{Platform: PlatformTwitter})
	assert.Contains(t, ids(twitter), "thread")
	assert.Contains(t, ids(twitter), "font")
	assert.NotContains(t, ids(twitter), "bio")

	assert.Equal(t, []string{"bio", "twitter-bio"}, ids(r.List(Filter{Query: "BIO"})))
	assert.Equal(t, []string{"bio"}, ids(r.List(Filter{Platform: PlatformInstagram, Query: "bio"})))
	assert.Contains(t, ids(r.List(Filter{Query: "viral threads"})), "thread")
	assert.Empty(t, r.List(Filter{Query: "no such tool"}))
}

func TestNewRegistryRejectsBadDefinitions(t *testing.T) {
	build := func(v Values, _ time.Time) string { return v.Get("a") }
	field := Field{Name: "a", Kind: KindText}

	cases := map[string][]Tool{
		"duplicate id": {
			{ID: "x", Platform: PlatformBoth, Fields: []Field{field}, Build: build},
			{ID: "x", Platform: PlatformBoth, Fields: []Field{field}, Build: build},
		},
		"no builder":       {{ID: "x", Platform: PlatformBoth}},
		"bad platform":     {{ID: "x", Platform: "myspace", Fields: []Field{field}, Build: build}},
		"duplicate field":  {{ID: "x", Platform: PlatformBoth, Fields: []Field{field, field}, Build: build}},
		"select w/o opts":  {{ID: "x", Platform: PlatformBoth, Fields: []Field{{Name: "a", Kind: KindSelect}}, Build: build}},
		"undeclared field": {{ID: "x", Platform: PlatformBoth, Fields: []Field{{Name: "b", Kind: KindText}}, Build: build}},
	}

	for name, defs := range cases {
		_, err := NewRegistry(defs...)
		assert.Error(t, err, name)
	}

	r, err := NewRegistry(Tool{ID: "x", Platform: PlatformBoth, Fields: []Field{field}, Build: build})
	require.NoError(t, err)
	_, ok := r.Lookup("x")
	assert.True(t, ok)
}

func TestValidate(t *testing.T) {
	caption, ok := Default().Lookup("caption")
	require.True(t, ok)

	err := caption.Validate(NewValues(map[string]string{"context": "beach", "tone": "Funny"}))
	require.NoError(t, err)

	err = caption.Validate(NewValues(map[string]string{"tone": "Funny"}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "context", verr.Field)
	assert.ErrorIs(t, err, ErrValidation)

	err = caption.Validate(NewValues(map[string]string{"context": "   ", "tone": "Funny"}))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "context", verr.Field)

	err = caption.Validate(NewValues(map[string]string{"context": "beach", "tone": "Grumpy"}))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tone", verr.Field)

	err = caption.Validate(NewValues(map[string]string{"context": "beach", "tone": "Funny", "extra": "x"}))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "extra", verr.Field)

	shitpost, _ := Default().Lookup("shitpost")
	assert.NoError(t, shitpost.Validate(NewValues(nil)))
}

func TestValuesAreCopied(t *testing.T) {
	src := map[string]string{"a": "1"}
	v := NewValues(src)
	src["a"] = "2"
	assert.Equal(t, "1", v.Get("a"))

	m := v.Map()
	m["a"] = "3"
	assert.Equal(t, "1", v.Get("a"))
}

func ids(list []*Tool) []string {
	out := make([]string, 0, len(list))
	for _, tool := range list {
		out = append(out, tool.ID)
	}
	return out
}

func TestParsePlatform(t *testing.T) {
	for in, want := range map[string]Platform{
		"":          "",
		"instagram": PlatformInstagram,
		" Twitter ": PlatformTwitter,
		"both":      PlatformBoth,
	} {
		got, err := ParsePlatform(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePlatform("tiktok")
	assert.Error(t, err)
}

func TestAudioPromptAsksForGoogleSearch(t *testing.T) {
	tool, ok := Default().Lookup("audio")
	require.True(t, ok)

	prompt := tool.Build(NewValues(map[string]string{"vibe": "Gym", "format": "Vlog"}), time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, prompt, "Using Google Search, find the current Spotify Top 50")
}
