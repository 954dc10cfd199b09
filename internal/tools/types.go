package tools

import (
	"time"

	"github.com/strrl/socialgen/internal/ai"
)

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindImage    FieldKind = "image"
)

type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Required    bool      `json:"required"`
}

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformBoth      Platform = "both"
)

type Format string

const (
	FormatText  Format = "text"
	FormatList  Format = "list"
	FormatCards Format = "cards"
)

// Handler names the pipeline that executes a tool.
type Handler string

const (
	HandlerGeneric    Handler = "generic"
	HandlerBio        Handler = "bio"
	HandlerAnalyzer   Handler = "analyzer"
	HandlerImageRoast Handler = "image-roast"
)

// Display is rendering metadata. Icon is an identifier owned by the UI.
type Display struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SubmitLabel string `json:"submit_label"`
}

// PromptBuilder derives the user prompt from field values. now is only read
// by grounded tools.
type PromptBuilder func(v Values, now time.Time) string

type Tool struct {
	ID           string
	Platform     Platform
	Display      Display
	Fields       []Field
	Build        PromptBuilder
	Format       Format
	UseGrounding bool
	Handler      Handler

	// Optional overrides; zero values mean the pipeline defaults.
	System      string
	Model       ai.ModelRole
	Temperature float64
}

func (t *Tool) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (t *Tool) OutputFormat() Format {
	if t.Format == "" {
		return FormatText
	}
	return t.Format
}

func (t *Tool) HandlerKind() Handler {
	if t.Handler == "" {
		return HandlerGeneric
	}
	return t.Handler
}
