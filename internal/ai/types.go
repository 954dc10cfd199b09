package ai

import (
	"encoding/json"
	"time"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Config struct {
	APIKey   string
	BaseURL  string
	SiteURL  string
	SiteName string
	Timeout  time.Duration
}

// Models maps a capability role to a concrete OpenRouter model id.
type Models struct {
	Creative string `yaml:"creative"`
	Smart    string `yaml:"smart"`
	Vision   string `yaml:"vision"`
	Search   string `yaml:"search"`
	Fast     string `yaml:"fast"`
}

type ModelRole string

const (
	RoleCreative ModelRole = "creative"
	RoleSmart    ModelRole = "smart"
	RoleVision   ModelRole = "vision"
	RoleSearch   ModelRole = "search"
	RoleFast     ModelRole = "fast"
)

func DefaultModels() Models {
	return Models{
		Creative: "meta-llama/llama-3.3-70b-instruct",
		Smart:    "deepseek/deepseek-chat",
		Vision:   "openai/gpt-4o-mini",
		Search:   "google/gemini-2.0-flash-001",
		Fast:     "google/gemini-2.0-flash-001",
	}
}

// Resolve returns the model id for role. Unknown or unset roles fall back
// to the fast model.
func (m Models) Resolve(role ModelRole) string {
	var id string
	switch role {
	case RoleCreative:
		id = m.Creative
	case RoleSmart:
		id = m.Smart
	case RoleVision:
		id = m.Vision
	case RoleSearch:
		id = m.Search
	}
	if id == "" {
		id = m.Fast
	}
	if id == "" {
		id = DefaultModels().Fast
	}
	return id
}

type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
}

type Message struct {
	Role    string
	Content string
	Parts   []ContentPart
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

func ImagePart(url string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: url}}
}

// MarshalJSON emits content as a part array for multi-modal messages and as
// a plain string otherwise.
func (m Message) MarshalJSON() ([]byte, error) {
	if len(m.Parts) > 0 {
		return json.Marshal(struct {
			Role    string        `json:"role"`
			Content []ContentPart `json:"content"`
		}{m.Role, m.Parts})
	}
	return json.Marshal(struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{m.Role, m.Content})
}
