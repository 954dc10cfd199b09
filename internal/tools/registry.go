package tools

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type Registry struct {
	ordered []*Tool
	byID    map[string]*Tool
}

type Filter struct {
	Platform Platform
	Query    string
}

// NewRegistry checks every definition and indexes it. Tools are kept in the
// given order.
func NewRegistry(defs ...Tool) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Tool, len(defs))}

	for i := range defs {
		tool := defs[i]
		if err := checkTool(&tool); err != nil {
			return nil, err
		}
		if _, exists := r.byID[tool.ID]; exists {
			return nil, fmt.Errorf("duplicate tool id %q", tool.ID)
		}
		r.byID[tool.ID] = &tool
		r.ordered = append(r.ordered, &tool)
	}

	return r, nil
}

func checkTool(t *Tool) error {
	if t.ID == "" {
		return fmt.Errorf("tool without id")
	}
	if t.Build == nil {
		return fmt.Errorf("tool %q has no prompt builder", t.ID)
	}

	switch t.Platform {
	case PlatformInstagram, PlatformTwitter, PlatformBoth:
	default:
		return fmt.Errorf("tool %q has unknown platform %q", t.ID, t.Platform)
	}

	declared := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if f.Name == "" {
			return fmt.Errorf("tool %q has a field without name", t.ID)
		}
		if _, dup := declared[f.Name]; dup {
			return fmt.Errorf("tool %q declares field %q twice", t.ID, f.Name)
		}
		declared[f.Name] = struct{}{}

		switch f.Kind {
		case KindText, KindTextarea, KindImage:
		case KindSelect:
			if len(f.Options) == 0 {
				return fmt.Errorf("tool %q select field %q has no options", t.ID, f.Name)
			}
		default:
			return fmt.Errorf("tool %q field %q has unknown kind %q", t.ID, f.Name, f.Kind)
		}
	}

	// Dry run: the builder may only read declared fields.
	var undeclared []string
	probe := Values{m: map[string]string{}, trace: func(name string) {
		if _, ok := declared[name]; !ok {
			undeclared = append(undeclared, name)
		}
	}}
	t.Build(probe, time.Time{})
	if len(undeclared) > 0 {
		return fmt.Errorf("tool %q prompt reads undeclared fields: %s", t.ID, strings.Join(undeclared, ", "))
	}

	return nil
}

func (r *Registry) Lookup(id string) (*Tool, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// ParsePlatform accepts a platform filter value. Empty means no filter.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "", PlatformInstagram, PlatformTwitter, PlatformBoth:
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q, expected instagram, twitter or both", s)
}

func (r *Registry) List(filter Filter) []*Tool {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var result []*Tool
	for _, t := range r.ordered {
		if filter.Platform != "" && filter.Platform != PlatformBoth &&
			t.Platform != PlatformBoth && t.Platform != filter.Platform {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Display.Title), query) &&
			!strings.Contains(strings.ToLower(t.Display.Description), query) {
			continue
		}
		result = append(result, t)
	}
	return result
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the built-in catalogue. It panics if a built-in definition
// is inconsistent.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(catalog()...)
		if err != nil {
			panic(fmt.Sprintf("built-in tool catalogue: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
