package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Markdown renders doc as a standalone markdown file body.
func Markdown(doc Document) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", emptyFallback(doc.Title, "Result")))

	switch {
	case len(doc.Items) > 0:
		for i, item := range doc.Items {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.ReplaceAll(item, "\n", " ")))
		}
	case len(doc.Cards) > 0:
		for _, card := range doc.Cards {
			sb.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", emptyFallback(card.Heading, "Untitled"), card.Body))
		}
	default:
		sb.WriteString(doc.Text)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteMarkdown saves doc under dir as <name>-<timestamp>.md and returns the
// file path.
func WriteMarkdown(dir, name string, doc Document, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("%s-%s.md", sanitizeFilename(name), now.Format("20060102-150405")))
	if err := os.WriteFile(filename, []byte(Markdown(doc)), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}

	return filename, nil
}

func emptyFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func sanitizeFilename(s string) string {
	result := unsafeFilenameChars.ReplaceAllString(s, "-")
	result = strings.Trim(result, "-")
	if len(result) > 50 {
		result = result[:50]
	}
	if result == "" {
		result = "unnamed"
	}
	return strings.ToLower(result)
}
