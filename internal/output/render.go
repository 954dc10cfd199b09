package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Card is one titled block, such as a generated bio and its style.
type Card struct {
	Heading string
	Body    string
}

// Document is the presentation form of a generation result. Exactly one of
// Items, Cards or Text is normally set.
type Document struct {
	Title string
	Items []string
	Cards []Card
	Text  string
}

var (
	colorPrimary   = lipgloss.Color("39")
	colorSecondary = lipgloss.Color("86")
	colorDim       = lipgloss.Color("241")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	indexStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(4).
			Align(lipgloss.Right)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	cardHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSecondary)
)

type Renderer struct {
	w     io.Writer
	width int
}

// NewRenderer writes to w, wrapping card bodies at width columns (72 if
// width is not positive).
func NewRenderer(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = 72
	}
	return &Renderer{w: w, width: width}
}

func (r *Renderer) Render(doc Document) error {
	_, err := io.WriteString(r.w, r.String(doc)+"\n")
	return err
}

func (r *Renderer) String(doc Document) string {
	var blocks []string
	if doc.Title != "" {
		blocks = append(blocks, titleStyle.Render(doc.Title))
	}

	switch {
	case len(doc.Items) > 0:
		rows := make([]string, 0, len(doc.Items))
		for i, item := range doc.Items {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				indexStyle.Render(fmt.Sprintf("%d.", i+1)), " ", item))
		}
		blocks = append(blocks, strings.Join(rows, "\n"))
	case len(doc.Cards) > 0:
		for _, card := range doc.Cards {
			body := lipgloss.NewStyle().Width(r.width).Render(card.Body)
			blocks = append(blocks, cardStyle.Render(
				lipgloss.JoinVertical(lipgloss.Left, cardHeadingStyle.Render(card.Heading), body)))
		}
	default:
		blocks = append(blocks, doc.Text)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Table prints rows under a bold header row.
func (r *Renderer) Table(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cardHeadingStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	_, err := io.WriteString(r.w, t.Render()+"\n")
	return err
}
