package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/output"
	"github.com/strrl/socialgen/internal/pipeline"
	"github.com/strrl/socialgen/internal/tools"
)

// resultFlags are shared by every command that prints a generation result.
type resultFlags struct {
	json   bool
	outDir string
}

func (f *resultFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the result as JSON")
	cmd.Flags().StringVarP(&f.outDir, "out", "o", "", "Also save the result as markdown in this directory")
}

func (f *resultFlags) print(cmd *cobra.Command, tool *tools.Tool, result *pipeline.Result) error {
	doc := document(tool, result)

	if f.outDir != "" {
		path, err := output.WriteMarkdown(f.outDir, tool.ID, doc, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", path)
	}

	if f.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return output.NewRenderer(cmd.OutOrStdout(), 0).Render(doc)
}

func document(tool *tools.Tool, result *pipeline.Result) output.Document {
	doc := output.Document{Title: tool.Display.Title}
	switch result.Format {
	case tools.FormatList:
		doc.Items = result.Items
	case tools.FormatCards:
		for _, bio := range result.Bios {
			doc.Cards = append(doc.Cards, output.Card{Heading: bio.Style, Body: bio.Content})
		}
	default:
		doc.Text = result.Text
	}
	return doc
}

// generationFailure hides transport details behind the user-facing message.
// The cause is already logged by the pipeline.
func generationFailure(err error) error {
	var genErr *pipeline.GenerationError
	if errors.As(err, &genErr) {
		return errors.New(genErr.UserMessage())
	}
	return err
}
