package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/output"
	"github.com/strrl/socialgen/internal/tools"
)

var (
	toolsPlatform string
	toolsQuery    string
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available generation tools",
	Long: `List the registered tools. --platform keeps tools for that platform plus the
shared ones, --query matches titles and descriptions case-insensitively.`,
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().StringVarP(&toolsPlatform, "platform", "p", "", "Platform filter: instagram or twitter")
	toolsCmd.Flags().StringVarP(&toolsQuery, "query", "q", "", "Search text")
}

func runTools(cmd *cobra.Command, args []string) error {
	platform, err := tools.ParsePlatform(toolsPlatform)
	if err != nil {
		return err
	}

	list := tools.Default().List(tools.Filter{Platform: platform, Query: toolsQuery})
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tools found.")
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, tool := range list {
		rows = append(rows, []string{tool.ID, string(tool.Platform), tool.Display.Title, tool.Display.Description})
	}
	return output.NewRenderer(cmd.OutOrStdout(), 0).Table([]string{"ID", "PLATFORM", "TITLE", "DESCRIPTION"}, rows)
}
