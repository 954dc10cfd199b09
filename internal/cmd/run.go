package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/tools"
)

var (
	runSet    []string
	runOutput resultFlags
)

var runCmd = &cobra.Command{
	Use:   "run <tool-id>",
	Short: "Run a generation tool",
	Long: `Run any registered tool with field values given as --set name=value.
Use "socialgen tools" to list tool ids. Image fields accept a file path.`,
	Example: `  socialgen run hashtag --set topic="Street Photography in Tokyo"
  socialgen run thread --set topic="Remote work" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayVarP(&runSet, "set", "s", nil, "Field value as name=value (repeatable)")
	runOutput.register(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	tool, ok := e.registry.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown tool %q (see socialgen tools)", args[0])
	}

	raw, err := parseSet(runSet)
	if err != nil {
		return err
	}
	for name, value := range raw {
		if f, ok := tool.Field(name); ok && f.Kind == tools.KindImage {
			if raw[name], err = loadImage(value); err != nil {
				return err
			}
		}
	}

	values := tools.NewValues(raw)
	if err := tool.Validate(values); err != nil {
		return err
	}

	svc, err := e.pipeline()
	if err != nil {
		return err
	}

	result, err := svc.Execute(cmd.Context(), tool, values)
	if err != nil {
		return generationFailure(err)
	}
	return runOutput.print(cmd, tool, result)
}

func parseSet(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", pair)
		}
		values[name] = value
	}
	return values, nil
}

// loadImage turns a file path into base64. URLs and data URLs pass through.
func loadImage(ref string) (string, error) {
	if ref == "" || strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return encodeImage(data), nil
}
