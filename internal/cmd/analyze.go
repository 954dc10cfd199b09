package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/tools"
)

var (
	analyzeForm   tools.ProfileForm
	analyzeOutput resultFlags
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Roast a personality profile",
	Long: `Analyze a short personality profile and return a playful roast of about
six lines.`,
	Example: `  socialgen analyze --name Sam --age 27 --occupation "Barista" --habit "Replies in 3 days"`,
	RunE:    runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeForm.Name, "name", "", "Name (required)")
	analyzeCmd.Flags().StringVar(&analyzeForm.Age, "age", "", "Age")
	analyzeCmd.Flags().StringVar(&analyzeForm.Occupation, "occupation", "", "Occupation")
	analyzeCmd.Flags().StringVar(&analyzeForm.Traits, "traits", "", "Personality traits")
	analyzeCmd.Flags().StringVar(&analyzeForm.Hobbies, "hobbies", "", "Hobbies")
	analyzeCmd.Flags().StringVar(&analyzeForm.SocialMediaStyle, "style", "", "Social media style")
	analyzeCmd.Flags().StringVar(&analyzeForm.WorstHabit, "habit", "", "Worst habit")
	analyzeOutput.register(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	tool, _ := e.registry.Lookup("analyzer")
	if err := tool.Validate(analyzeForm.Values()); err != nil {
		return err
	}

	svc, err := e.pipeline()
	if err != nil {
		return err
	}

	result, err := svc.Analyze(cmd.Context(), analyzeForm)
	if err != nil {
		return generationFailure(err)
	}
	return analyzeOutput.print(cmd, tool, result)
}
