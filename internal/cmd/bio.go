package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/tools"
)

var (
	bioForm   tools.BioForm
	bioTone   string
	bioOutput resultFlags
)

var bioCmd = &cobra.Command{
	Use:   "bio",
	Short: "Generate Instagram bio options",
	Long: `Generate several Instagram bios in different styles from a short
description of the account.`,
	Example: `  socialgen bio --description "Travel photographer, minimalism" --tone Funny --emojis`,
	RunE:    runBio,
}

func init() {
	rootCmd.AddCommand(bioCmd)

	bioCmd.Flags().StringVar(&bioForm.Name, "name", "", "Name or handle")
	bioCmd.Flags().StringVarP(&bioForm.Description, "description", "d", "", "Vibe and description (required)")
	bioCmd.Flags().StringVar(&bioForm.Region, "region", "", "Region or location")
	bioCmd.Flags().StringVar(&bioTone, "tone", string(tools.ToneProfessional), "Tone of voice")
	bioCmd.Flags().StringVar(&bioForm.Keywords, "keywords", "", "Keywords to include")
	bioCmd.Flags().StringVar(&bioForm.CTA, "cta", "", "Call to action")
	bioCmd.Flags().BoolVar(&bioForm.IncludeEmojis, "emojis", false, "Include emojis")
	bioOutput.register(bioCmd)
}

func runBio(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	tool, _ := e.registry.Lookup("bio")
	form := bioForm
	form.Tone = tools.Tone(bioTone)
	if err := tool.Validate(form.Values()); err != nil {
		return err
	}

	svc, err := e.pipeline()
	if err != nil {
		return err
	}

	result, err := svc.Bios(cmd.Context(), form)
	if err != nil {
		return generationFailure(err)
	}
	return bioOutput.print(cmd, tool, result)
}
