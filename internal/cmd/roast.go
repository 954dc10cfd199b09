package cmd

import (
	"encoding/base64"
	"errors"

	"github.com/spf13/cobra"
)

var (
	roastImage  string
	roastOutput resultFlags
)

var roastCmd = &cobra.Command{
	Use:   "roast",
	Short: "Roast an Instagram feed screenshot",
	Long: `Send a feed screenshot to the vision model and print a roast of the
aesthetic. --image takes a file path, an http(s) URL or a data URL.`,
	Example: `  socialgen roast --image feed.png`,
	RunE:    runRoast,
}

func init() {
	rootCmd.AddCommand(roastCmd)

	roastCmd.Flags().StringVarP(&roastImage, "image", "i", "", "Screenshot file, URL or data URL (required)")
	roastOutput.register(roastCmd)
}

func runRoast(cmd *cobra.Command, args []string) error {
	if roastImage == "" {
		return errors.New("--image is required")
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	image, err := loadImage(roastImage)
	if err != nil {
		return err
	}

	svc, err := e.pipeline()
	if err != nil {
		return err
	}

	tool, _ := e.registry.Lookup("roast")
	result, err := svc.RoastImage(cmd.Context(), image)
	if err != nil {
		return generationFailure(err)
	}
	return roastOutput.print(cmd, tool, result)
}

func encodeImage(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
