package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/output"
)

var songsJSON bool

var songsCmd = &cobra.Command{
	Use:   "songs",
	Short: "Show today's trending songs for Reels",
	Long: `Show today's trending songs. The list is fetched once per day and kept in
the configured cache; when fetching fails a built-in list is shown.`,
	RunE: runSongs,
}

func init() {
	rootCmd.AddCommand(songsCmd)

	songsCmd.Flags().BoolVar(&songsJSON, "json", false, "Print the list as JSON")
}

func runSongs(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	cache, closeStore, err := e.songCache()
	if err != nil {
		return err
	}
	defer closeStore()

	day, list := cache.Today(cmd.Context())

	if songsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	rows := make([][]string, 0, len(list))
	for i, song := range list {
		rows = append(rows, []string{strconv.Itoa(i + 1), song.Title, song.Artist})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Trending on %s\n", day)
	return output.NewRenderer(cmd.OutOrStdout(), 0).Table([]string{"#", "TITLE", "ARTIST"}, rows)
}
