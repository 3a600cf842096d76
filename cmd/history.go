package cmd

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mediasan-cli/mediasan/color"
	"github.com/mediasan-cli/mediasan/history"
	"github.com/mediasan-cli/mediasan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists completed downloads, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed downloads",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		downloads := lo.Values(saved)
		slices.SortFunc(downloads, func(a, b *history.SavedDownload) int {
			return b.DownloadedAt.Compare(a.DownloadedAt)
		})

		if len(downloads) == 0 {
			cmd.Println(style.Faint("No downloads yet"))
			return
		}

		for _, d := range downloads {
			cmd.Printf("%s %s %s\n",
				style.Bold(d.String()),
				style.Fg(color.Yellow)(d.Quality),
				style.Faint(humanize.Time(d.DownloadedAt)),
			)
			cmd.Println(style.Faint("  " + d.Path))
		}
	},
}
