// Package cmd implements the command-line interface for mediasan.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mediasan-cli/mediasan/color"
	"github.com/mediasan-cli/mediasan/constant"
	"github.com/mediasan-cli/mediasan/icon"
	"github.com/mediasan-cli/mediasan/key"
	"github.com/mediasan-cli/mediasan/log"
	"github.com/mediasan-cli/mediasan/mediathek"
	"github.com/mediasan-cli/mediasan/mini"
	"github.com/mediasan-cli/mediasan/source"
	"github.com/mediasan-cli/mediasan/style"
	"github.com/mediasan-cli/mediasan/util"
	"github.com/mediasan-cli/mediasan/version"
	"github.com/mediasan-cli/mediasan/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("quality", "q", "", "Preferred video quality (low, medium, hd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"low", "medium", "hd"}, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.DownloadQuality, rootCmd.Flags().Lookup("quality")))

	rootCmd.Flags().BoolP("subtitles", "s", false, "Also download subtitles when available")
	lo.Must0(viper.BindPFlag(key.DownloadSubtitles, rootCmd.Flags().Lookup("subtitles")))

	rootCmd.Flags().BoolP("title", "t", false, "Match the query against titles only")
	rootCmd.Flags().BoolP("topic", "T", false, "Match the query against topics only")
	rootCmd.Flags().BoolP("future", "f", false, "Include broadcasts scheduled in the future")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist completed downloads to the local history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnDownload, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Cleanup of temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd runs the interactive search and download pipeline.
var rootCmd = &cobra.Command{
	Use:   constant.Mediasan + " <query> <folder>",
	Short: "Search the MediathekViewWeb index and download broadcasts",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Search the MediathekViewWeb index and download broadcasts"),
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) < 2 {
			handleErr(cmd.Help())
			return
		}

		quality, ok := source.ParseQuality(viper.GetString(key.DownloadQuality))
		if !ok && viper.GetString(key.DownloadQuality) != "" {
			fmt.Fprintf(os.Stderr, "%s unknown quality %q, using %s\n",
				icon.Get(icon.Question),
				viper.GetString(key.DownloadQuality),
				quality,
			)
		}

		options := mini.Options{
			Query:     args[0],
			Folder:    args[1],
			Quality:   quality,
			Subtitles: viper.GetBool(key.DownloadSubtitles),
			Scope: mediathek.ScopeFor(
				lo.Must(cmd.Flags().GetBool("title")),
				lo.Must(cmd.Flags().GetBool("topic")),
			),
			Future: lo.Must(cmd.Flags().GetBool("future")),
		}
		handleErr(mini.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
