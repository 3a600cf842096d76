package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mediasan-cli/mediasan/filesystem"
	"github.com/mediasan-cli/mediasan/inline"
	"github.com/mediasan-cli/mediasan/mediathek"
	"github.com/mediasan-cli/mediasan/query"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to execute")
	inlineCmd.Flags().StringP("filter-topic", "F", "", "Restrict the output to a single topic")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("title", "t", false, "Match the query against titles only")
	inlineCmd.Flags().BoolP("topic", "T", false, "Match the query against topics only")
	inlineCmd.Flags().BoolP("future", "f", false, "Include broadcasts scheduled in the future")

	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `List annotated search results without downloading anything.

Results run through the same resolution pipeline as the interactive mode:
episodes are classified, numbered and sorted. With --json a single document
is written instead of one line per record.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err    error
			writer io.Writer = os.Stdout
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		}

		topic := mo.None[string]()
		if t := lo.Must(cmd.Flags().GetString("filter-topic")); t != "" {
			topic = mo.Some(t)
		}

		q := lo.Must(cmd.Flags().GetString("query"))
		if q == "" {
			handleErr(errors.New("query not set"))
		}

		handleErr(inline.Run(&inline.Options{
			Out:   writer,
			Query: q,
			Scope: mediathek.ScopeFor(
				lo.Must(cmd.Flags().GetBool("title")),
				lo.Must(cmd.Flags().GetBool("topic")),
			),
			Future: lo.Must(cmd.Flags().GetBool("future")),
			Topic:  topic,
			Json:   lo.Must(cmd.Flags().GetBool("json")),
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for structured inline mode output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "record", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
