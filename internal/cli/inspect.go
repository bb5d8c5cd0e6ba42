package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/obo2owl/pkg/httputil"
	"github.com/matzehuels/obo2owl/pkg/pipeline"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		noCache  bool
		noImport bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file or URL]",
		Short: "Summarize the OWL translation of an OBO file",
		Long:  `Translate an OBO file without writing output and print the number of axioms of each kind and any translation warnings.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			data, err := readInput(ctx, httputil.NewFetcher(runner.Cache), args[0])
			if err != nil {
				return err
			}

			opts := baseOptions(cfg)
			opts.Source = args[0]
			opts.Logger = c.Logger
			if noImport {
				opts.SkipImport = true
			}

			prog := newProgress(c.Logger)
			res, err := runner.Execute(ctx, data, opts)
			if err != nil {
				return err
			}
			prog.done("Translated " + args[0])

			printInspect(args[0], res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&noImport, "no-oboinowl-import", false, "do not import the oboInOwl vocabulary")

	return cmd
}

func printInspect(source string, res *pipeline.Result) {
	printNewline()
	fmt.Println(StyleTitle.Render(source))
	printKeyValue("Frames", fmt.Sprintf("%d", res.Stats.Frames))
	printKeyValue("Axioms", fmt.Sprintf("%d", res.Stats.Components))
	printKeyValue("Parse", res.Stats.ParseTime.Round(time.Millisecond).String())
	printKeyValue("Translate", res.Stats.TranslateTime.Round(time.Millisecond).String())
	if res.CacheInfo.Hit {
		printKeyValue("Cache", iconCached)
	}
	printNewline()

	fmt.Println(kindsTable(res.Stats.Kinds))

	if len(res.Warnings) > 0 {
		printNewline()
		for _, w := range res.Warnings {
			printWarning("%s", w)
		}
	}
}

// kindsTable renders component counts, largest first.
func kindsTable(kinds map[string]int) string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if kinds[names[i]] != kinds[names[j]] {
			return kinds[names[i]] > kinds[names[j]]
		}
		return names[i] < names[j]
	})

	rows := make([][]string, len(names))
	for i, n := range names {
		rows[i] = []string{n, fmt.Sprintf("%d", kinds[n])}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleNumber.Align(lipgloss.Right)
			}
			return StyleValue
		}).
		Render()
}
