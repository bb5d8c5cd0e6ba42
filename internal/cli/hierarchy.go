package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/hierarchy"
	"github.com/matzehuels/obo2owl/pkg/httputil"
	"github.com/matzehuels/obo2owl/pkg/pipeline"
)

// hierarchyCommand creates the hierarchy command.
func (c *CLI) hierarchyCommand() *cobra.Command {
	var (
		format  string
		output  string
		root    string
		depth   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "hierarchy [file or URL]",
		Short: "Draw the is_a class hierarchy of an OBO file",
		Long: `Translate an OBO file and draw its named subclass hierarchy with Graphviz.

--root limits the drawing to the subclasses of one term, given as an OBO id
(GO:0008150) or a full IRI; --depth limits how many levels below it are drawn.`,
		Example: `  obo2owl hierarchy go.obo --root GO:0008150 --depth 3
  obo2owl hierarchy -f dot go.obo -o go.dot`,
		Args: cobra.ExactArgs(1),
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

			opts := pipeline.HierarchyOptions{
				Options: baseOptions(cfg),
				Format:  format,
				Root:    root,
				Depth:   depth,
			}
			opts.Source = args[0]
			opts.Logger = c.Logger

			spinner := newSpinnerWithContext(ctx, "Drawing hierarchy...")
			spinner.Start()
			out, cached, err := runner.HierarchyWithCacheInfo(ctx, data, opts)
			if err != nil {
				spinner.Stop()
				return err
			}

			if output == "" {
				output = hierarchyOutput(args[0], opts.Format)
			}
			if err := writeFileAtomic(output, out); err != nil {
				spinner.Stop()
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}

			spinner.StopWithSuccess("Hierarchy written")
			printFile(output)
			if cached {
				printDetail(iconCached)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", hierarchy.FormatSVG, "output format: svg, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVar(&root, "root", "", "draw only the subclasses of this term")
	cmd.Flags().IntVar(&depth, "depth", 0, "levels below the root to draw (0 for all)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// hierarchyOutput is the default output path: the input with the format's
// extension, or the URL's base name in the working directory.
func hierarchyOutput(input, format string) string {
	if httputil.IsURL(input) {
		return httputil.BaseName(input) + "." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
