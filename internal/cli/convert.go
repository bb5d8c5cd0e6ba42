package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/obo2owl/pkg/errors"
	"github.com/matzehuels/obo2owl/pkg/httputil"
	"github.com/matzehuels/obo2owl/pkg/pipeline"
)

// convertFlags holds flags for the convert command.
type convertFlags struct {
	format      string
	outputDir   string
	noCache     bool
	refresh     bool
	watch       bool
	interactive bool
	noImport    bool
	jobs        int
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [files or globs...]",
		Short: "Translate OBO files to OWL",
		Long: `Translate one or more OBO files to OWL2.

Each input is written next to itself (or into --output-dir) with the extension
of the chosen format: .owl for functional syntax, .nt for N-Triples. Patterns
may use ** to match nested directories. Inputs may also be http(s) URLs;
downloads are cached. Pass "-" to read standard input and write to standard
output.`,
		Example: `  obo2owl convert go.obo
  obo2owl convert -f nt -o out/ 'ontologies/**/*.obo'
  obo2owl convert --watch --interactive *.obo
  obo2owl convert http://purl.obolibrary.org/obo/ro.obo
  cat go.obo | obo2owl convert -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: ofn, nt (default from config, else ofn)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "directory for output files (default: next to input)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached output and convert again")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "convert again whenever an input changes")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "show a live progress table")
	cmd.Flags().BoolVar(&flags.noImport, "no-oboinowl-import", false, "do not import the oboInOwl vocabulary")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 4, "files converted in parallel")

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, cmd *cobra.Command, args []string, flags convertFlags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	opts := baseOptions(cfg)
	if flags.format != "" {
		opts.Format = flags.format
	}
	if flags.noImport {
		opts.SkipImport = true
	}
	opts.Refresh = flags.refresh
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	if len(args) == 1 && args[0] == "-" {
		return convertStream(ctx, runner, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	paths, err := expandInputs(args)
	if err != nil {
		return err
	}
	if flags.outputDir != "" {
		if err := os.MkdirAll(flags.outputDir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output dir %s", flags.outputDir)
		}
	}

	b := &batch{
		runner:    runner,
		fetcher:   httputil.NewFetcher(runner.Cache),
		opts:      opts,
		outputDir: flags.outputDir,
		jobs:      flags.jobs,
	}

	if flags.interactive {
		err = runInteractive(ctx, b, paths)
	} else {
		err = b.run(ctx, paths, newLogReporter(c.Logger))
	}
	if err != nil && !flags.watch {
		return err
	}

	if !flags.watch {
		return nil
	}
	local := localPaths(paths)
	if len(local) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs at least one local file")
	}
	printInfo("Watching %d files, press Ctrl+C to stop", len(local))
	return watchInputs(ctx, c.Logger, local, func(ctx context.Context, path string) {
		_ = b.run(ctx, []string{path}, newLogReporter(c.Logger))
	})
}

// convertStream converts a single document from r to w.
func convertStream(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
	}
	opts.Source = "<stdin>"
	res, err := runner.Execute(ctx, data, opts)
	if err != nil {
		return err
	}
	for _, warn := range res.Warnings {
		loggerFromContext(ctx).Warn(warn.String())
	}
	_, err = w.Write(res.Output)
	return err
}

// =============================================================================
// Inputs
// =============================================================================

// expandInputs resolves globs and plain paths into a sorted, de-duplicated
// list of files. URLs are kept as given.
func expandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if httputil.IsURL(arg) {
			add(arg)
			continue
		}
		if !hasMeta(arg) {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", arg)
			}
			if info.IsDir() {
				return nil, errors.New(errors.ErrCodeInvalidPath, "input %s is a directory (use %s/**/*.obo)", arg, arg)
			}
			add(filepath.Clean(arg))
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad pattern %q", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}

	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "no input files match %s", strings.Join(args, " "))
	}
	sort.Strings(paths)
	return paths, nil
}

// readInput reads a local file, or downloads a URL through f.
func readInput(ctx context.Context, f *httputil.Fetcher, input string) ([]byte, error) {
	if httputil.IsURL(input) {
		if f == nil {
			f = httputil.NewFetcher(nil)
		}
		data, cached, err := f.Fetch(ctx, input)
		if err != nil {
			return nil, err
		}
		loggerFromContext(ctx).Debug("fetched", "url", input, "bytes", len(data), "cached", cached)
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", input)
	}
	return data, nil
}

func localPaths(paths []string) []string {
	var out []string
	for _, p := range paths {
		if !httputil.IsURL(p) {
			out = append(out, p)
		}
	}
	return out
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// outputPath returns where the conversion of input is written.
func outputPath(input, outputDir, format string) string {
	if httputil.IsURL(input) {
		return filepath.Join(outputDir, httputil.BaseName(input)+pipeline.Extension(format))
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + pipeline.Extension(format)
	if outputDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outputDir, base)
}

// =============================================================================
// Batch
// =============================================================================

// fileResult is the outcome of converting one input.
type fileResult struct {
	Input    string
	Output   string
	Result   *pipeline.Result
	Err      error
	Duration time.Duration
}

// reporter receives batch progress. Implementations must be safe for
// concurrent use.
type reporter interface {
	started(path string)
	finished(fr fileResult)
}

// batch converts files concurrently with a shared runner.
type batch struct {
	runner    *pipeline.Runner
	fetcher   *httputil.Fetcher
	opts      pipeline.Options
	outputDir string
	jobs      int
}

// run converts every path and returns the joined errors of the failed ones.
func (b *batch) run(ctx context.Context, paths []string, rep reporter) error {
	g, ctx := errgroup.WithContext(ctx)
	if b.jobs > 0 {
		g.SetLimit(b.jobs)
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	for _, path := range paths {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			rep.started(path)
			fr := b.convertFile(ctx, path)
			rep.finished(fr)
			if fr.Err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", path, fr.Err))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func (b *batch) convertFile(ctx context.Context, path string) fileResult {
	start := time.Now()
	fr := fileResult{Input: path, Output: outputPath(path, b.outputDir, b.opts.Format)}

	data, err := readInput(ctx, b.fetcher, path)
	if err != nil {
		fr.Err = err
		return fr
	}

	opts := b.opts
	opts.Source = path
	res, err := b.runner.Execute(ctx, data, opts)
	if err != nil {
		fr.Err = err
		fr.Duration = time.Since(start)
		return fr
	}
	fr.Result = res

	if err := writeFileAtomic(fr.Output, res.Output); err != nil {
		fr.Err = errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", fr.Output)
	}
	fr.Duration = time.Since(start)
	return fr
}

// writeFileAtomic writes through a temporary sibling and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
