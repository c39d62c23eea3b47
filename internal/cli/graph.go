package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/contextpack/contextpack/pkg/discover"
	"github.com/contextpack/contextpack/pkg/errors"
	"github.com/contextpack/contextpack/pkg/graphio"
	"github.com/contextpack/contextpack/pkg/pack"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format string // json, dot, or svg
	output string // output file path (stdout if empty)
}

// graphCommand creates the graph command for exporting the file
// dependency graph without packing.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "json"}

	cmd := &cobra.Command{
		Use:   "graph [dir]",
		Short: "Export the file dependency graph",
		Long: `Graph builds the import dependency graph of a source tree and
writes it as JSON, Graphviz DOT, or a rendered SVG.

Examples:
  contextpack graph .                       # JSON on stdout
  contextpack graph src --format dot        # DOT on stdout
  contextpack graph . --format svg -o deps.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runGraph(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (json, dot, svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runGraph(cmd *cobra.Command, dir string, opts graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	files, err := discover.Files(dir, discover.Options{RespectGitignore: true})
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	g := pack.BuildGraph(files)
	prog.done(fmt.Sprintf("Built graph with %d nodes and %d edges", g.NodeCount(), g.EdgeCount()))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch opts.format {
	case "json":
		if err := graphio.WriteJSON(g, out); err != nil {
			return err
		}
	case "dot":
		if _, err := io.WriteString(out, graphio.ToDOT(g)); err != nil {
			return err
		}
	case "svg":
		svg, err := graphio.RenderSVG(ctx, g)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		if _, err := out.Write(svg); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown graph format: %q (json, dot, svg)", opts.format)
	}

	if opts.output != "" {
		logger.Infof("Wrote graph to %s", opts.output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// An empty path means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
