package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contextpack/contextpack/pkg/discover"
	"github.com/contextpack/contextpack/pkg/errors"
	"github.com/contextpack/contextpack/pkg/pack"
)

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	packs       int      // requested number of packs
	format      string   // output format name
	output      string   // output directory
	ignore      []string // extra gitignore-style patterns
	noGitignore bool     // skip .gitignore handling
	toStdout    bool     // print packs instead of writing files
}

// packExtensions maps output formats to file extensions.
var packExtensions = map[pack.Format]string{
	pack.FormatMarkdown:  "md",
	pack.FormatPlaintext: "txt",
	pack.FormatXML:       "xml",
}

// packCommand creates the pack command.
func (c *CLI) packCommand() *cobra.Command {
	opts := packOpts{packs: 1, format: string(pack.FormatMarkdown), output: "packs"}

	cmd := &cobra.Command{
		Use:   "pack [dir]",
		Short: "Pack a source tree into token-balanced context files",
		Long: `Pack discovers the text files under a directory, orders them so
dependencies come before their dependents, and splits them into
token-balanced packs.

Documentation files (README, docs/, markdown) are grouped at the front.
Defaults can be set per project in a .contextpack.toml file; flags
given explicitly always win.

Examples:
  contextpack pack .                        # Single markdown pack in ./packs
  contextpack pack src --packs 4            # Four balanced packs
  contextpack pack . --format xml --stdout  # XML pack on stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runPack(cmd, dir, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.packs, "packs", "p", opts.packs, "number of packs to produce")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (markdown, plaintext, xml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory for pack files")
	cmd.Flags().StringArrayVar(&opts.ignore, "ignore", nil, "additional ignore pattern (repeatable)")
	cmd.Flags().BoolVar(&opts.noGitignore, "no-gitignore", false, "do not apply .gitignore")
	cmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "print packs to stdout instead of writing files")

	return cmd
}

// applyConfig fills in options from .contextpack.toml for any flag the
// user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg Config, opts *packOpts) {
	if !cmd.Flags().Changed("packs") && cfg.Packs > 0 {
		opts.packs = cfg.Packs
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		opts.format = cfg.Format
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		opts.output = cfg.Output
	}
	if !cmd.Flags().Changed("no-gitignore") {
		opts.noGitignore = !cfg.respectGitignore()
	}
	opts.ignore = append(opts.ignore, cfg.Ignore...)
}

func runPack(cmd *cobra.Command, dir string, opts packOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, found, err := loadConfig(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", configFileName)
	}
	if found {
		logger.Debugf("Loaded %s from %s", configFileName, dir)
		applyConfig(cmd, cfg, &opts)
	}

	if err := errors.ValidatePackCount(opts.packs); err != nil {
		return err
	}
	format, ok := pack.ParseFormat(opts.format)
	if !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown output format: %q", opts.format)
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s", dir))
	spin.Start()
	files, err := discover.Files(dir, discover.Options{
		RespectGitignore: !opts.noGitignore,
		IgnorePatterns:   opts.ignore,
	})
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Scan failed: %v", err))
		return err
	}
	spin.Stop()
	if len(files) == 0 {
		printWarning("No packable files found in %s", dir)
		return nil
	}

	prog := newProgress(logger)
	resp := pack.Build(pack.Request{Files: files, PackCount: opts.packs, Format: format})
	prog.done(fmt.Sprintf("Packed %d files into %d packs", len(files), len(resp.Packs)))

	if opts.toStdout {
		for i, p := range resp.Packs {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(p.Content)
		}
		return nil
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create output directory %s", opts.output)
	}
	ext := packExtensions[format]
	printSuccess("Packed %d files into %d packs", len(files), len(resp.Packs))
	for _, p := range resp.Packs {
		name := filepath.Join(opts.output, fmt.Sprintf("pack-%d.%s", p.Index+1, ext))
		if err := os.WriteFile(name, []byte(p.Content), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
		}
		printFile(name)
		printPackStats(p.Index, p.FileCount, p.TokenCount)
	}
	printDetail("Total: ~%d tokens", resp.TotalTokens)
	return nil
}
