// Package main provides the CLI entry point for termplot.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/termplot-go/pkg/termplot"
	"github.com/ukaji3/termplot-go/pkg/termplot/models"
	"github.com/ukaji3/termplot-go/pkg/termplot/parser"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	dims      dimensionsValue
	dot       bool
	noXIsRow  bool
	logX      bool
	logY      bool
	cdf       bool
	sheetName string
	cellRange string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if termplot.IsInternal(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{
		dims: dimensionsValue{width: termplot.DefaultWidth, height: termplot.DefaultHeight},
	}

	rootCmd := &cobra.Command{
		Use:   "termplot [input]",
		Short: "Plot numeric data in the terminal",
		Long: `termplot reads rows of numbers from a file or stdin and draws them
as a character-grid plot with axes. Each line is one data row; fields are
separated by whitespace or commas. .xlsx workbooks are read cell by cell.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if env := os.Getenv(dimensionsEnv); env != "" && !cmd.Flags().Changed("dimensions") {
				if err := o.dims.Set(env); err != nil {
					return fmt.Errorf("%s: %w", dimensionsEnv, err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}

	flags := rootCmd.Flags()
	flags.VarP(&o.dims, "dimensions", "d", `Plot size in columns x rows, or "auto" for the terminal size`)
	flags.BoolVar(&o.dot, "dot", false, "Use Dot mode instead of Count mode")
	flags.BoolVar(&o.noXIsRow, "no-x-is-row", false, "Read x from the first column instead of using the row number")
	flags.BoolVar(&o.logX, "log-x", false, "Apply log10 transform to X axis")
	flags.BoolVar(&o.logY, "log-y", false, "Apply log10 transform to Y axis")
	flags.BoolVar(&o.cdf, "cdf", false, "Plot cumulative distribution function")
	flags.StringVar(&o.sheetName, "sheet", "", "Worksheet to read from an .xlsx input (default: first sheet)")
	flags.StringVar(&o.cellRange, "range", "", "Cell range or defined name to read from an .xlsx input")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log arguments and plot bounds to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, o *cliOptions, args []string) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("arguments",
		"dimensions", o.dims.String(),
		"dot", o.dot,
		"x_is_row", !o.noXIsRow,
		"log_x", o.logX,
		"log_y", o.logY,
		"cdf", o.cdf,
		"input", strings.Join(args, " "))

	ds, err := readInput(cmd.InOrStdin(), o, args)
	if err != nil {
		return fmt.Errorf("reading input failed: %w", err)
	}

	opts := termplot.DefaultOptions()
	opts.Width, opts.Height = o.dims.width, o.dims.height
	if o.dot {
		opts.Mode = termplot.ModeDot
	}
	opts.LogX, opts.LogY, opts.CDF = o.logX, o.logY, o.cdf
	opts.Logger = logger

	res, err := termplot.Plot(ds, opts)
	if err != nil {
		return err
	}

	if _, err := res.Canvas.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// readInput reads the dataset from the named file, or from stdin when no
// file (or "-") is given. Workbooks are recognized by extension or by the
// sheet flags.
func readInput(stdin io.Reader, o *cliOptions, args []string) (models.Dataset, error) {
	xIsRow := !o.noXIsRow
	if len(args) == 0 || args[0] == "-" {
		if o.sheetName != "" || o.cellRange != "" {
			return models.Dataset{}, fmt.Errorf("--sheet and --range need an .xlsx input file")
		}
		return parser.ReadText(stdin, xIsRow)
	}

	inputPath := args[0]
	if isWorkbook(inputPath) || o.sheetName != "" || o.cellRange != "" {
		return parser.ReadSheet(inputPath, parser.SheetOptions{
			Sheet:  o.sheetName,
			Range:  o.cellRange,
			XIsRow: xIsRow,
		})
	}

	f, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Dataset{}, fmt.Errorf("%w: %s", parser.ErrFileNotFound, inputPath)
		}
		return models.Dataset{}, err
	}
	defer f.Close()

	return parser.ReadText(f, xIsRow)
}

func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}
