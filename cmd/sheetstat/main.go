// Package main provides the CLI entry point for sheetstat.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat"
)

func main() {
	// A missing .env is fine; real environment variables win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(&sheetstat.Pipeline{}).ExecuteContext(ctx)
	stop()

	if err != nil {
		var se *sheetstat.StageError
		if errors.As(err, &se) {
			fmt.Fprintf(os.Stderr, "Failed to %s: %v\n", se.Stage.Action(), se.Err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(sheetstat.ExitCode(err))
}

func newRootCmd(pipeline *sheetstat.Pipeline) *cobra.Command {
	opts := sheetstat.DefaultOptions()
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sheetstat",
		Short: "Summarise and plot a Google Sheet or local table",
		Long: `sheetstat loads a Google Sheet, or a local CSV, TXT, XLS or XLSX file,
prints the first rows, column info and summary statistics, and renders a
correlation heatmap, a histogram and a boxplot of the numeric columns.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			setupLogging(verbose)
			return pipeline.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.URL, "url", "", "Full Google Sheets URL")
	flags.StringVar(&opts.ID, "id", "", "Google Sheets spreadsheet ID")
	flags.StringVar(&opts.Path, "csv", "", "Local CSV, TXT, XLS or XLSX file")
	flags.IntVar(&opts.Worksheet, "worksheet", 0, "Worksheet index for Google Sheets")
	flags.StringVar(&opts.SheetName, "sheet", "", "Sheet name for local Excel files (default: first sheet)")
	flags.StringVar(&opts.Separator, "sep", opts.Separator, `Field separator for local text files ("\t" for tab)`)
	flags.BoolVar(&opts.SavePlots, "save-plots", false, "Save plots as PNG files instead of displaying them")
	flags.StringVar(&opts.OutPrefix, "out-prefix", opts.OutPrefix, "Prefix for saved plot files")
	flags.BoolVar(&opts.SkipDefaultCredentials, "no-default-credentials", false, "Skip application default credentials")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("url", "id", "csv")
	cmd.MarkFlagsOneRequired("url", "id", "csv")

	return cmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
