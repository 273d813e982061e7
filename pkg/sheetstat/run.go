package sheetstat

import (
	"context"
	"io"
	"log/slog"

	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/gsheets"
	"github.com/ukaji3/sheetstat-go/pkg/sheetstat/report"
)

// Pipeline runs resolve, credentials, load and report in order.
// Nil hooks fall back to the real Google and plotting implementations.
type Pipeline struct {
	// Acquire obtains credentials for spreadsheet sources.
	Acquire func(ctx context.Context, skipDefault bool) (*gsheets.Credentials, error)
	// NewReader builds a worksheet reader from credentials.
	NewReader func(ctx context.Context, creds *gsheets.Credentials) (WorksheetReader, error)
	// NewReporter builds the reporter for the run's options.
	NewReporter func(opts Options) *report.Reporter
}

// Run executes one pass. Failures are returned as *StageError.
func (p *Pipeline) Run(ctx context.Context, opts Options) error {
	src, err := ResolveSource(opts)
	if err != nil {
		return NewStageError(StageResolve, err)
	}
	slog.Debug("source resolved", "kind", src.Kind.String())

	loader := &Loader{}
	if src.Kind == SourceSpreadsheet {
		creds, err := p.acquire(ctx, opts.SkipDefaultCredentials)
		if err != nil {
			return NewStageError(StageCredentials, err)
		}
		reader, err := p.newReader(ctx, creds)
		if err != nil {
			return NewStageError(StageCredentials, err)
		}
		loader.Sheets = reader
	}

	table, err := loader.Load(ctx, src)
	if err != nil {
		return NewStageError(StageLoad, err)
	}
	slog.Info("data loaded", "rows", table.NumRows(), "columns", table.NumCols())

	rep := p.newReporter(opts)
	if c, ok := rep.Sink.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				slog.Warn("failed to clean up plots", "error", err)
			}
		}()
	}
	if err := rep.Report(table); err != nil {
		return NewStageError(StageReport, err)
	}
	return nil
}

func (p *Pipeline) acquire(ctx context.Context, skipDefault bool) (*gsheets.Credentials, error) {
	if p.Acquire != nil {
		return p.Acquire(ctx, skipDefault)
	}
	a := gsheets.NewAuthenticator()
	a.SkipDefault = skipDefault
	return a.Acquire(ctx)
}

func (p *Pipeline) newReader(ctx context.Context, creds *gsheets.Credentials) (WorksheetReader, error) {
	if p.NewReader != nil {
		return p.NewReader(ctx, creds)
	}
	client, err := gsheets.NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (p *Pipeline) newReporter(opts Options) *report.Reporter {
	if p.NewReporter != nil {
		return p.NewReporter(opts)
	}
	var sink report.Sink = report.NewViewerSink()
	if opts.SavePlots {
		sink = report.FileSink{Prefix: opts.OutputPrefix()}
	}
	return report.NewReporter(sink)
}
