package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Plot image size.
const (
	PlotWidth  = 10 * vg.Inch
	PlotHeight = 6 * vg.Inch
)

// Sink receives rendered plots. Emit returns the path the plot was
// written to.
type Sink interface {
	Emit(name string, p *plot.Plot) (string, error)
}

// FileSink saves each plot as <Prefix><name>.png.
type FileSink struct {
	Prefix string
}

// Emit saves the plot next to the prefix.
func (s FileSink) Emit(name string, p *plot.Plot) (string, error) {
	path := s.Prefix + name + ".png"
	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	slog.Debug("plot saved", "name", name, "path", path)
	return path, nil
}

// ViewerSink renders each plot into a temporary directory and hands the
// file to Open. A plot that cannot be opened is logged and skipped.
type ViewerSink struct {
	// Open shows the image at path. Defaults to OpenViewer.
	Open func(path string) error

	dir    string
	opened int
}

// NewViewerSink returns a sink that opens plots with the platform viewer.
func NewViewerSink() *ViewerSink {
	return &ViewerSink{Open: OpenViewer}
}

// Emit renders the plot to a temporary PNG and opens it.
func (s *ViewerSink) Emit(name string, p *plot.Plot) (string, error) {
	if s.dir == "" {
		dir, err := os.MkdirTemp("", "sheetstat-")
		if err != nil {
			return "", fmt.Errorf("failed to create plot directory: %w", err)
		}
		s.dir = dir
	}

	path := filepath.Join(s.dir, name+".png")
	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	open := s.Open
	if open == nil {
		open = OpenViewer
	}
	if err := open(path); err != nil {
		slog.Warn("could not display plot", "name", name, "path", path, "error", err)
		return path, nil
	}
	s.opened++
	return path, nil
}

// Close removes the temporary directory unless a viewer still holds one
// of its files.
func (s *ViewerSink) Close() error {
	if s.dir == "" || s.opened > 0 {
		return nil
	}
	err := os.RemoveAll(s.dir)
	s.dir = ""
	return err
}
