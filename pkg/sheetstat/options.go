// Package sheetstat loads a Google Sheet or a local tabular file and
// reports its summary statistics and plots.
package sheetstat

// DefaultOutPrefix is prepended to saved plot file names.
const DefaultOutPrefix = "aq_"

// Options configures one run.
type Options struct {
	// URL is a full Google Sheets URL.
	URL string
	// ID is a bare spreadsheet identifier.
	ID string
	// Path is a local CSV, TXT, XLS or XLSX file.
	Path string

	// Worksheet is the zero-based worksheet index for spreadsheet sources.
	Worksheet int
	// SheetName selects a sheet of a local workbook. Empty means the first.
	SheetName string
	// Separator is the field separator for local delimited text.
	Separator string

	// SavePlots writes PNG files instead of opening a viewer.
	SavePlots bool
	// OutPrefix is prepended to saved plot file names.
	OutPrefix string

	// SkipDefaultCredentials disables the application-default tier.
	SkipDefaultCredentials bool
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Separator: ",",
		OutPrefix: DefaultOutPrefix,
	}
}

// OutputPrefix returns the plot file prefix, falling back to the default.
func (o Options) OutputPrefix() string {
	if o.OutPrefix != "" {
		return o.OutPrefix
	}
	return DefaultOutPrefix
}
