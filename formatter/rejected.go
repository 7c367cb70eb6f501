package formatter

// RejectedReportFormatter renders expressions the engine refused: they did
// not parse, had too many variables or were too complex to minimize.
type RejectedReportFormatter struct{}

func (f *RejectedReportFormatter) ReportTemplate() string {
	return `{{header .Expression .Location true -}}
{{rejection .Expression .Error .ErrorColumn .Padding}}
`
}
