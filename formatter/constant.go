package formatter

// ConstantReportFormatter renders tautologies and contradictions. The
// minimized form is the constant itself, followed by a note saying the
// result does not depend on any variable.
type ConstantReportFormatter struct{}

func (f *ConstantReportFormatter) ReportTemplate() string {
	return `{{header .Expression .Location false -}}
{{variables .Variables .Padding -}}
{{if .ShowTable}}{{truthTable .Variables .Rows .Padding}}{{end -}}
{{classification .Classification .Padding -}}
{{minimized .Minimized .Padding -}}
{{constantNote .Classification .Padding}}
`
}
