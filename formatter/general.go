package formatter

type GeneralReportFormatter struct{}

func (f *GeneralReportFormatter) ReportTemplate() string {
	return `{{header .Expression .Location false -}}
{{variables .Variables .Padding -}}
{{if .ShowTable}}{{truthTable .Variables .Rows .Padding}}{{end -}}
{{classification .Classification .Padding -}}
{{minimized .Minimized .Padding}}
`
}
