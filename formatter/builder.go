package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	tt "github.com/gnolang/tlogic/internal/types"
)

// classifications, as rendered by the engine
const (
	Tautology     = "Tautology"
	Contradiction = "Contradiction"
	Contingent    = "Contingent"
)

var (
	errorStyle       = color.New(color.FgRed, color.Bold)
	exprStyle        = color.New(color.FgYellow, color.Bold)
	fileStyle        = color.New(color.FgCyan, color.Bold)
	lineStyle        = color.New(color.FgHiBlue, color.Bold)
	messageStyle     = color.New(color.FgRed, color.Bold)
	tautologyStyle   = color.New(color.FgGreen, color.Bold)
	contingentStyle  = color.New(color.FgHiYellow, color.Bold)
	minimizedStyle   = color.New(color.FgGreen)
	tableHeaderStyle = color.New(color.FgWhite, color.Bold)
	noStyle          = color.New(color.FgWhite)
)

// Options controls what the text report shows.
type Options struct {
	// ShowTable includes the full truth table.
	ShowTable bool
}

// reportFormatter is the interface that wraps the ReportTemplate method.
// Implementations render one kind of report.
type reportFormatter interface {
	ReportTemplate() string
}

// getReportFormatter returns the formatter for the report's outcome.
func getReportFormatter(report tt.Report) reportFormatter {
	switch {
	case report.Failed():
		return &RejectedReportFormatter{}
	case report.Classification == Tautology || report.Classification == Contradiction:
		return &ConstantReportFormatter{}
	default:
		return &GeneralReportFormatter{}
	}
}

// GenerateFormattedReport formats reports into a human-readable string.
func GenerateFormattedReport(reports []tt.Report, opts Options) string {
	var builder strings.Builder
	for _, report := range reports {
		formatter := getReportFormatter(report)
		builder.WriteString(buildReport(report, opts, formatter))
	}
	return builder.String()
}

/***** Report Formatter Builder *****/

type ReportData struct {
	Location       string
	Expression     string
	Variables      []string
	Rows           []tt.Row
	Classification string
	Minimized      string
	Error          string
	ErrorColumn    int
	ShowTable      bool
	Padding        string
}

func buildReport(report tt.Report, opts Options, formatter reportFormatter) string {
	data := ReportData{
		Location:       report.Location(),
		Expression:     report.Expression,
		Variables:      report.Variables,
		Rows:           report.Rows,
		Classification: report.Classification,
		Minimized:      report.Minimized,
		Error:          report.Error,
		ErrorColumn:    report.ErrorColumn,
		ShowTable:      opts.ShowTable && len(report.Rows) > 0,
		Padding:        "  ",
	}

	funcMap := template.FuncMap{
		"header":         header,
		"variables":      variables,
		"truthTable":     truthTable,
		"classification": classification,
		"minimized":      minimized,
		"constantNote":   constantNote,
		"rejection":      rejection,
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(formatter.ReportTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(expression string, location string, failed bool) string {
	var endString string
	if failed {
		endString = errorStyle.Sprint("error: ")
	} else {
		endString = noStyle.Sprint("expr: ")
	}
	endString += exprStyle.Sprintf("%s\n", expression)

	if location != "" {
		endString += lineStyle.Sprint(" --> ")
		endString += fileStyle.Sprintf("%s\n", location)
	}
	return endString
}

func variables(vars []string, padding string) string {
	list := "(none)"
	if len(vars) > 0 {
		list = strings.Join(vars, ", ")
	}
	return lineStyle.Sprintf("%s= ", padding) + noStyle.Sprintf("variables: %s\n", list)
}

func truthTable(vars []string, rows []tt.Row, padding string) string {
	widths := make([]int, len(vars))
	cells := make([]string, len(vars))
	for i, v := range vars {
		widths[i] = len(v)
		cells[i] = v
	}

	var endString string
	endString = lineStyle.Sprintf("%s|\n", padding)
	endString += lineStyle.Sprintf("%s| ", padding)
	endString += tableHeaderStyle.Sprintf("%s\n", tableLine(cells, widths, "RESULT"))

	for _, row := range rows {
		for i, value := range row.Values {
			cells[i] = fmt.Sprintf("%d", value)
		}
		endString += lineStyle.Sprintf("%s| ", padding)
		endString += noStyle.Sprintf("%s\n", tableLine(cells, widths, fmt.Sprintf("%d", row.Result)))
	}

	endString += lineStyle.Sprintf("%s|\n", padding)
	return endString
}

func tableLine(cells []string, widths []int, result string) string {
	var b strings.Builder
	for i, cell := range cells {
		fmt.Fprintf(&b, "%-*s ", widths[i], cell)
	}
	if len(cells) > 0 {
		b.WriteString("| ")
	}
	b.WriteString(result)
	return b.String()
}

func classification(class string, padding string) string {
	var style *color.Color
	switch class {
	case Tautology:
		style = tautologyStyle
	case Contradiction:
		style = messageStyle
	default:
		style = contingentStyle
	}
	return lineStyle.Sprintf("%s= ", padding) + noStyle.Sprint("classification: ") + style.Sprintf("%s\n", class)
}

func minimized(expr string, padding string) string {
	return lineStyle.Sprintf("%s= ", padding) + noStyle.Sprint("minimized: ") + minimizedStyle.Sprintf("%s\n", expr)
}

func constantNote(class string, padding string) string {
	note := "true under every assignment"
	if class == Contradiction {
		note = "false under every assignment"
	}
	return lineStyle.Sprintf("%s= ", padding) + noStyle.Sprintf("note: %s\n", note)
}

// rejection points at the error column under the echoed expression.
func rejection(expression string, message string, column int, padding string) string {
	var endString string
	endString = lineStyle.Sprintf("%s|\n", padding)
	endString += lineStyle.Sprintf("%s| ", padding)
	endString += noStyle.Sprintf("%s\n", expression)

	if column > 0 {
		endString += lineStyle.Sprintf("%s| ", padding)
		endString += strings.Repeat(" ", column-1)
		endString += messageStyle.Sprint("^\n")
	}

	endString += lineStyle.Sprintf("%s= ", padding)
	endString += messageStyle.Sprintf("%s\n", message)
	return endString
}
