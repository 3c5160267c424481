// Package renderer turns tracker read models into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// ReportRenderOptions holds configuration for rendering a period report.
type ReportRenderOptions struct {
	SkipTransactions bool // Do not render the transactions section.
	SkipCategories   bool // Do not render the per-category breakdown.
}

// RenderReport renders the Report struct to a markdown string.
func RenderReport(r *Report, opts ReportRenderOptions) string {
	partials := map[string]string{
		"report_title":    "templates/report_title.md",
		"report_summary":  "templates/report_summary.md",
		"report_accounts": "templates/report_accounts.md",
	}

	if opts.SkipCategories {
		partials["report_categories"] = ""
	} else {
		partials["report_categories"] = "templates/report_categories.md"
	}

	// An empty partial renders nothing for the section.
	if opts.SkipTransactions {
		partials["report_transactions"] = ""
	} else {
		partials["report_transactions"] = "templates/report_transactions.md"
	}

	return renderTemplate("report", "templates/report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
