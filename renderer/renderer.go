// Package renderer renders portfolio data to markdown strings, ready to be
// printed raw or through a terminal markdown renderer.
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

// RenderPortfolio renders the portfolio table to a markdown string.
func RenderPortfolio(v *PortfolioView) string {
	partials := map[string]string{
		"portfolio_rows":   "templates/portfolio_rows.md",
		"portfolio_footer": "templates/portfolio_footer.md",
	}
	return renderTemplate("portfolio", "templates/portfolio.md", partials, v)
}

// RenderRecord renders a single enriched record, as shown right after an add.
func RenderRecord(r *RecordRow) string {
	return renderTemplate("record", "templates/record.md", nil, r)
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
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
