// Package renderer turns the pipeline's results into markdown reports. All
// formatting decisions (tables, currency symbols, elided rows) live here; the
// domain package only computes.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderPlan renders the buy-order report to a markdown string.
func RenderPlan(p *Plan) string {
	return renderTemplate("plan", "templates/plan.md", p)
}

// RenderWeights renders the capped weight table to a markdown string.
func RenderWeights(w *Weights) string {
	return renderTemplate("weights", "templates/weights.md", w)
}

// RenderFund renders the fund composition to a markdown string.
func RenderFund(f *FundView) string {
	return renderTemplate("fund", "templates/fund.md", f)
}

// renderTemplate is a generic utility to render one embedded template file.
func renderTemplate(templateName, mainFile string, data any) string {
	mainContent, err := templates.ReadFile(mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
