package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"resume-wizard/templates"
)

// parseLayout parses a page template together with the shared partials.
func parseLayout(page string) *template.Template {
	return template.Must(template.New(page).ParseFS(templates.FS, "sections.html", page))
}

var styleSheet = mustReadStyle()

func mustReadStyle() string {
	b, err := fs.ReadFile(templates.FS, templates.StyleSheet)
	if err != nil {
		panic(fmt.Sprintf("render: read stylesheet: %v", err))
	}
	return string(b)
}

// executeHTML renders doc through tpl and inlines the stylesheet at the top
// of <head> so the output is self-contained.
func executeHTML(tpl *template.Template, doc Document) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("execute %s: %w", tpl.Name(), err)
	}
	html := buf.String()

	cssBlock := "<style>" + styleSheet + "</style>"
	if strings.Contains(html, "<head>") {
		return strings.Replace(html, "<head>", "<head>"+cssBlock, 1), nil
	}
	return cssBlock + html, nil
}
