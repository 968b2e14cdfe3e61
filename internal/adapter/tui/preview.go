package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"resume-wizard/internal/model"
	"resume-wizard/internal/render"
)

// previewScreen shows the markdown projection of the rendered document. It
// is rebuilt from a fresh render every time it is shown.
type previewScreen struct {
	doc      render.Document
	info     model.TemplateInfo
	viewport viewport.Model
	err      error
}

func newPreviewScreen(doc render.Document, err error, glamourStyle string, width, height int) *previewScreen {
	s := &previewScreen{doc: doc, err: err, viewport: viewport.New(width, height)}
	s.info, _ = model.LookupTemplate(doc.Template)
	if err != nil {
		return s
	}
	md := render.Markdown(doc)
	out, rerr := glamourRender(md, glamourStyle, width)
	if rerr != nil {
		out = md
	}
	s.viewport.SetContent(out)
	return s
}

func glamourRender(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width - 2)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (s *previewScreen) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

func (s *previewScreen) view(st Styles) string {
	head := st.Title.Render("Preview") + "  " + st.Muted.Render(s.info.Name)
	if s.err != nil {
		return head + "\n\n" + st.Error.Render("Could not render: "+s.err.Error())
	}
	return head + "\n" + s.viewport.View()
}

func (s *previewScreen) help() []key.Binding {
	return []key.Binding{keys.Template, keys.Export, keys.Restart}
}
