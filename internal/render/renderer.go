package render

import (
	"fmt"

	"resume-wizard/internal/model"
)

// Renderer maps a resume snapshot to one visual layout. Implementations are
// pure: the same data always yields the same Document.
type Renderer interface {
	ID() model.TemplateID
	Render(data model.ResumeData) (Document, error)
}

// Registry selects a Renderer by template id and falls back to a default for
// ids it does not know.
type Registry struct {
	renderers map[model.TemplateID]Renderer
	order     []model.TemplateID
	fallback  model.TemplateID
}

// NewRegistry panics if fallback is not among rs.
func NewRegistry(fallback model.TemplateID, rs ...Renderer) *Registry {
	reg := &Registry{renderers: map[model.TemplateID]Renderer{}, fallback: fallback}
	for _, r := range rs {
		if _, dup := reg.renderers[r.ID()]; !dup {
			reg.order = append(reg.order, r.ID())
		}
		reg.renderers[r.ID()] = r
	}
	if _, ok := reg.renderers[fallback]; !ok {
		panic(fmt.Sprintf("render: fallback template %q not registered", fallback))
	}
	return reg
}

// DefaultRegistry holds the modern and compact layouts with modern as the
// fallback.
func DefaultRegistry() *Registry {
	return NewRegistry(model.DefaultTemplate, NewModern(), NewCompact())
}

// Resolve returns the renderer for id, or the fallback.
func (r *Registry) Resolve(id model.TemplateID) Renderer {
	if rr, ok := r.renderers[id]; ok {
		return rr
	}
	return r.renderers[r.fallback]
}

// IDs lists registered template ids in registration order.
func (r *Registry) IDs() []model.TemplateID {
	return append([]model.TemplateID{}, r.order...)
}

func (r *Registry) Render(data model.ResumeData, id model.TemplateID) (Document, error) {
	return r.Resolve(id).Render(data)
}
