package model

// TemplateID selects a rendering strategy. It is tracked by the wizard next to
// the resume data, never inside it.
type TemplateID string

const (
	TemplateModern  TemplateID = "modern"
	TemplateCompact TemplateID = "compact"

	DefaultTemplate = TemplateModern
)

// TemplateInfo describes a template for the selection screen.
type TemplateInfo struct {
	ID          TemplateID
	Name        string
	Description string
}

// Catalogue lists the selectable templates in display order.
var Catalogue = []TemplateInfo{
	{ID: TemplateModern, Name: "Modern Template", Description: "Clean, single-column layout with modern typography"},
	{ID: TemplateCompact, Name: "Compact Template", Description: "Two-column layout that fits more content"},
}

// LookupTemplate returns the catalogue entry for id.
func LookupTemplate(id TemplateID) (TemplateInfo, bool) {
	for _, t := range Catalogue {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateInfo{}, false
}
