package render

import (
	"strings"
)

// Markdown projects a Document onto markdown for terminal previews.
func Markdown(doc Document) string {
	var sb strings.Builder

	name := doc.Name
	if name == "" {
		name = "Your Name"
	}
	sb.WriteString("# " + name + "\n\n")
	if doc.Headline != "" {
		sb.WriteString("**" + doc.Headline + "**\n\n")
	}
	if len(doc.Contacts) > 0 {
		labels := make([]string, 0, len(doc.Contacts))
		for _, c := range doc.Contacts {
			labels = append(labels, c.Label)
		}
		sb.WriteString(strings.Join(labels, " · ") + "\n\n")
	}

	for _, s := range doc.Sections {
		sb.WriteString("## " + s.Heading + "\n\n")
		if s.Text != "" {
			sb.WriteString(s.Text + "\n\n")
		}
		for _, it := range s.Items {
			head := it.Title
			if it.Subtitle != "" {
				head += " — " + it.Subtitle
			}
			sb.WriteString("### " + head + "\n\n")
			if it.Period != "" {
				sb.WriteString("*" + it.Period + "*\n\n")
			}
			if it.LinkLabel != "" {
				sb.WriteString("[" + it.LinkLabel + "](" + it.Link + ")\n\n")
			}
			if it.Text != "" {
				sb.WriteString(it.Text + "\n\n")
			}
			for _, b := range it.Bullets {
				sb.WriteString("- " + b + "\n")
			}
			if len(it.Bullets) > 0 {
				sb.WriteString("\n")
			}
		}
		for _, g := range s.Groups {
			if g.Name != "" {
				sb.WriteString("**" + g.Name + ":** ")
			}
			sb.WriteString(strings.Join(g.Tags, ", ") + "\n\n")
		}
	}
	return sb.String()
}
