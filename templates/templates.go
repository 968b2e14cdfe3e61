// Package templates holds the HTML layouts and stylesheet used to render a
// resume. They are embedded so the binary runs from any directory.
package templates

import "embed"

//go:embed *.html style.css
var FS embed.FS

// StyleSheet is inlined into every rendered document.
const StyleSheet = "style.css"
