// Package renderer turns the portfolio reports into markdown strings.
//
// Two styles coexist on purpose. Reports that are mostly tables are built
// with the markdown builder. The overview report, which mixes prose and
// sections, is assembled from a text/template over a dedicated view struct.
package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// execute renders an inline template over its view struct. Template errors
// are rendered into the output rather than returned: a broken report is a
// bug, not a runtime condition the caller can handle.
func execute(name, tmpl string, data any) string {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
