package main

import (
	"strings"

	"github.com/jwebster45206/story-directives/pkg/directives"
	"github.com/muesli/reflow/wordwrap"
)

// renderSections lists the document's sections, one title line each,
// followed by the wrapped body unless the section is collapsed.
func renderSections(doc *directives.Document, collapsed map[directives.SectionID]bool, cursor, width int, focused bool) string {
	if doc == nil || len(doc.Sections) == 0 {
		return bodyStyle.Render("No directive sections.")
	}
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("DIRECTIVES") + "\n\n")

	for i, s := range doc.Sections {
		marker := "▾"
		if collapsed[s.ID] {
			marker = "▸"
		}
		title := marker + " " + s.Title
		if focused && i == cursor {
			content.WriteString(selectedTitleStyle.Render(title))
		} else {
			content.WriteString(sectionTitleStyle.Render(title))
		}
		content.WriteString("\n")

		if !collapsed[s.ID] {
			for _, line := range strings.Split(wordwrap.String(s.Body, width-2), "\n") {
				content.WriteString("  " + bodyStyle.Render(line) + "\n")
			}
		}
		content.WriteString("\n")
	}
	return content.String()
}
